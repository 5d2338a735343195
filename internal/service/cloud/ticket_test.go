package cloud

import (
	"testing"

	"github.com/qiniu/x/xlog"
	"github.com/stretchr/testify/assert"

	"github.com/solutions/afroverseas/internal/common/utils"
)

type recordingStorage struct {
	category string
	fileName string
	data     []byte
}

func (s *recordingStorage) Save(xl *xlog.Logger, category, fileName string, data []byte) (string, error) {
	s.category = category
	s.fileName = fileName
	s.data = data
	return "/static/" + category + "/" + fileName, nil
}

func TestTicketGenerate(t *testing.T) {
	storage := &recordingStorage{}
	service := NewTicketService(utils.Config{
		Ticket: &utils.TicketConfig{Tag: "AFROVERSEAS-VERIFY:", SizePixel: 128},
	}, storage)

	data, fileName, url, err := service.Generate(xlog.New("ticket-test"), "AFRO-0123456789")
	assert.NoError(t, err)
	assert.NotEmpty(t, data)
	// PNG签名开头
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
	assert.Equal(t, "ticket_AFRO-0123456789.png", fileName)
	assert.Equal(t, "/static/tickets/ticket_AFRO-0123456789.png", url)
	assert.Equal(t, StorageCategoryTickets, storage.category)
	assert.Equal(t, data, storage.data)
}
