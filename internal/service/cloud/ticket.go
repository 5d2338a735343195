package cloud

import (
	"github.com/qiniu/x/xlog"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/solutions/afroverseas/internal/common/utils"
)

// TicketService 生成审核通过票据：编码 tag+refNumber 的二维码图片，
// 入场时扫码核验。图片按编号命名存入票据区。
type TicketService struct {
	tag       string
	sizePixel int
	storage   Storage
	xl        *xlog.Logger
}

func NewTicketService(conf utils.Config, storage Storage) *TicketService {
	sizePixel := conf.Ticket.SizePixel
	if sizePixel == 0 {
		sizePixel = 256
	}
	return &TicketService{
		tag:       conf.Ticket.Tag,
		sizePixel: sizePixel,
		storage:   storage,
		xl:        xlog.New("ticket-service"),
	}
}

// Generate 渲染票据二维码并持久化，返回图片内容、文件名与访问URL。
func (s *TicketService) Generate(xl *xlog.Logger, refNumber string) ([]byte, string, string, error) {
	if xl == nil {
		xl = s.xl
	}
	payload := s.tag + refNumber
	data, err := qrcode.Encode(payload, qrcode.Medium, s.sizePixel)
	if err != nil {
		xl.Errorf("failed to encode ticket qrcode for %s, error %v", refNumber, err)
		return nil, "", "", err
	}
	fileName := utils.TicketFileName(refNumber)
	url, err := s.storage.Save(xl, StorageCategoryTickets, fileName, data)
	if err != nil {
		xl.Errorf("failed to store ticket image for %s, error %v", refNumber, err)
		return nil, "", "", err
	}
	return data, fileName, url, nil
}
