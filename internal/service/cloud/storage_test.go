package cloud

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/qiniu/x/xlog"
	"github.com/stretchr/testify/assert"

	"github.com/solutions/afroverseas/internal/common/utils"
)

func TestLocalStorageSave(t *testing.T) {
	root := t.TempDir()
	storage, err := NewLocalStorage(root, "/static")
	assert.NoError(t, err)

	url, err := storage.Save(xlog.New("storage-test"), StorageCategoryUploads, "receipt_AFRO-0123456789.jpg", []byte("jpeg-bytes"))
	assert.NoError(t, err)
	assert.Equal(t, "/static/uploads/receipt_AFRO-0123456789.jpg", url)

	data, err := ioutil.ReadFile(filepath.Join(root, StorageCategoryUploads, "receipt_AFRO-0123456789.jpg"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestLocalStorageCreatesCategoryDirs(t *testing.T) {
	root := t.TempDir()
	_, err := NewLocalStorage(root, "/static")
	assert.NoError(t, err)

	for _, category := range []string{StorageCategoryUploads, StorageCategoryTickets} {
		info, err := os.Stat(filepath.Join(root, category))
		assert.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestNewStorageUnsupportedProvider(t *testing.T) {
	_, err := NewStorage(utils.Config{Storage: &utils.StorageConfig{Provider: "s3"}})
	assert.Error(t, err)
}
