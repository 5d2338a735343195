package cloud

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/qiniu/go-sdk/v7/auth/qbox"
	"github.com/qiniu/go-sdk/v7/storage"
	"github.com/qiniu/x/xlog"

	"github.com/solutions/afroverseas/internal/common/utils"
)

// 存储分类，对应静态托管下的子目录或kodo key前缀。
const (
	StorageCategoryUploads = "uploads"
	StorageCategoryTickets = "tickets"
)

// Storage 回执、简历、视频与票据图片的落盘抽象。
// Save 成功后返回前端可访问的URL，记录里只存URL不存文件内容。
type Storage interface {
	Save(xl *xlog.Logger, category, fileName string, data []byte) (string, error)
}

// NewStorage 按配置选择存储实现。
func NewStorage(conf utils.Config) (Storage, error) {
	switch conf.Storage.Provider {
	case "local", "":
		return NewLocalStorage(conf.Storage.LocalRoot, conf.Storage.URLPrefix)
	case "kodo":
		return NewKodoStorage(conf.QiniuKeyPair, *conf.Storage.Kodo), nil
	default:
		return nil, fmt.Errorf("unsupported storage provider %s", conf.Storage.Provider)
	}
}

// LocalStorage 本地磁盘存储，root在构造时显式传入，文件由本服务静态托管。
type LocalStorage struct {
	root      string
	urlPrefix string
	xl        *xlog.Logger
}

func NewLocalStorage(root, urlPrefix string) (*LocalStorage, error) {
	xl := xlog.New("local-storage")
	for _, category := range []string{StorageCategoryUploads, StorageCategoryTickets} {
		if err := os.MkdirAll(filepath.Join(root, category), 0755); err != nil {
			xl.Errorf("failed to create storage dir, error %v", err)
			return nil, err
		}
	}
	return &LocalStorage{root: root, urlPrefix: urlPrefix, xl: xl}, nil
}

func (s *LocalStorage) Save(xl *xlog.Logger, category, fileName string, data []byte) (string, error) {
	if xl == nil {
		xl = s.xl
	}
	path := filepath.Join(s.root, category, fileName)
	file, err := os.Create(path)
	if err != nil {
		xl.Errorf("failed to create file %s, error %v", path, err)
		return "", err
	}
	defer file.Close()
	if _, err := io.Copy(file, bytes.NewReader(data)); err != nil {
		xl.Errorf("failed to write file %s, error %v", path, err)
		return "", err
	}
	return s.urlPrefix + "/" + category + "/" + fileName, nil
}

// KodoStorage 七牛对象存储。
type KodoStorage struct {
	keyPair utils.QiniuKeyPair
	conf    utils.QiniuStorageConfig
	xl      *xlog.Logger
}

func NewKodoStorage(keyPair utils.QiniuKeyPair, conf utils.QiniuStorageConfig) *KodoStorage {
	return &KodoStorage{keyPair: keyPair, conf: conf, xl: xlog.New("kodo-storage")}
}

func (s *KodoStorage) Save(xl *xlog.Logger, category, fileName string, data []byte) (string, error) {
	if xl == nil {
		xl = s.xl
	}
	mac := qbox.NewMac(s.keyPair.AccessKey, s.keyPair.SecretKey)
	putPolicy := storage.PutPolicy{
		Scope: s.conf.Bucket,
	}
	upToken := putPolicy.UploadToken(mac)
	cfg := storage.Config{}
	cfg.UseHTTPS = true
	cfg.UseCdnDomains = false
	formUploader := storage.NewFormUploader(&cfg)
	ret := storage.PutRet{}
	fileKey := category + "/" + fileName
	err := formUploader.Put(context.Background(), &ret, upToken, fileKey, bytes.NewReader(data), int64(len(data)), nil)
	if err != nil {
		xl.Errorf("file uploading failed err:%v", err)
		return "", err
	}
	return s.conf.URLPrefix + "/" + fileKey, nil
}
