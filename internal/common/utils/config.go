package utils

import (
	"log"

	qconfig "github.com/qiniu/x/config"
)

var (
	DefaultConf Config
)

func InitConf(configFilePath string) {
	err := qconfig.LoadFile(&DefaultConf, configFilePath)
	if err != nil {
		log.Fatalf("failed to load config file, error %v", err)
	}
}

// PostgresConfig 数据库配置。
type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Database string `json:"database"`
	SSLMode  string `json:"ssl_mode"`
	// MaxConnections 连接池上限。
	MaxConnections int `json:"max_connections"`
	MaxIdle        int `json:"max_idle"`
}

// QiniuKeyPair 七牛API access key/secret key配置。
type QiniuKeyPair struct {
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
}

// QiniuStorageConfig 七牛对象存储服务配置。
type QiniuStorageConfig struct {
	// Bucket 上传的文件所在的七牛对象存储bucket。
	Bucket string `json:"bucket"`
	// URLPrefix 上传的文件的下载URL前缀，一般为该bucket对应的默认域名。
	URLPrefix string `json:"url_prefix"`
}

// StorageConfig 上传文件（回执、简历、视频）与票据图片的存储配置。
// Provider 为local时文件保存在LocalRoot下由本服务静态托管，为kodo时上传到七牛存储。
type StorageConfig struct {
	Provider  string              `json:"provider"`
	LocalRoot string              `json:"local_root"`
	URLPrefix string              `json:"url_prefix"`
	Kodo      *QiniuStorageConfig `json:"kodo"`
}

// MailConfig 发送邮件的配置。
type MailConfig struct {
	// Provider 为mock时不真正发送，仅打日志，供测试用。
	Provider    string `json:"provider"`
	SMTPHost    string `json:"smtp_host"`
	SMTPPort    int    `json:"smtp_port"`
	From        string `json:"from"`
	FromName    string `json:"from_name"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	SendTimeout int    `json:"send_timeout_s"`
	// QueueSize 待发送邮件队列长度，WorkerCount 并发发送协程数。
	QueueSize   int `json:"queue_size"`
	WorkerCount int `json:"worker_count"`
}

// AdminConfig 管理后台账号配置。
type AdminConfig struct {
	Username string `json:"username"`
	Password string `json:"password"`
	// Email 接收每日待审核线索摘要的邮箱。
	Email string `json:"email"`
}

// TicketConfig 审核通过票据配置。
type TicketConfig struct {
	// Tag 二维码内容前缀，票据内容为 Tag+refNumber。
	Tag string `json:"tag"`
	// SizePixel 二维码图片边长，默认256。
	SizePixel int `json:"size_pixel"`
}

// Config 后端配置。
type Config struct {
	// debug等级，为1时输出info/warn/error日志，为0除以上外还输出debug日志
	DebugLevel int    `json:"debug_level"`
	ListenAddr string `json:"listen_addr"`
	// RefNumberTag 线索编号前缀。
	RefNumberTag string          `json:"ref_number_tag"`
	Postgres     *PostgresConfig `json:"postgres"`
	Storage      *StorageConfig  `json:"storage"`
	Mail         *MailConfig     `json:"mail"`
	Admin        *AdminConfig    `json:"admin"`
	Ticket       *TicketConfig   `json:"ticket"`
	QiniuKeyPair QiniuKeyPair    `json:"qiniu_key_pair"`
	JwtKey       string          `json:"jwt_key"`
}

// NewSample 返回样例配置。
func NewSample() *Config {
	return &Config{
		DebugLevel:   0,
		ListenAddr:   ":8080",
		RefNumberTag: "AFRO-",
		Postgres: &PostgresConfig{
			Host:           "localhost",
			Port:           5432,
			User:           "afroverseas",
			Database:       "afroverseas",
			SSLMode:        "disable",
			MaxConnections: 10,
			MaxIdle:        5,
		},
		Storage: &StorageConfig{
			Provider:  "local",
			LocalRoot: "static",
			URLPrefix: "/static",
		},
		Mail: &MailConfig{
			Provider:    "mock",
			SMTPHost:    "smtp.hostinger.com",
			SMTPPort:    465,
			From:        "noreply@afroverseas.com",
			FromName:    "Afroverseas Group",
			SendTimeout: 30,
			QueueSize:   64,
			WorkerCount: 2,
		},
		Admin: &AdminConfig{
			Username: "admin",
			Password: "admin",
		},
		Ticket: &TicketConfig{
			Tag:       "AFROVERSEAS-VERIFY:",
			SizePixel: 256,
		},
		JwtKey: "test-key",
	}
}
