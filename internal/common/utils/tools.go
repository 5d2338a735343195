package utils

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// NewReqID 生成请求ID。
func NewReqID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
}

// NewRefNumber 生成线索编号：固定前缀+10位随机token。
// 编号会出现在邮件与票据二维码中，冲突时由调用方重新生成。
func NewRefNumber(tag string) string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:10])
	return tag + token
}

// UploadFileName 根据前缀与原始文件名生成不冲突的存储文件名，保留扩展名。
func UploadFileName(prefix, originalName string) string {
	ext := strings.ToLower(path.Ext(originalName))
	return fmt.Sprintf("%s_%s%s", prefix, strings.ReplaceAll(uuid.New().String(), "-", ""), ext)
}

// ReceiptFileName 回执文件名由线索编号决定。
func ReceiptFileName(refNumber, originalName string) string {
	ext := strings.ToLower(path.Ext(originalName))
	return fmt.Sprintf("receipt_%s%s", refNumber, ext)
}

// TicketFileName 票据图片文件名由线索编号决定。
func TicketFileName(refNumber string) string {
	return fmt.Sprintf("ticket_%s.png", refNumber)
}
