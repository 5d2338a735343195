package errors

import "encoding/json"

// ServerError 服务端内部错误与非正常返回结果定义
type ServerError struct {
	Code    int    `json:"code"`
	Summary string `json:"summary"`
}

func (e *ServerError) Error() string {
	buf, _ := json.Marshal(e)
	return string(buf)
}

// 各种服务端内部错误的错误码定义。错误码为5位数字。
const (
	// 1开头表示服务端内部，或数据库访问相关的错误。
	ServerErrorLeadNotFound      = 10001
	ServerErrorCandidateNotFound = 10002
	ServerErrorJobNotFound       = 10003
	ServerErrorInvalidArgument   = 10004
	ServerErrorJobCodeUsed       = 10005
	ServerErrorWrongCredentials  = 10006
	ServerErrorPostgresOpFail    = 11000
	// 2开头表示外部服务错误。
	ServerErrorStorageFail = 20001
	ServerErrorMailFail    = 20002
	ServerErrorTicketFail  = 20003
)

var (
	// ErrLeadNotFound 线索不存在。
	ErrLeadNotFound = &ServerError{Code: ServerErrorLeadNotFound, Summary: "no such lead"}
	// ErrInvalidArgument 操作缺少必要参数或参数非法。
	ErrInvalidArgument = &ServerError{Code: ServerErrorInvalidArgument, Summary: "invalid argument"}
	// ErrJobCodeUsed 职位编号已被使用。
	ErrJobCodeUsed = &ServerError{Code: ServerErrorJobCodeUsed, Summary: "job code already used"}
	// ErrWrongCredentials 管理员账号或密码错误。
	ErrWrongCredentials = &ServerError{Code: ServerErrorWrongCredentials, Summary: "wrong username or password"}
	// ErrStorageFail 文件存储失败。
	ErrStorageFail = &ServerError{Code: ServerErrorStorageFail, Summary: "failed to store file"}
)
