package model

type ResponseError struct {
	// 自定义错误码。
	Code int `json:"code"`
	// 请求ID。
	RequestID string `json:"requestID"`
	// Message
	Message string `json:"message"`
}

const (
	ResponseErrorBadRequest      = 400000
	ResponseErrorValidation      = 400001
	ResponseErrorUnauthorized    = 401000
	ResponseErrorNotLoggedIn     = 401001
	ResponseErrorBadToken        = 401003
	ResponseErrorWrongPassword   = 401004
	ResponseErrorNotFound        = 404000
	ResponseErrorNoSuchLead      = 404001
	ResponseErrorNoSuchJob       = 404002
	ResponseErrorInternal        = 500000
	ResponseErrorStorage         = 500001
	ResponseErrorExternalService = 502001
)

// NewResponseErrorBadRequest 参数错误。
func NewResponseErrorBadRequest() *ResponseError {
	return &ResponseError{
		Code:    ResponseErrorBadRequest,
		Message: "bad request",
	}
}

func NewResponseErrorValidation(err error) *ResponseError {
	return &ResponseError{
		Code:    ResponseErrorValidation,
		Message: err.Error(),
	}
}

// NewResponseErrorNotLoggedIn 管理员未登录。
func NewResponseErrorNotLoggedIn() *ResponseError {
	return &ResponseError{
		Code:    ResponseErrorNotLoggedIn,
		Message: "not logged in",
	}
}

// NewResponseErrorBadToken 登录token错误。
func NewResponseErrorBadToken() *ResponseError {
	return &ResponseError{
		Code:    ResponseErrorBadToken,
		Message: "bad token",
	}
}

// NewResponseErrorWrongPassword 账号或密码错误。
func NewResponseErrorWrongPassword() *ResponseError {
	return &ResponseError{
		Code:    ResponseErrorWrongPassword,
		Message: "wrong username or password",
	}
}

func NewResponseErrorNotFound() *ResponseError {
	return &ResponseError{
		Code:    ResponseErrorNotFound,
		Message: "not found",
	}
}

// NewResponseErrorNoSuchLead 无此线索。
func NewResponseErrorNoSuchLead() *ResponseError {
	return &ResponseError{
		Code:    ResponseErrorNoSuchLead,
		Message: "no such lead",
	}
}

// NewResponseErrorStorage 文件存储失败。
func NewResponseErrorStorage() *ResponseError {
	return &ResponseError{
		Code:    ResponseErrorStorage,
		Message: "failed to store file",
	}
}

// NewResponseErrorInternal 其他内部服务错误。
func NewResponseErrorInternal() *ResponseError {
	return &ResponseError{
		Code:    ResponseErrorInternal,
		Message: "internal server error",
	}
}

func NewResponseError(code int, message string) *ResponseError {
	return &ResponseError{
		Code:    code,
		Message: message,
	}
}
