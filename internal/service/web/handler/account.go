package handler

import (
	"net/http"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/qiniu/x/xlog"

	"github.com/solutions/afroverseas/internal/common/utils"
	"github.com/solutions/afroverseas/internal/protodef/form"
	"github.com/solutions/afroverseas/internal/protodef/model"
)

type AccountApiHandler struct {
	Admin  utils.AdminConfig
	JwtKey string
}

func NewAccountApiHandler(conf utils.Config) *AccountApiHandler {
	return &AccountApiHandler{
		Admin:  *conf.Admin,
		JwtKey: conf.JwtKey,
	}
}

// AdminLogin 管理员登录，成功后签发Bearer token。
func (h *AccountApiHandler) AdminLogin(c *gin.Context) {
	xl := c.MustGet(model.XLogKey).(*xlog.Logger)
	requestID := xl.ReqId

	args := &form.AdminLoginForm{}
	if err := c.ShouldBind(args); err != nil {
		xl.Infof("invalid args in body, error %v", err)
		responseErr := model.NewResponseErrorBadRequest()
		model.NewFailResponse(*responseErr).WithRequestID(requestID).Send(c)
		return
	}
	if err := args.Validate(); err != nil {
		xl.Infof("form validate error:%v", err)
		responseErr := model.NewResponseErrorValidation(err)
		model.NewFailResponse(*responseErr).WithRequestID(requestID).Send(c)
		return
	}

	if args.Username != h.Admin.Username || args.Password != h.Admin.Password {
		xl.Infof("wrong credentials for user %s", args.Username)
		responseErr := model.NewResponseErrorWrongPassword()
		model.NewFailResponse(*responseErr).WithRequestID(requestID).Send(c)
		return
	}

	claims := jwt.MapClaims{
		"username":  args.Username,
		"timestamp": time.Now().UnixNano(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err := t.SignedString([]byte(h.JwtKey))
	if err != nil {
		xl.Errorf("failed to sign token, error %v", err)
		responseErr := model.NewResponseErrorInternal()
		model.NewFailResponse(*responseErr).WithRequestID(requestID).Send(c)
		return
	}

	resp := model.NewSuccessResponse(model.AdminLoginResponse{Token: token}).WithRequestID(requestID)
	c.JSON(http.StatusOK, resp)
}
