package handler

import (
	"net/url"
	"testing"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"github.com/solutions/afroverseas/internal/common/utils"
	"github.com/solutions/afroverseas/internal/protodef/model"
)

func accountTestConf() utils.Config {
	return utils.Config{
		Admin:  &utils.AdminConfig{Username: "admin", Password: "secret"},
		JwtKey: "test-key",
	}
}

func TestAdminLogin(t *testing.T) {
	c, recorder := newLeadTestContext(t)
	h := NewAccountApiHandler(accountTestConf())

	postForm(c, "/v1/admin/login", url.Values{
		"username": {"admin"},
		"password": {"secret"},
	})
	h.AdminLogin(c)

	body := recorder.Body.String()
	assert.Equal(t, int64(0), gjson.Get(body, "code").Int())
	tokenString := gjson.Get(body, "data.token").String()
	assert.NotEmpty(t, tokenString)

	// 签出的token要能用同一个key验回来
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-key"), nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin", claims["username"])
}

func TestAdminLoginWrongPassword(t *testing.T) {
	c, recorder := newLeadTestContext(t)
	h := NewAccountApiHandler(accountTestConf())

	postForm(c, "/v1/admin/login", url.Values{
		"username": {"admin"},
		"password": {"guess"},
	})
	h.AdminLogin(c)

	body := recorder.Body.String()
	assert.Equal(t, int64(model.ResponseErrorWrongPassword), gjson.Get(body, "code").Int())
	assert.Empty(t, gjson.Get(body, "data.token").String())
}
