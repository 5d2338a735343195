package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/qiniu/x/xlog"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"github.com/solutions/afroverseas/internal/protodef/errors"
	"github.com/solutions/afroverseas/internal/protodef/model"
)

type fakeLeadService struct {
	created   *model.LeadDo
	verifyErr error
	verified  *model.LeadDo
	acked     []*model.LeadDo
}

func (f *fakeLeadService) CreateLead(xl *xlog.Logger, lead *model.LeadDo) (*model.LeadDo, error) {
	lead.ID = 42
	lead.Status = string(model.LeadStatusPending)
	f.created = lead
	return lead, nil
}

func (f *fakeLeadService) GetLeadByID(xl *xlog.Logger, id int64) (*model.LeadDo, error) {
	return nil, errors.ErrLeadNotFound
}

func (f *fakeLeadService) ListLeads(xl *xlog.Logger, status string, pageNum, pageSize int) ([]model.LeadDo, error) {
	return []model.LeadDo{}, nil
}

func (f *fakeLeadService) CountLeadsByStatus(xl *xlog.Logger, status model.LeadStatus) (int, error) {
	return 0, nil
}

func (f *fakeLeadService) Verify(xl *xlog.Logger, id int64, action model.VerifyAction, newDate string) (*model.LeadDo, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.verified, nil
}

func (f *fakeLeadService) AcknowledgeLead(xl *xlog.Logger, lead *model.LeadDo) {
	f.acked = append(f.acked, lead)
}

type nopStorage struct{}

func (nopStorage) Save(xl *xlog.Logger, category, fileName string, data []byte) (string, error) {
	return "/static/" + category + "/" + fileName, nil
}

func newLeadTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set(model.XLogKey, xlog.New("handler-test"))
	return c, recorder
}

func postForm(c *gin.Context, path string, values url.Values) {
	c.Request = httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
}

func TestSubmitLead(t *testing.T) {
	c, recorder := newLeadTestContext(t)
	lead := &fakeLeadService{}
	h := NewLeadApiHandler(lead, nopStorage{}, "AFRO-")

	postForm(c, "/v1/leads", url.Values{
		"type":          {string(model.LeadTypePaidAppointment)},
		"whatsapp":      {"+25761234567"},
		"email":         {"client@example.com"},
		"service":       {"Work Visa"},
		"country":       {"Qatar"},
		"date":          {"2026-09-15"},
		"paymentMethod": {"Lumicash"},
	})
	h.SubmitLead(c)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Equal(t, int64(0), gjson.Get(body, "code").Int())
	assert.Equal(t, int64(42), gjson.Get(body, "data.leadId").Int())
	assert.Equal(t, string(model.LeadStatusPending), gjson.Get(body, "data.status").String())
	assert.Regexp(t, `^AFRO-[0-9A-F]{10}$`, gjson.Get(body, "data.refNumber").String())
	// 提交成功后应当安排确认邮件
	assert.Len(t, lead.acked, 1)
}

func TestSubmitLeadRejectsUnknownType(t *testing.T) {
	c, recorder := newLeadTestContext(t)
	lead := &fakeLeadService{}
	h := NewLeadApiHandler(lead, nopStorage{}, "AFRO-")

	postForm(c, "/v1/leads", url.Values{
		"type":     {"WALK_IN"},
		"whatsapp": {"+25761234567"},
	})
	h.SubmitLead(c)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.NotEqual(t, int64(0), gjson.Get(body, "code").Int())
	assert.Nil(t, lead.created)
	assert.Empty(t, lead.acked)
}

func TestVerifyLeadNotFound(t *testing.T) {
	c, recorder := newLeadTestContext(t)
	lead := &fakeLeadService{verifyErr: errors.ErrLeadNotFound}
	h := NewLeadApiHandler(lead, nopStorage{}, "AFRO-")

	c.Params = gin.Params{{Key: "leadId", Value: "404"}}
	postForm(c, "/v1/admin/leads/404/verify", url.Values{"action": {string(model.VerifyActionApprove)}})
	h.VerifyLead(c)

	body := recorder.Body.String()
	assert.NotEqual(t, int64(0), gjson.Get(body, "code").Int())
}

func TestVerifyLeadPostponeNeedsDate(t *testing.T) {
	c, recorder := newLeadTestContext(t)
	lead := &fakeLeadService{}
	h := NewLeadApiHandler(lead, nopStorage{}, "AFRO-")

	c.Params = gin.Params{{Key: "leadId", Value: "7"}}
	postForm(c, "/v1/admin/leads/7/verify", url.Values{"action": {string(model.VerifyActionPostpone)}})
	h.VerifyLead(c)

	body := recorder.Body.String()
	assert.NotEqual(t, int64(0), gjson.Get(body, "code").Int())
	assert.Contains(t, gjson.Get(body, "message").String(), "newDate")
}

func TestVerifyLeadApproved(t *testing.T) {
	c, recorder := newLeadTestContext(t)
	lead := &fakeLeadService{verified: &model.LeadDo{
		ID:        7,
		RefNumber: "AFRO-0123456789",
		Status:    string(model.LeadStatusApproved),
	}}
	h := NewLeadApiHandler(lead, nopStorage{}, "AFRO-")

	c.Params = gin.Params{{Key: "leadId", Value: "7"}}
	postForm(c, "/v1/admin/leads/7/verify", url.Values{"action": {string(model.VerifyActionApprove)}})
	h.VerifyLead(c)

	body := recorder.Body.String()
	assert.Equal(t, int64(0), gjson.Get(body, "code").Int(), fmt.Sprintf("body: %s", body))
	assert.Equal(t, "AFRO-0123456789", gjson.Get(body, "data.refNumber").String())
	assert.Equal(t, string(model.LeadStatusApproved), gjson.Get(body, "data.status").String())
}
