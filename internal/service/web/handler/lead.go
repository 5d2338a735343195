package handler

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/qiniu/x/xlog"

	"github.com/solutions/afroverseas/internal/common/utils"
	"github.com/solutions/afroverseas/internal/protodef/errors"
	"github.com/solutions/afroverseas/internal/protodef/form"
	"github.com/solutions/afroverseas/internal/protodef/model"
	"github.com/solutions/afroverseas/internal/service/cloud"
	"github.com/solutions/afroverseas/internal/service/db"
)

type LeadApiHandler struct {
	Lead    db.LeadInterface
	Storage cloud.Storage
	RefTag  string
}

func NewLeadApiHandler(lead db.LeadInterface, storage cloud.Storage, refTag string) *LeadApiHandler {
	return &LeadApiHandler{
		Lead:    lead,
		Storage: storage,
		RefTag:  refTag,
	}
}

// SubmitLead 公开提交线索：预约向导或招聘购物车。
// 回执文件先落盘，落盘失败直接放弃，不写半截记录。
func (h *LeadApiHandler) SubmitLead(c *gin.Context) {
	xl := c.MustGet(model.XLogKey).(*xlog.Logger)
	requestID := xl.ReqId

	args := &form.LeadSubmitForm{}
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

	refNumber := utils.NewRefNumber(h.RefTag)

	// 回执文件按编号命名，入库前必须已持久化
	receiptURL := ""
	if fileHeader, err := c.FormFile("receipt"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			xl.Errorf("failed to open receipt upload, error %v", err)
			responseErr := model.NewResponseErrorStorage()
			model.NewFailResponse(*responseErr).WithRequestID(requestID).Send(c)
			return
		}
		data, err := ioutil.ReadAll(file)
		file.Close()
		if err != nil {
			xl.Errorf("failed to read receipt upload, error %v", err)
			responseErr := model.NewResponseErrorStorage()
			model.NewFailResponse(*responseErr).WithRequestID(requestID).Send(c)
			return
		}
		fileName := utils.ReceiptFileName(refNumber, fileHeader.Filename)
		receiptURL, err = h.Storage.Save(xl, cloud.StorageCategoryUploads, fileName, data)
		if err != nil {
			responseErr := model.NewResponseErrorStorage()
			model.NewFailResponse(*responseErr).WithRequestID(requestID).Send(c)
			return
		}
	}

	message := args.Message
	if message == "" {
		message = fmt.Sprintf("Request from %s for %s to %s", args.Whatsapp, args.Service, args.Country)
	}
	lead := &model.LeadDo{
		RefNumber:       refNumber,
		Type:            args.Type,
		Email:           args.Email,
		Whatsapp:        args.Whatsapp,
		ServiceType:     args.Service,
		Country:         args.Country,
		SubType:         args.SubType,
		AppointmentDate: args.Date,
		PaymentMethod:   args.PaymentMethod,
		ReceiptURL:      receiptURL,
		CandidateIDs:    args.CandidateIds,
		Message:         message,
	}
	created, err := h.Lead.CreateLead(xl, lead)
	if err != nil {
		responseErr := model.NewResponseErrorInternal()
		model.NewFailResponse(*responseErr).WithRequestID(requestID).Send(c)
		return
	}
	xl.Infof("new lead %s (%s) from %s", created.RefNumber, created.Type, created.Whatsapp)

	// 确认邮件异步投递，提交结果不等它
	h.Lead.AcknowledgeLead(xl, created)

	resp := model.NewSuccessResponse(model.SubmitLeadResponse{
		LeadID:    created.ID,
		RefNumber: created.RefNumber,
		Status:    created.Status,
	}).WithRequestID(requestID)
	c.JSON(http.StatusOK, resp)
}

// VerifyLead 管理员审核：APPROVE/DENY/POSTPONE。
func (h *LeadApiHandler) VerifyLead(c *gin.Context) {
	xl := c.MustGet(model.XLogKey).(*xlog.Logger)
	requestID := xl.ReqId

	leadID, err := strconv.ParseInt(c.Param("leadId"), 10, 64)
	if err != nil {
		xl.Infof("invalid leadId %s", c.Param("leadId"))
		responseErr := model.NewResponseErrorBadRequest()
		model.NewFailResponse(*responseErr).WithRequestID(requestID).Send(c)
		return
	}

	args := &form.LeadVerifyForm{}
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

	lead, err := h.Lead.Verify(xl, leadID, model.VerifyAction(args.Action), args.NewDate)
	if err != nil {
		switch err {
		case errors.ErrLeadNotFound:
			responseErr := model.NewResponseErrorNoSuchLead()
			model.NewFailResponse(*responseErr).WithRequestID(requestID).Send(c)
		case errors.ErrInvalidArgument:
			responseErr := model.NewResponseErrorValidation(err)
			model.NewFailResponse(*responseErr).WithRequestID(requestID).Send(c)
		default:
			responseErr := model.NewResponseErrorInternal()
			model.NewFailResponse(*responseErr).WithRequestID(requestID).Send(c)
		}
		return
	}
	xl.Infof("lead %s verified with %s, status now %s", lead.RefNumber, args.Action, lead.Status)

	resp := model.NewSuccessResponse(model.VerifyLeadResponse{
		RefNumber: lead.RefNumber,
		Status:    lead.Status,
	}).WithRequestID(requestID)
	c.JSON(http.StatusOK, resp)
}

// ListLeads 管理端线索列表，可按状态过滤，新的在前。
func (h *LeadApiHandler) ListLeads(c *gin.Context) {
	xl := c.MustGet(model.XLogKey).(*xlog.Logger)
	requestID := xl.ReqId
	pageNum := c.GetInt(model.PageNumContextKey)
	pageSize := c.GetInt(model.PageSizeContextKey)

	leads, err := h.Lead.ListLeads(xl, c.Query("status"), pageNum, pageSize)
	if err != nil {
		responseErr := model.NewResponseErrorInternal()
		model.NewFailResponse(*responseErr).WithRequestID(requestID).Send(c)
		return
	}
	resp := model.NewSuccessResponse(leads).WithRequestID(requestID)
	c.JSON(http.StatusOK, resp)
}
