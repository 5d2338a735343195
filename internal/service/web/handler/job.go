package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qiniu/x/xlog"

	"github.com/solutions/afroverseas/internal/protodef/errors"
	"github.com/solutions/afroverseas/internal/protodef/form"
	"github.com/solutions/afroverseas/internal/protodef/model"
	"github.com/solutions/afroverseas/internal/service/db"
)

type JobApiHandler struct {
	Job db.JobInterface
}

func NewJobApiHandler(job db.JobInterface) *JobApiHandler {
	return &JobApiHandler{Job: job}
}

// ListJobs 公开职位列表，只返回上架职位，支持关键词/国家/类型过滤。
func (h *JobApiHandler) ListJobs(c *gin.Context) {
	xl := c.MustGet(model.XLogKey).(*xlog.Logger)
	requestID := xl.ReqId
	pageNum := c.GetInt(model.PageNumContextKey)
	pageSize := c.GetInt(model.PageSizeContextKey)

	args := &form.JobListForm{}
	if err := c.ShouldBindQuery(args); err != nil {
		xl.Infof("invalid query args, error %v", err)
		responseErr := model.NewResponseErrorBadRequest()
		model.NewFailResponse(*responseErr).WithRequestID(requestID).Send(c)
		return
	}
	filter := model.JobFilter{
		ActiveOnly: !args.All,
		Query:      args.Query,
		Country:    args.Country,
		JobType:    args.JobType,
	}
	jobs, err := h.Job.ListJobs(xl, filter, pageNum, pageSize)
	if err != nil {
		responseErr := model.NewResponseErrorInternal()
		model.NewFailResponse(*responseErr).WithRequestID(requestID).Send(c)
		return
	}
	resp := model.NewSuccessResponse(jobs).WithRequestID(requestID)
	c.JSON(http.StatusOK, resp)
}

// CreateJob 管理员发布职位。
func (h *JobApiHandler) CreateJob(c *gin.Context) {
	xl := c.MustGet(model.XLogKey).(*xlog.Logger)
	requestID := xl.ReqId

	args := &form.JobCreateForm{}
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

	job := &model.JobDo{
		JobCode:         args.JobCode,
		Title:           args.Title,
		Company:         args.Company,
		Location:        args.Location,
		Country:         args.Country,
		JobType:         args.JobType,
		SalaryRange:     args.SalaryRange,
		Experience:      args.Experience,
		Qualification:   args.Qualification,
		Description:     args.Description,
		ProjectDuration: args.ProjectDuration,
		PassportReq:     args.PassportReq,
		Benefits:        args.Benefits,
		InterviewInfo:   args.InterviewInfo,
	}
	created, err := h.Job.CreateJob(xl, job)
	if err != nil {
		if err == errors.ErrJobCodeUsed {
			responseErr := model.NewResponseErrorValidation(err)
			model.NewFailResponse(*responseErr).WithRequestID(requestID).Send(c)
			return
		}
		responseErr := model.NewResponseErrorInternal()
		model.NewFailResponse(*responseErr).WithRequestID(requestID).Send(c)
		return
	}
	xl.Infof("job %s (%s) posted", created.JobCode, created.Title)

	resp := model.NewSuccessResponse(created).WithRequestID(requestID)
	c.JSON(http.StatusOK, resp)
}
