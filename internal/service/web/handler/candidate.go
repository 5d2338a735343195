package handler

import (
	"io/ioutil"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qiniu/x/xlog"

	"github.com/solutions/afroverseas/internal/common/utils"
	"github.com/solutions/afroverseas/internal/protodef/form"
	"github.com/solutions/afroverseas/internal/protodef/model"
	"github.com/solutions/afroverseas/internal/service/cloud"
	"github.com/solutions/afroverseas/internal/service/db"
)

type CandidateApiHandler struct {
	Candidate db.CandidateInterface
	Storage   cloud.Storage
}

func NewCandidateApiHandler(candidate db.CandidateInterface, storage cloud.Storage) *CandidateApiHandler {
	return &CandidateApiHandler{Candidate: candidate, Storage: storage}
}

// ListCandidates 公开候选人列表，按预订数倒序。
func (h *CandidateApiHandler) ListCandidates(c *gin.Context) {
	xl := c.MustGet(model.XLogKey).(*xlog.Logger)
	requestID := xl.ReqId
	pageNum := c.GetInt(model.PageNumContextKey)
	pageSize := c.GetInt(model.PageSizeContextKey)

	candidates, err := h.Candidate.ListCandidates(xl, pageNum, pageSize)
	if err != nil {
		responseErr := model.NewResponseErrorInternal()
		model.NewFailResponse(*responseErr).WithRequestID(requestID).Send(c)
		return
	}
	resp := model.NewSuccessResponse(candidates).WithRequestID(requestID)
	c.JSON(http.StatusOK, resp)
}

// CreateCandidate 管理员上传候选人档案，简历与视频都持久化成功后才入库。
func (h *CandidateApiHandler) CreateCandidate(c *gin.Context) {
	xl := c.MustGet(model.XLogKey).(*xlog.Logger)
	requestID := xl.ReqId

	args := &form.CandidateCreateForm{}
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

	cvHeader, err := c.FormFile("cvFile")
	if err != nil {
		xl.Infof("cvFile missing, error %v", err)
		responseErr := model.NewResponseErrorBadRequest()
		model.NewFailResponse(*responseErr).WithRequestID(requestID).Send(c)
		return
	}
	videoHeader, err := c.FormFile("videoFile")
	if err != nil {
		xl.Infof("videoFile missing, error %v", err)
		responseErr := model.NewResponseErrorBadRequest()
		model.NewFailResponse(*responseErr).WithRequestID(requestID).Send(c)
		return
	}

	cvURL, err := h.saveUpload(xl, "cv", cvHeader)
	if err != nil {
		responseErr := model.NewResponseErrorStorage()
		model.NewFailResponse(*responseErr).WithRequestID(requestID).Send(c)
		return
	}
	videoURL, err := h.saveUpload(xl, "vid", videoHeader)
	if err != nil {
		responseErr := model.NewResponseErrorStorage()
		model.NewFailResponse(*responseErr).WithRequestID(requestID).Send(c)
		return
	}

	candidate := &model.CandidateDo{
		Name:            args.Name,
		Skills:          args.Skills,
		ExperienceYears: args.ExperienceYears,
		Whatsapp:        args.Whatsapp,
		CvURL:           cvURL,
		VideoURL:        videoURL,
		IsFeatured:      args.IsFeatured,
	}
	created, err := h.Candidate.CreateCandidate(xl, candidate)
	if err != nil {
		responseErr := model.NewResponseErrorInternal()
		model.NewFailResponse(*responseErr).WithRequestID(requestID).Send(c)
		return
	}
	xl.Infof("candidate %s created", created.Name)

	resp := model.NewSuccessResponse(created).WithRequestID(requestID)
	c.JSON(http.StatusOK, resp)
}

func (h *CandidateApiHandler) saveUpload(xl *xlog.Logger, prefix string, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		xl.Errorf("failed to open %s upload, error %v", prefix, err)
		return "", err
	}
	defer file.Close()
	data, err := ioutil.ReadAll(file)
	if err != nil {
		xl.Errorf("failed to read %s upload, error %v", prefix, err)
		return "", err
	}
	fileName := utils.UploadFileName(prefix, fileHeader.Filename)
	return h.Storage.Save(xl, cloud.StorageCategoryUploads, fileName, data)
}
