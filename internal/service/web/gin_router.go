package web

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/qiniu/x/xlog"

	"github.com/solutions/afroverseas/internal/common/utils"
	"github.com/solutions/afroverseas/internal/protodef/model"
	"github.com/solutions/afroverseas/internal/service/cloud"
	"github.com/solutions/afroverseas/internal/service/db"
	"github.com/solutions/afroverseas/internal/service/web/handler"
	"github.com/solutions/afroverseas/internal/service/web/middleware"
)

// NewRouter 返回gin router，分流API。
func NewRouter(config *utils.Config, lead db.LeadInterface, job db.JobInterface,
	candidate db.CandidateInterface, storage cloud.Storage) (*gin.Engine, error) {
	// 1. 初始化GIN
	router := gin.New()
	router.Use(gin.Recovery())
	// 1.1. 全局CORS配置，前端与管理后台都跨域访问
	router.Use(cors.Default())

	// 2. 声明Handler
	leadApiHandler := handler.NewLeadApiHandler(lead, storage, config.RefNumberTag)
	jobApiHandler := handler.NewJobApiHandler(job)
	candidateApiHandler := handler.NewCandidateApiHandler(candidate, storage)
	accountApiHandler := handler.NewAccountApiHandler(*config)

	middleware.InitMiddleware(*config)

	// 3. 本地存储时由本服务静态托管上传文件与票据图片
	if config.Storage.Provider == "local" || config.Storage.Provider == "" {
		router.Static(config.Storage.URLPrefix, config.Storage.LocalRoot)
	}

	// 4. 配置V1路径
	v1 := router.Group("/v1", addRequestID, middleware.FetchPageInfo)
	{
		// 4.1 公开目录查询
		v1.GET("jobs", jobApiHandler.ListJobs)
		v1.GET("candidates", candidateApiHandler.ListCandidates)
		// 4.2 提交线索（预约向导/招聘购物车）
		v1.POST("leads", leadApiHandler.SubmitLead)
		// 4.3 管理员登录
		v1.POST("admin/login", accountApiHandler.AdminLogin)
	}
	admin := v1.Group("/admin", middleware.Authenticate)
	{
		// 4.4 发布职位
		admin.POST("jobs", jobApiHandler.CreateJob)
		// 4.5 上传候选人档案
		admin.POST("candidates", candidateApiHandler.CreateCandidate)
		// 4.6 线索列表
		admin.GET("leads", leadApiHandler.ListLeads)
		// 4.7 审核线索
		admin.POST("leads/:leadId/verify", leadApiHandler.VerifyLead)
	}

	router.NoRoute(addRequestID, returnNotFound)
	router.RedirectTrailingSlash = false

	return router, nil
}

func addRequestID(c *gin.Context) {
	requestID := ""
	if requestID = c.Request.Header.Get(model.RequestIDHeader); requestID == "" {
		requestID = utils.NewReqID()
		c.Request.Header.Set(model.RequestIDHeader, requestID)
	}
	xl := xlog.New(requestID)
	xl.Debugf("request: %s %s", c.Request.Method, c.Request.URL.Path)
	c.Set(model.XLogKey, xl)
	c.Set(model.RequestStartKey, time.Now())
}

func returnNotFound(c *gin.Context) {
	xl := c.MustGet(model.XLogKey).(*xlog.Logger)
	xl.Debugf("%s %s: not found", c.Request.Method, c.Request.URL.Path)
	responseErr := model.NewResponseErrorNotFound()
	resp := model.NewFailResponse(*responseErr)
	c.JSON(http.StatusOK, resp)
}
