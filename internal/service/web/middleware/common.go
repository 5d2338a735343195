package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/qiniu/x/xlog"

	"github.com/solutions/afroverseas/internal/protodef/model"
)

// FetchPageInfo 填充分页参数，非法值回落到默认值。
func FetchPageInfo(c *gin.Context) {
	xl := c.MustGet(model.XLogKey).(*xlog.Logger)
	pageNumArg := c.DefaultQuery("pageNum", "1")
	pageSizeArg := c.DefaultQuery("pageSize", "20")
	pageNum, err := strconv.Atoi(pageNumArg)
	if err != nil || pageNum < 1 {
		xl.Debugf("FetchPageInfo.pageNum transfer int err, use default value %v", err)
		pageNum = 1
	}
	pageSize, err := strconv.Atoi(pageSizeArg)
	if err != nil || pageSize < 1 {
		xl.Debugf("FetchPageInfo.pageSize transfer int err, use default value %v", err)
		pageSize = 20
	}
	c.Set(model.PageNumContextKey, pageNum)
	c.Set(model.PageSizeContextKey, pageSize)
}
