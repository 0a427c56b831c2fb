package controller

import (
	"github.com/Shamanthsheni/SmartCareerAI/internal/service"
	"github.com/Shamanthsheni/SmartCareerAI/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Service *service.AnalyticsService
}

func NewAnalyticsController(svc *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Service: svc}
}

// @Summary 管理端统计看板
// @Description 用户、答题、推荐、咨询的总量与兴趣分布
// @Tags 管理
// @Produce json
// @Success 200 {object} util.Response
// @Router /admin/analytics [get]
func (c *AnalyticsController) Dashboard(ctx *gin.Context) {
	util.Success(ctx, c.Service.Dashboard())
}
