package controller

import (
	"github.com/Shamanthsheni/SmartCareerAI/internal/repository"
	"github.com/Shamanthsheni/SmartCareerAI/internal/service"
	"github.com/Shamanthsheni/SmartCareerAI/internal/util"

	"github.com/gin-gonic/gin"
)

type CollegeController struct {
	Service *service.CollegeService
}

func NewCollegeController(svc *service.CollegeService) *CollegeController {
	return &CollegeController{Service: svc}
}

// @Summary 院校目录
// @Description 按地区、类型、课程关键字筛选
// @Tags 院校
// @Produce json
// @Param district query string false "地区"
// @Param type query string false "院校类型"
// @Param course query string false "课程关键字"
// @Success 200 {object} util.Response
// @Router /colleges [get]
func (c *CollegeController) List(ctx *gin.Context) {
	filter := repository.CollegeFilter{
		District: ctx.Query("district"),
		Type:     ctx.Query("type"),
		Course:   ctx.Query("course"),
	}
	util.Success(ctx, c.Service.List(filter))
}

// @Summary 院校详情
// @Tags 院校
// @Produce json
// @Param id path string true "院校ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /colleges/{id} [get]
func (c *CollegeController) Get(ctx *gin.Context) {
	college, err := c.Service.Get(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, college)
}
