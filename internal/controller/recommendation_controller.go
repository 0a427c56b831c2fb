package controller

import (
	"errors"
	"net/http"

	"github.com/Shamanthsheni/SmartCareerAI/internal/service"
	"github.com/Shamanthsheni/SmartCareerAI/internal/util"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	Service *service.RecommendationService
}

func NewRecommendationController(svc *service.RecommendationService) *RecommendationController {
	return &RecommendationController{Service: svc}
}

// @Summary 获取用户的全部职业推荐
// @Description 返回所有历史批次，按生成顺序排列
// @Tags 职业推荐
// @Produce json
// @Param userId path string true "用户ID"
// @Success 200 {array} model.CareerRecommendation
// @Router /career-recommendations/{userId} [get]
func (c *RecommendationController) ListByUser(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.Service.ListByUser(ctx.Param("userId")))
}

// @Summary 基于历史答题生成职业推荐
// @Description 该用户无答题记录时返回400；AI不可用时返回固定降级推荐
// @Tags 职业推荐
// @Accept json
// @Produce json
// @Param body body service.GenerateRecommendationsRequest true "用户ID"
// @Success 200 {array} model.CareerRecommendation
// @Failure 400 {object} util.Response
// @Router /generate-recommendations [post]
func (c *RecommendationController) Generate(ctx *gin.Context) {
	var req service.GenerateRecommendationsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.FormatValidationError(err).Error())
		return
	}

	recommendations, err := c.Service.Generate(ctx.Request.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, util.ErrNoQuizResponses) {
			util.BadRequest(ctx, "No quiz responses found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, recommendations)
}
