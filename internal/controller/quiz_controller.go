package controller

import (
	"net/http"

	"github.com/Shamanthsheni/SmartCareerAI/internal/service"
	"github.com/Shamanthsheni/SmartCareerAI/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Service: svc}
}

// @Summary 提交测评答案并获取AI分析
// @Description 校验后调用AI分析单题答案，连同分析结果一并入库。
// @Description AI不可用时返回通用降级分析，接口本身不会因此失败。
// @Tags 测评
// @Accept json
// @Produce json
// @Param body body service.QuizAnalysisRequest true "答题内容"
// @Success 200 {object} service.QuizAnalysisResult
// @Failure 400 {object} util.Response
// @Router /quiz-analysis [post]
func (c *QuizController) SubmitAnalysis(ctx *gin.Context) {
	var req service.QuizAnalysisRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.FormatValidationError(err).Error())
		return
	}

	result := c.Service.SubmitAnswer(ctx.Request.Context(), req)
	ctx.JSON(http.StatusOK, result)
}

// @Summary 获取测评题库
// @Tags 测评
// @Produce json
// @Success 200 {object} util.Response
// @Router /quiz-questions [get]
func (c *QuizController) ListQuestions(ctx *gin.Context) {
	util.Success(ctx, c.Service.Questions())
}
