package controller

import (
	"net/http"

	"github.com/Shamanthsheni/SmartCareerAI/internal/service"
	"github.com/Shamanthsheni/SmartCareerAI/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	Service *service.ChatService
}

func NewChatController(svc *service.ChatService) *ChatController {
	return &ChatController{Service: svc}
}

// @Summary 发送咨询消息
// @Description 存入学生消息并返回AI回复；AI不可用时返回固定致歉回复
// @Tags 咨询
// @Accept json
// @Produce json
// @Param body body service.ChatMessageRequest true "消息内容"
// @Success 200 {object} service.ChatMessageResult
// @Failure 400 {object} util.Response
// @Router /chat-message [post]
func (c *ChatController) SendMessage(ctx *gin.Context) {
	var req service.ChatMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.FormatValidationError(err).Error())
		return
	}

	result := c.Service.SendMessage(ctx.Request.Context(), req)
	ctx.JSON(http.StatusOK, result)
}

// @Summary 获取咨询历史
// @Description 按创建时间升序返回，供前端按时间线渲染
// @Tags 咨询
// @Produce json
// @Param userId path string true "用户ID"
// @Success 200 {array} model.ChatMessage
// @Router /chat-messages/{userId} [get]
func (c *ChatController) History(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.Service.History(ctx.Param("userId")))
}
