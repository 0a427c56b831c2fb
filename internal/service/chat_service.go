package service

import (
	"context"

	"github.com/Shamanthsheni/SmartCareerAI/internal/model"
	"github.com/Shamanthsheni/SmartCareerAI/internal/repository"
)

type ChatService struct {
	repo    *repository.ChatRepository
	advisor *AdvisorService
}

func NewChatService(repo *repository.ChatRepository, advisor *AdvisorService) *ChatService {
	return &ChatService{repo: repo, advisor: advisor}
}

type ChatMessageRequest struct {
	UserID   string `json:"userId" binding:"required"`
	Message  string `json:"message" binding:"required"`
	Response string `json:"response"`
	IsFromAI bool   `json:"isFromAI"`
}

type ChatMessageResult struct {
	Success  bool              `json:"success"`
	Response string            `json:"response"`
	Message  model.ChatMessage `json:"message"`
}

// SendMessage 一次问答写入两条记录：先存学生消息，再存AI回复。
// 返回的 Message 是AI侧记录，与前端渲染约定一致。
func (s *ChatService) SendMessage(ctx context.Context, req ChatMessageRequest) ChatMessageResult {
	reply := s.advisor.ChatReply(ctx, req.Message, req.UserID)

	s.repo.Create(model.InsertChatMessage{
		UserID:   req.UserID,
		Message:  req.Message,
		Response: req.Response,
		IsFromAI: req.IsFromAI,
	})

	aiMessage := s.repo.Create(model.InsertChatMessage{
		UserID:   req.UserID,
		Message:  reply,
		Response: "",
		IsFromAI: true,
	})

	return ChatMessageResult{
		Success:  true,
		Response: reply,
		Message:  aiMessage,
	}
}

// History 按创建时间升序返回会话记录
func (s *ChatService) History(userID string) []model.ChatMessage {
	return s.repo.ListByUser(userID)
}
