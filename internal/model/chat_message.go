package model

// ChatMessage 咨询会话消息。一次问答产生两条记录：
// 学生消息（IsFromAI=false）与AI回复（IsFromAI=true，Response留空）。
// swagger:model ChatMessage
type ChatMessage struct {
	Base
	UserID   string `json:"userId"`
	Message  string `json:"message"`
	Response string `json:"response"`
	IsFromAI bool   `json:"isFromAI"`
}

type InsertChatMessage struct {
	UserID   string `json:"userId" binding:"required"`
	Message  string `json:"message" binding:"required"`
	Response string `json:"response"`
	IsFromAI bool   `json:"isFromAI"`
}
