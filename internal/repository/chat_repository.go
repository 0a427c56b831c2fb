package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/Shamanthsheni/SmartCareerAI/internal/model"
)

type chatEntry struct {
	msg model.ChatMessage
	seq uint64
}

type ChatRepository struct {
	mu       sync.RWMutex
	messages map[string]chatEntry
	nextSeq  uint64
}

func NewChatRepository() *ChatRepository {
	return &ChatRepository{messages: make(map[string]chatEntry)}
}

func (r *ChatRepository) Create(insert model.InsertChatMessage) model.ChatMessage {
	msg := model.ChatMessage{
		Base: model.Base{
			ID:        model.GenerateUUID(),
			CreatedAt: time.Now(),
		},
		UserID:   insert.UserID,
		Message:  insert.Message,
		Response: insert.Response,
		IsFromAI: insert.IsFromAI,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextSeq++
	r.messages[msg.ID] = chatEntry{msg: msg, seq: r.nextSeq}
	return msg
}

func (r *ChatRepository) GetByID(id string) (model.ChatMessage, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.messages[id]
	return entry.msg, ok
}

// ListByUser 按创建时间升序返回会话记录；同一时刻的消息按写入顺序排列，
// 保证学生消息始终排在对应AI回复之前。
func (r *ChatRepository) ListByUser(userID string) []model.ChatMessage {
	r.mu.RLock()
	entries := make([]chatEntry, 0)
	for _, entry := range r.messages {
		if entry.msg.UserID == userID {
			entries = append(entries, entry)
		}
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].msg.CreatedAt.Equal(entries[j].msg.CreatedAt) {
			return entries[i].seq < entries[j].seq
		}
		return entries[i].msg.CreatedAt.Before(entries[j].msg.CreatedAt)
	})

	out := make([]model.ChatMessage, len(entries))
	for i, entry := range entries {
		out[i] = entry.msg
	}
	return out
}

func (r *ChatRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.messages)
}
