package repository

import (
	"sync"
	"time"

	"github.com/Shamanthsheni/SmartCareerAI/internal/model"
)

type QuizRepository struct {
	mu        sync.RWMutex
	responses map[string]model.QuizResponse
}

func NewQuizRepository() *QuizRepository {
	return &QuizRepository{responses: make(map[string]model.QuizResponse)}
}

func (r *QuizRepository) Create(insert model.InsertQuizResponse) model.QuizResponse {
	resp := model.QuizResponse{
		Base: model.Base{
			ID:        model.GenerateUUID(),
			CreatedAt: time.Now(),
		},
		UserID:     insert.UserID,
		QuestionID: insert.QuestionID,
		Answer:     insert.Answer,
		AIAnalysis: insert.AIAnalysis,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.responses[resp.ID] = resp
	return resp
}

func (r *QuizRepository) GetByID(id string) (model.QuizResponse, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	resp, ok := r.responses[id]
	return resp, ok
}

func (r *QuizRepository) ListByUser(userID string) []model.QuizResponse {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.QuizResponse, 0)
	for _, resp := range r.responses {
		if resp.UserID == userID {
			out = append(out, resp)
		}
	}
	return out
}

func (r *QuizRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.responses)
}
