package repository

import (
	"sync"
	"time"

	"github.com/Shamanthsheni/SmartCareerAI/internal/model"
)

type RecommendationRepository struct {
	mu              sync.RWMutex
	recommendations map[string]model.CareerRecommendation
	order           []string
}

func NewRecommendationRepository() *RecommendationRepository {
	return &RecommendationRepository{recommendations: make(map[string]model.CareerRecommendation)}
}

func (r *RecommendationRepository) Create(insert model.InsertCareerRecommendation) model.CareerRecommendation {
	rec := model.CareerRecommendation{
		Base: model.Base{
			ID:        model.GenerateUUID(),
			CreatedAt: time.Now(),
		},
		UserID:          insert.UserID,
		CareerTitle:     insert.CareerTitle,
		MatchPercentage: insert.MatchPercentage,
		Description:     insert.Description,
		Requirements:    insert.Requirements,
		SalaryRange:     insert.SalaryRange,
		Roadmap:         insert.Roadmap,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.recommendations[rec.ID] = rec
	r.order = append(r.order, rec.ID)
	return rec
}

func (r *RecommendationRepository) GetByID(id string) (model.CareerRecommendation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.recommendations[id]
	return rec, ok
}

// ListByUser 按创建顺序返回该用户的全部推荐，历史批次累积保留
func (r *RecommendationRepository) ListByUser(userID string) []model.CareerRecommendation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.CareerRecommendation, 0)
	for _, id := range r.order {
		rec := r.recommendations[id]
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out
}

func (r *RecommendationRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.recommendations)
}
