package service

import (
	"context"

	"github.com/Shamanthsheni/SmartCareerAI/internal/model"
	"github.com/Shamanthsheni/SmartCareerAI/internal/repository"
	"github.com/Shamanthsheni/SmartCareerAI/internal/util"
)

type RecommendationService struct {
	repo     *repository.RecommendationRepository
	quizRepo *repository.QuizRepository
	advisor  *AdvisorService
}

func NewRecommendationService(repo *repository.RecommendationRepository, quizRepo *repository.QuizRepository, advisor *AdvisorService) *RecommendationService {
	return &RecommendationService{repo: repo, quizRepo: quizRepo, advisor: advisor}
}

type GenerateRecommendationsRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// Generate 基于历史答题合成一批新推荐并入库。
// 无历史答题时返回 ErrNoQuizResponses；历史批次不删除、不去重。
func (s *RecommendationService) Generate(ctx context.Context, userID string) ([]model.CareerRecommendation, error) {
	responses := s.quizRepo.ListByUser(userID)
	if len(responses) == 0 {
		return nil, util.ErrNoQuizResponses
	}

	inserts := s.advisor.SynthesizeRecommendations(ctx, userID, responses)

	stored := make([]model.CareerRecommendation, len(inserts))
	for i, insert := range inserts {
		stored[i] = s.repo.Create(insert)
	}
	return stored, nil
}

func (s *RecommendationService) ListByUser(userID string) []model.CareerRecommendation {
	return s.repo.ListByUser(userID)
}
