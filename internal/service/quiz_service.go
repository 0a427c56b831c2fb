package service

import (
	"context"

	"github.com/Shamanthsheni/SmartCareerAI/internal/model"
	"github.com/Shamanthsheni/SmartCareerAI/internal/repository"
)

type QuizService struct {
	repo      *repository.QuizRepository
	advisor   *AdvisorService
	questions []model.QuizQuestion
}

func NewQuizService(repo *repository.QuizRepository, advisor *AdvisorService, questions []model.QuizQuestion) *QuizService {
	return &QuizService{repo: repo, advisor: advisor, questions: questions}
}

type QuizAnalysisRequest struct {
	UserID     string `json:"userId" binding:"required"`
	QuestionID string `json:"questionId" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

type QuizAnalysisResult struct {
	Success    bool               `json:"success"`
	Response   model.QuizResponse `json:"response"`
	AIAnalysis model.AIAnalysis   `json:"aiAnalysis"`
}

// SubmitAnswer 校验→AI分析→入库→组装响应。AI层自带降级，
// 因此这里不会因外部服务故障而失败。
func (s *QuizService) SubmitAnswer(ctx context.Context, req QuizAnalysisRequest) QuizAnalysisResult {
	analysis := s.advisor.AnalyzeAnswer(ctx, req.QuestionID, req.Answer, req.UserID)

	stored := s.repo.Create(model.InsertQuizResponse{
		UserID:     req.UserID,
		QuestionID: req.QuestionID,
		Answer:     req.Answer,
		AIAnalysis: &analysis,
	})

	return QuizAnalysisResult{
		Success:    true,
		Response:   stored,
		AIAnalysis: analysis,
	}
}

// Questions 返回静态测评题库
func (s *QuizService) Questions() []model.QuizQuestion {
	return s.questions
}

func (s *QuizService) ResponsesByUser(userID string) []model.QuizResponse {
	return s.repo.ListByUser(userID)
}
