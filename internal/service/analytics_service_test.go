package service

import (
	"testing"

	"github.com/Shamanthsheni/SmartCareerAI/internal/model"
	"github.com/Shamanthsheni/SmartCareerAI/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsDashboardCounts(t *testing.T) {
	userRepo := repository.NewUserRepository()
	quizRepo := repository.NewQuizRepository()
	recRepo := repository.NewRecommendationRepository()
	chatRepo := repository.NewChatRepository()

	userRepo.Create(model.InsertUser{
		Username: "s1", Email: "s1@example.com", Role: model.RoleStudent,
		Profile: model.Profile{Name: "S1", Interests: []string{"Technology", "Art"}},
	})
	userRepo.Create(model.InsertUser{
		Username: "s2", Email: "s2@example.com", Role: model.RoleStudent,
		Profile: model.Profile{Name: "S2", Interests: []string{"Technology"}},
	})
	userRepo.Create(model.InsertUser{
		Username: "a1", Email: "a1@example.com", Role: model.RoleAdmin,
		Profile: model.Profile{Name: "A1"},
	})

	quizRepo.Create(model.InsertQuizResponse{UserID: "u", QuestionID: "q1", Answer: "x"})
	chatRepo.Create(model.InsertChatMessage{UserID: "u", Message: "hi"})

	svc := NewAnalyticsService(userRepo, quizRepo, recRepo, chatRepo)
	stats := svc.Dashboard()

	assert.Equal(t, 3, stats.TotalUsers)
	assert.Equal(t, 1, stats.TotalQuizResponses)
	assert.Equal(t, 0, stats.TotalRecommendations)
	assert.Equal(t, 1, stats.TotalChatMessages)
	assert.Equal(t, 2, stats.RoleBreakdown["student"])
	assert.Equal(t, 1, stats.RoleBreakdown["admin"])

	require.NotEmpty(t, stats.TopInterests)
	assert.Equal(t, "Technology", stats.TopInterests[0].Interest)
	assert.Equal(t, 2, stats.TopInterests[0].Count)
}

func TestAnalyticsDashboardTopInterestsCapped(t *testing.T) {
	userRepo := repository.NewUserRepository()
	userRepo.Create(model.InsertUser{
		Username: "s1", Email: "s1@example.com", Role: model.RoleStudent,
		Profile: model.Profile{Name: "S1", Interests: []string{"A", "B", "C", "D", "E", "F", "G"}},
	})

	svc := NewAnalyticsService(userRepo, repository.NewQuizRepository(), repository.NewRecommendationRepository(), repository.NewChatRepository())
	stats := svc.Dashboard()

	assert.Len(t, stats.TopInterests, 5)
	// 计数相同按名称排序，保证输出稳定
	assert.Equal(t, "A", stats.TopInterests[0].Interest)
}
