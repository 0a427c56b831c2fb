package service

import (
	"sort"

	"github.com/Shamanthsheni/SmartCareerAI/internal/repository"
)

// AnalyticsService 管理端看板的统计汇总，全部从内存仓库即时计算
type AnalyticsService struct {
	userRepo *repository.UserRepository
	quizRepo *repository.QuizRepository
	recRepo  *repository.RecommendationRepository
	chatRepo *repository.ChatRepository
}

func NewAnalyticsService(
	userRepo *repository.UserRepository,
	quizRepo *repository.QuizRepository,
	recRepo *repository.RecommendationRepository,
	chatRepo *repository.ChatRepository,
) *AnalyticsService {
	return &AnalyticsService{
		userRepo: userRepo,
		quizRepo: quizRepo,
		recRepo:  recRepo,
		chatRepo: chatRepo,
	}
}

type InterestCount struct {
	Interest string `json:"interest"`
	Count    int    `json:"count"`
}

type DashboardStats struct {
	TotalUsers           int             `json:"totalUsers"`
	TotalQuizResponses   int             `json:"totalQuizResponses"`
	TotalRecommendations int             `json:"totalRecommendations"`
	TotalChatMessages    int             `json:"totalChatMessages"`
	RoleBreakdown        map[string]int  `json:"roleBreakdown"`
	TopInterests         []InterestCount `json:"topInterests"`
}

func (s *AnalyticsService) Dashboard() DashboardStats {
	stats := DashboardStats{
		TotalUsers:           s.userRepo.Count(),
		TotalQuizResponses:   s.quizRepo.Count(),
		TotalRecommendations: s.recRepo.Count(),
		TotalChatMessages:    s.chatRepo.Count(),
		RoleBreakdown:        make(map[string]int),
	}

	interestCounts := make(map[string]int)
	for _, user := range s.userRepo.List() {
		stats.RoleBreakdown[string(user.Role)]++
		for _, interest := range user.Profile.Interests {
			interestCounts[interest]++
		}
	}

	for interest, count := range interestCounts {
		stats.TopInterests = append(stats.TopInterests, InterestCount{Interest: interest, Count: count})
	}
	sort.Slice(stats.TopInterests, func(i, j int) bool {
		if stats.TopInterests[i].Count == stats.TopInterests[j].Count {
			return stats.TopInterests[i].Interest < stats.TopInterests[j].Interest
		}
		return stats.TopInterests[i].Count > stats.TopInterests[j].Count
	})
	if len(stats.TopInterests) > 5 {
		stats.TopInterests = stats.TopInterests[:5]
	}

	return stats
}
