package service

import (
	"context"
	"testing"

	"github.com/Shamanthsheni/SmartCareerAI/internal/llm"
	"github.com/Shamanthsheni/SmartCareerAI/internal/model"
	"github.com/Shamanthsheni/SmartCareerAI/internal/repository"
	"github.com/Shamanthsheni/SmartCareerAI/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationServiceGenerateRequiresQuizResponses(t *testing.T) {
	svc := NewRecommendationService(
		repository.NewRecommendationRepository(),
		repository.NewQuizRepository(),
		newAdvisor(failingClient()),
	)

	_, err := svc.Generate(context.Background(), "u1")
	assert.ErrorIs(t, err, util.ErrNoQuizResponses)
}

func TestRecommendationServiceGeneratePersistsBatch(t *testing.T) {
	recRepo := repository.NewRecommendationRepository()
	quizRepo := repository.NewQuizRepository()
	quizRepo.Create(model.InsertQuizResponse{UserID: "u1", QuestionID: "q1", Answer: "I enjoy building things"})

	client := &stubClient{
		generateJSON: func(ctx context.Context, system, prompt string, schema *llm.Schema) (string, error) {
			return `[{"careerTitle":"Civil Engineering","matchPercentage":85},{"careerTitle":"Architecture","matchPercentage":78}]`, nil
		},
	}
	svc := NewRecommendationService(recRepo, quizRepo, newAdvisor(client))

	recs, err := svc.Generate(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.NotEmpty(t, recs[0].ID)
	assert.Equal(t, "Civil Engineering", recs[0].CareerTitle)

	// 入库后的批次可以通过 ListByUser 再次取回
	stored := svc.ListByUser("u1")
	require.Len(t, stored, 2)
	assert.Equal(t, recs[0].ID, stored[0].ID)
}

func TestRecommendationServiceGenerateAccumulates(t *testing.T) {
	recRepo := repository.NewRecommendationRepository()
	quizRepo := repository.NewQuizRepository()
	quizRepo.Create(model.InsertQuizResponse{UserID: "u1", QuestionID: "q1", Answer: "anything"})

	svc := NewRecommendationService(recRepo, quizRepo, newAdvisor(failingClient()))

	_, err := svc.Generate(context.Background(), "u1")
	require.NoError(t, err)
	_, err = svc.Generate(context.Background(), "u1")
	require.NoError(t, err)

	// 两次生成各自一批降级推荐，历史批次累积保留
	assert.Len(t, svc.ListByUser("u1"), 4)
}

func TestRecommendationServiceGenerateFallsBackNonEmpty(t *testing.T) {
	recRepo := repository.NewRecommendationRepository()
	quizRepo := repository.NewQuizRepository()
	quizRepo.Create(model.InsertQuizResponse{UserID: "u1", QuestionID: "q1", Answer: "anything"})

	svc := NewRecommendationService(recRepo, quizRepo, newAdvisor(failingClient()))

	recs, err := svc.Generate(context.Background(), "u1")
	require.NoError(t, err)
	require.NotEmpty(t, recs)
	assert.Equal(t, "Software Engineering", recs[0].CareerTitle)
	assert.Equal(t, "Teaching", recs[1].CareerTitle)
}
