package repository

import (
	"testing"

	"github.com/Shamanthsheni/SmartCareerAI/internal/model"
)

func TestQuizRepositoryCreateAndListByUser(t *testing.T) {
	repo := NewQuizRepository()

	analysis := model.AIAnalysis{Analysis: "ok", ConfidenceScore: 0.9}
	stored := repo.Create(model.InsertQuizResponse{
		UserID:     "u1",
		QuestionID: "q1",
		Answer:     "Solving math problems",
		AIAnalysis: &analysis,
	})
	if stored.ID == "" || stored.CreatedAt.IsZero() {
		t.Fatal("expected id and timestamp to be assigned")
	}

	repo.Create(model.InsertQuizResponse{UserID: "u2", QuestionID: "q1", Answer: "Reading"})

	responses := repo.ListByUser("u1")
	if len(responses) != 1 {
		t.Fatalf("got %d responses, want 1", len(responses))
	}
	if responses[0].AIAnalysis == nil || responses[0].AIAnalysis.Analysis != "ok" {
		t.Fatal("stored analysis must round-trip")
	}
}

func TestDefaultQuizQuestions(t *testing.T) {
	questions := DefaultQuizQuestions()
	if len(questions) != 20 {
		t.Fatalf("got %d questions, want 20", len(questions))
	}

	seen := make(map[string]bool)
	for _, q := range questions {
		if seen[q.ID] {
			t.Fatalf("duplicate question id %s", q.ID)
		}
		seen[q.ID] = true
		if q.Question == "" {
			t.Fatalf("question %s has empty text", q.ID)
		}
	}
}
