package repository

import (
	"fmt"
	"testing"

	"github.com/Shamanthsheni/SmartCareerAI/internal/model"
)

func TestChatRepositoryListByUserOrdering(t *testing.T) {
	repo := NewChatRepository()

	// 同一毫秒内写入多对消息，升序结果必须保持写入顺序：
	// 学生消息永远排在对应AI回复之前
	for i := 0; i < 10; i++ {
		repo.Create(model.InsertChatMessage{
			UserID:  "u1",
			Message: fmt.Sprintf("question %d", i),
		})
		repo.Create(model.InsertChatMessage{
			UserID:   "u1",
			Message:  fmt.Sprintf("answer %d", i),
			IsFromAI: true,
		})
	}

	history := repo.ListByUser("u1")
	if len(history) != 20 {
		t.Fatalf("got %d messages, want 20", len(history))
	}
	for i := 0; i < 10; i++ {
		student := history[2*i]
		ai := history[2*i+1]
		if student.IsFromAI {
			t.Fatalf("position %d: expected student message, got AI", 2*i)
		}
		if !ai.IsFromAI {
			t.Fatalf("position %d: expected AI message, got student", 2*i+1)
		}
		if student.Message != fmt.Sprintf("question %d", i) {
			t.Fatalf("unexpected message order: %q", student.Message)
		}
	}
}

func TestChatRepositoryIsolatesUsers(t *testing.T) {
	repo := NewChatRepository()
	repo.Create(model.InsertChatMessage{UserID: "u1", Message: "hello"})
	repo.Create(model.InsertChatMessage{UserID: "u2", Message: "other"})

	if got := len(repo.ListByUser("u1")); got != 1 {
		t.Fatalf("got %d messages for u1, want 1", got)
	}
	if got := len(repo.ListByUser("u3")); got != 0 {
		t.Fatalf("got %d messages for unknown user, want 0", got)
	}
	if repo.Count() != 2 {
		t.Fatalf("got count %d, want 2", repo.Count())
	}
}
