package repository

import (
	"testing"
	"time"

	"github.com/Shamanthsheni/SmartCareerAI/internal/model"
)

func TestUserRepositoryCreateAssignsUniqueIDs(t *testing.T) {
	repo := NewUserRepository()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		user := repo.Create(model.InsertUser{
			Username: "student",
			Email:    "student@example.com",
			Role:     model.RoleStudent,
			Profile:  model.Profile{Name: "Student"},
		})
		if user.ID == "" {
			t.Fatal("expected non-empty id")
		}
		if seen[user.ID] {
			t.Fatalf("duplicate id generated: %s", user.ID)
		}
		seen[user.ID] = true
		if user.CreatedAt.IsZero() {
			t.Fatal("expected CreatedAt to be set")
		}
	}
}

func TestUserRepositoryNormalizesNilInterests(t *testing.T) {
	repo := NewUserRepository()

	user := repo.Create(model.InsertUser{
		Username: "aisha",
		Email:    "aisha@example.com",
		Role:     model.RoleStudent,
		Profile:  model.Profile{Name: "Aisha"},
	})
	if user.Profile.Interests == nil {
		t.Fatal("expected interests to be normalized to empty slice")
	}
	if len(user.Profile.Interests) != 0 {
		t.Fatalf("expected empty interests, got %v", user.Profile.Interests)
	}
}

func TestUserRepositoryGetByEmail(t *testing.T) {
	repo := NewUserRepository()
	created := repo.Create(model.InsertUser{
		Username: "rahul",
		Email:    "rahul@example.com",
		Role:     model.RoleStudent,
		Profile:  model.Profile{Name: "Rahul"},
	})

	found, ok := repo.GetByEmail("rahul@example.com")
	if !ok {
		t.Fatal("expected to find user by email")
	}
	if found.ID != created.ID {
		t.Fatalf("got id %s, want %s", found.ID, created.ID)
	}

	if _, ok := repo.GetByEmail("missing@example.com"); ok {
		t.Fatal("expected no user for unknown email")
	}
}

func TestUserRepositoryUpdate(t *testing.T) {
	repo := NewUserRepository()
	created := repo.Create(model.InsertUser{
		Username: "old_name",
		Email:    "old@example.com",
		Role:     model.RoleStudent,
		Profile:  model.Profile{Name: "Old", Interests: []string{"Science"}},
	})

	updated, ok := repo.Update(created.ID, func(u *model.User) {
		u.Username = "new_name"
	})
	if !ok {
		t.Fatal("expected update to succeed")
	}
	if updated.Username != "new_name" {
		t.Fatalf("got username %s, want new_name", updated.Username)
	}
	if updated.Email != "old@example.com" {
		t.Fatal("untouched fields must keep their values")
	}

	stored, _ := repo.GetByID(created.ID)
	if stored.Username != "new_name" {
		t.Fatal("update must be persisted")
	}

	if _, ok := repo.Update("missing-id", func(u *model.User) {}); ok {
		t.Fatal("expected update of unknown id to fail")
	}
}

func TestUserRepositorySeedUsesGivenID(t *testing.T) {
	repo := NewUserRepository()
	repo.Seed(model.User{
		Base:     model.Base{ID: "demo-user-1", CreatedAt: time.Now()},
		Username: "priya_sharma",
		Email:    "priya@example.com",
		Role:     model.RoleStudent,
		Profile:  model.Profile{Name: "Priya Sharma"},
	})

	user, ok := repo.GetByID("demo-user-1")
	if !ok {
		t.Fatal("expected seeded user to be retrievable")
	}
	if user.Username != "priya_sharma" {
		t.Fatalf("got username %s", user.Username)
	}
	if user.Profile.Interests == nil {
		t.Fatal("seeded user interests must be normalized")
	}
	if repo.Count() != 1 {
		t.Fatalf("got count %d, want 1", repo.Count())
	}
}
