package service

import (
	"time"

	"github.com/Shamanthsheni/SmartCareerAI/internal/model"
	"github.com/Shamanthsheni/SmartCareerAI/internal/repository"
	"github.com/Shamanthsheni/SmartCareerAI/internal/util"
)

// DemoUserID 预置演示账号的固定ID
const DemoUserID = "demo-user-1"

type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Register(insert model.InsertUser) (model.User, error) {
	if _, exists := s.repo.GetByEmail(insert.Email); exists {
		return model.User{}, util.ErrEmailRegistered
	}
	return s.repo.Create(insert), nil
}

func (s *UserService) GetUser(id string) (model.User, error) {
	user, ok := s.repo.GetByID(id)
	if !ok {
		return model.User{}, util.ErrUserNotFound
	}
	return user, nil
}

// UpdateUserRequest 部分更新，nil 字段保持原值
type UpdateUserRequest struct {
	Username *string         `json:"username"`
	Email    *string         `json:"email" binding:"omitempty,email"`
	Role     *model.UserRole `json:"role" binding:"omitempty,oneof=student parent admin"`
	Profile  *model.Profile  `json:"profile"`
}

func (s *UserService) UpdateUser(id string, req UpdateUserRequest) (model.User, error) {
	user, ok := s.repo.Update(id, func(u *model.User) {
		if req.Username != nil {
			u.Username = *req.Username
		}
		if req.Email != nil {
			u.Email = *req.Email
		}
		if req.Role != nil {
			u.Role = *req.Role
		}
		if req.Profile != nil {
			u.Profile = *req.Profile
		}
	})
	if !ok {
		return model.User{}, util.ErrUserNotFound
	}
	return user, nil
}

// SeedDemoUser 启动时安装演示账号，便于前端无注册流程即可体验
func (s *UserService) SeedDemoUser() {
	s.repo.Seed(model.User{
		Base: model.Base{
			ID:        DemoUserID,
			CreatedAt: time.Now(),
		},
		Username: "priya_sharma",
		Email:    "priya@example.com",
		Role:     model.RoleStudent,
		Profile: model.Profile{
			Name:      "Priya Sharma",
			Class:     "Class 12, Science Stream",
			District:  "Srinagar",
			Interests: []string{"Technology", "Mathematics", "Problem Solving"},
			Avatar:    "https://images.unsplash.com/photo-1494790108755-2616b612b17c?w=100&h=100&fit=crop&crop=face",
		},
	})
}
