// Package repository 进程内存储层。所有记录只存在内存 map 中，
// 进程退出即丢失——这是设计选择而非缺陷，复用前务必注意非持久化语义。
package repository

import (
	"sync"
	"time"

	"github.com/Shamanthsheni/SmartCareerAI/internal/model"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]model.User)}
}

// Create 生成ID与创建时间后写入，正常情况下不会失败
func (r *UserRepository) Create(insert model.InsertUser) model.User {
	user := model.User{
		Base: model.Base{
			ID:        model.GenerateUUID(),
			CreatedAt: time.Now(),
		},
		Username: insert.Username,
		Email:    insert.Email,
		Role:     insert.Role,
		Profile:  insert.Profile,
	}
	if user.Profile.Interests == nil {
		user.Profile.Interests = []string{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return user
}

// Seed 写入预置用户（固定ID），用于启动时安装演示账号
func (r *UserRepository) Seed(user model.User) {
	if user.Profile.Interests == nil {
		user.Profile.Interests = []string{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
}

func (r *UserRepository) GetByID(id string) (model.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	return user, ok
}

func (r *UserRepository) GetByEmail(email string) (model.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, true
		}
	}
	return model.User{}, false
}

// Update 对指定用户应用变更函数，不存在则返回 false
func (r *UserRepository) Update(id string, mutate func(*model.User)) (model.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return model.User{}, false
	}
	mutate(&user)
	if user.Profile.Interests == nil {
		user.Profile.Interests = []string{}
	}
	r.users[id] = user
	return user, true
}

func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

func (r *UserRepository) List() []model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, user)
	}
	return out
}
