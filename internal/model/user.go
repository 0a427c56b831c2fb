package model

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleParent  UserRole = "parent"
	RoleAdmin   UserRole = "admin"
)

// Profile 用户档案 — display info shown on the student dashboard.
type Profile struct {
	Name      string   `json:"name" binding:"required"`
	Class     string   `json:"class,omitempty"`
	District  string   `json:"district,omitempty"`
	Interests []string `json:"interests"`
	Avatar    string   `json:"avatar,omitempty"`
}

// swagger:model User
type User struct {
	Base
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
	Profile  Profile  `json:"profile"`
}

// InsertUser is the validated insert payload: everything except the
// store-assigned id and timestamp.
type InsertUser struct {
	Username string   `json:"username" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Role     UserRole `json:"role" binding:"required,oneof=student parent admin"`
	Profile  Profile  `json:"profile" binding:"required"`
}
