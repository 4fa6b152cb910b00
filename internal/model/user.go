package model

import "time"

// ── 角色常量 ──

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// User 登录账号表 — 对应 users
// 每个 Teacher/Student 档案 1:1 关联一条 User 记录
type User struct {
	UserID       string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	FullName     string    `gorm:"type:varchar(100);not null"                     json:"full_name"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string    `gorm:"type:varchar(20);not null"                      json:"role"` // admin | teacher | student
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }
