package model

import "time"

// Teacher 教师档案表 — 对应 teachers
type Teacher struct {
	TeacherID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"teacher_id"`
	UserID        string    `gorm:"type:uuid;not null"                             json:"user_id"`
	FullName      string    `gorm:"type:varchar(100);not null"                     json:"full_name"`
	Email         *string   `gorm:"type:varchar(100)"                              json:"email,omitempty"`
	Phone         *string   `gorm:"type:varchar(20)"                               json:"phone,omitempty"`
	Qualification *string   `gorm:"type:varchar(100)"                              json:"qualification,omitempty"`
	JoinDate      time.Time `gorm:"type:date;not null;default:CURRENT_DATE"        json:"join_date"`
	BaseModel

	// 关联
	User        *User               `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
	Assignments []SubjectAssignment `gorm:"foreignKey:TeacherID"                json:"assignments,omitempty"`
}

// TableName 指定表名
func (Teacher) TableName() string { return "teachers" }
