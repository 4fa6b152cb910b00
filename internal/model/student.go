package model

import "time"

// Student 学生档案表 — 对应 students
type Student struct {
	StudentID   string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	UserID      string     `gorm:"type:uuid;not null"                             json:"user_id"`
	FullName    string     `gorm:"type:varchar(100);not null"                     json:"full_name"`
	RollNumber  *string    `gorm:"type:varchar(20)"                               json:"roll_number,omitempty"`
	Email       *string    `gorm:"type:varchar(100)"                              json:"email,omitempty"`
	Phone       *string    `gorm:"type:varchar(20)"                               json:"phone,omitempty"`
	DateOfBirth *time.Time `gorm:"type:date"                                      json:"date_of_birth,omitempty"`
	Address     *string    `gorm:"type:varchar(200)"                              json:"address,omitempty"`
	ClassID     *string    `gorm:"type:uuid;index:idx_students_class"             json:"class_id,omitempty"`
	BaseModel

	// 关联
	User  *User  `gorm:"foreignKey:UserID;references:UserID"   json:"user,omitempty"`
	Class *Class `gorm:"foreignKey:ClassID;references:ClassID" json:"class,omitempty"`
}

// TableName 指定表名
func (Student) TableName() string { return "students" }
