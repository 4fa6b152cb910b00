package model

import "time"

// SubjectAssignment 任课分配表 — 对应 subject_assignments
// (teacher_id, subject_id, class_id) 三元组唯一，由 idx_assignment_triple 保证
type SubjectAssignment struct {
	AssignmentID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"assignment_id"`
	TeacherID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_assignment_triple" json:"teacher_id"`
	SubjectID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_assignment_triple" json:"subject_id"`
	ClassID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_assignment_triple" json:"class_id"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	// 关联
	Teacher *Teacher `gorm:"foreignKey:TeacherID;references:TeacherID" json:"teacher,omitempty"`
	Subject *Subject `gorm:"foreignKey:SubjectID;references:SubjectID" json:"subject,omitempty"`
	Class   *Class   `gorm:"foreignKey:ClassID;references:ClassID"     json:"class,omitempty"`
}

func (SubjectAssignment) TableName() string { return "subject_assignments" }
