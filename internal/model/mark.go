package model

import "time"

// Mark 成绩记录表 — 对应 marks
// 只追加不更新：重复录入同一场考试会产生新行（补考/重考即新行）
type Mark struct {
	MarkID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"mark_id"`
	StudentID     string    `gorm:"type:uuid;not null;index:idx_marks_student"     json:"student_id"`
	TeacherID     string    `gorm:"type:uuid;not null"                             json:"teacher_id"`
	SubjectID     string    `gorm:"type:uuid;not null"                             json:"subject_id"`
	ExamType      string    `gorm:"type:varchar(50);not null"                      json:"exam_type"` // quiz | assignment | midterm | final
	ObtainedMarks float64   `gorm:"type:decimal(5,2);not null"                     json:"obtained_marks"`
	TotalMarks    float64   `gorm:"type:decimal(5,2);not null"                     json:"total_marks"`
	Date          time.Time `gorm:"type:date;not null;default:CURRENT_DATE"        json:"date"`
	Remarks       *string   `gorm:"type:varchar(200)"                              json:"remarks,omitempty"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	// 关联
	Student *Student `gorm:"foreignKey:StudentID;references:StudentID" json:"student,omitempty"`
	Subject *Subject `gorm:"foreignKey:SubjectID;references:SubjectID" json:"subject,omitempty"`
}

func (Mark) TableName() string { return "marks" }
