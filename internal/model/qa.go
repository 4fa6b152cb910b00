package model

import "time"

// QAQuestion 学生提问表 — 对应 qa_questions
// StudentID 可空：允许匿名提问
type QAQuestion struct {
	QuestionID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"question_id"`
	StudentID    *string   `gorm:"type:uuid"                                      json:"student_id,omitempty"`
	SubjectID    string    `gorm:"type:uuid;not null"                             json:"subject_id"`
	QuestionText string    `gorm:"type:varchar(300);not null"                     json:"question_text"`
	AskedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"asked_at"`

	// 关联
	Student *Student   `gorm:"foreignKey:StudentID;references:StudentID" json:"student,omitempty"`
	Subject *Subject   `gorm:"foreignKey:SubjectID;references:SubjectID" json:"subject,omitempty"`
	Answers []QAAnswer `gorm:"foreignKey:QuestionID"                     json:"answers,omitempty"`
}

func (QAQuestion) TableName() string { return "qa_questions" }

// QAAnswer 教师回答表 — 对应 qa_answers
// 任意教师均可回答，不限于任课教师；一问可多答
type QAAnswer struct {
	AnswerID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"answer_id"`
	QuestionID string    `gorm:"type:uuid;not null"                             json:"question_id"`
	TeacherID  string    `gorm:"type:uuid;not null"                             json:"teacher_id"`
	AnswerText string    `gorm:"type:text;not null"                             json:"answer_text"`
	AnsweredAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"answered_at"`

	// 关联
	Teacher *Teacher `gorm:"foreignKey:TeacherID;references:TeacherID" json:"teacher,omitempty"`
}

func (QAAnswer) TableName() string { return "qa_answers" }
