package dto

// AskQuestionRequest 学生提问请求
type AskQuestionRequest struct {
	SubjectID    string `json:"subject_id"    binding:"required,uuid"`
	QuestionText string `json:"question_text" binding:"required,max=2000"`
	Anonymous    bool   `json:"anonymous"`
}

// AnswerQuestionRequest 教师回答请求
type AnswerQuestionRequest struct {
	AnswerText string `json:"answer_text" binding:"required,max=2000"`
}

// QuestionListRequest 问题查询参数
type QuestionListRequest struct {
	PaginationRequest
	SubjectID  string `form:"subject_id" binding:"omitempty,uuid"`
	Unanswered bool   `form:"unanswered"`
}

// AnswerResponse 回答响应
type AnswerResponse struct {
	AnswerID    string `json:"answer_id"`
	TeacherID   string `json:"teacher_id"`
	TeacherName string `json:"teacher_name"`
	AnswerText  string `json:"answer_text"`
	AnsweredAt  string `json:"answered_at"`
}

// QuestionResponse 问题响应（匿名提问时 student 字段为空）
type QuestionResponse struct {
	QuestionID   string           `json:"question_id"`
	StudentID    *string          `json:"student_id"`
	StudentName  *string          `json:"student_name"`
	SubjectID    string           `json:"subject_id"`
	SubjectName  string           `json:"subject_name"`
	QuestionText string           `json:"question_text"`
	AskedAt      string           `json:"asked_at"`
	Answers      []AnswerResponse `json:"answers"`
}
