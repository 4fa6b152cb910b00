package dto

// MarkEntry 单个学生的成绩录入项
type MarkEntry struct {
	StudentID     string  `json:"student_id"     binding:"required,uuid"`
	ObtainedMarks float64 `json:"obtained_marks" binding:"min=0"`
	Remarks       *string `json:"remarks"        binding:"omitempty,max=255"`
}

// RecordMarksRequest 批量录入成绩请求
type RecordMarksRequest struct {
	SubjectID  string      `json:"subject_id"  binding:"required,uuid"`
	ExamType   string      `json:"exam_type"   binding:"required,max=50"`
	TotalMarks float64     `json:"total_marks" binding:"required,gt=0"`
	Date       string      `json:"date"        binding:"required,datetime=2006-01-02"`
	Entries    []MarkEntry `json:"entries"     binding:"required,min=1,dive"`
}

// MarkListRequest 成绩查询参数
type MarkListRequest struct {
	PaginationRequest
	StudentID string `form:"student_id" binding:"omitempty,uuid"`
	SubjectID string `form:"subject_id" binding:"omitempty,uuid"`
	ExamType  string `form:"exam_type"  binding:"omitempty,max=50"`
}

// MarkResponse 成绩记录响应
type MarkResponse struct {
	MarkID        string  `json:"mark_id"`
	StudentID     string  `json:"student_id"`
	StudentName   string  `json:"student_name"`
	SubjectID     string  `json:"subject_id"`
	SubjectName   string  `json:"subject_name"`
	ExamType      string  `json:"exam_type"`
	ObtainedMarks float64 `json:"obtained_marks"`
	TotalMarks    float64 `json:"total_marks"`
	Date          string  `json:"date"`
	Remarks       *string `json:"remarks"`
}
