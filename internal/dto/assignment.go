package dto

// CreateAssignmentRequest 授课分配请求
type CreateAssignmentRequest struct {
	TeacherID string `json:"teacher_id" binding:"required,uuid"`
	SubjectID string `json:"subject_id" binding:"required,uuid"`
	ClassID   string `json:"class_id"   binding:"required,uuid"`
}

// AssignmentListRequest 授课分配列表查询参数
type AssignmentListRequest struct {
	PaginationRequest
	TeacherID string `form:"teacher_id" binding:"omitempty,uuid"`
	ClassID   string `form:"class_id"   binding:"omitempty,uuid"`
	SubjectID string `form:"subject_id" binding:"omitempty,uuid"`
}

// AssignmentResponse 授课分配响应
type AssignmentResponse struct {
	AssignmentID string `json:"assignment_id"`
	TeacherID    string `json:"teacher_id"`
	TeacherName  string `json:"teacher_name"`
	SubjectID    string `json:"subject_id"`
	SubjectName  string `json:"subject_name"`
	ClassID      string `json:"class_id"`
	ClassName    string `json:"class_name"`
	CreatedAt    string `json:"created_at"`
}
