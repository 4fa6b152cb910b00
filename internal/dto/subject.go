package dto

// CreateSubjectRequest 创建科目请求
type CreateSubjectRequest struct {
	Name string  `json:"name" binding:"required,max=100"`
	Code *string `json:"code" binding:"omitempty,max=20"`
}

// UpdateSubjectRequest 更新科目请求
type UpdateSubjectRequest struct {
	Name *string `json:"name" binding:"omitempty,max=100"`
	Code *string `json:"code" binding:"omitempty,max=20"`
}

// SubjectResponse 科目信息响应
type SubjectResponse struct {
	SubjectID string  `json:"subject_id"`
	Name      string  `json:"name"`
	Code      *string `json:"code"`
	CreatedAt string  `json:"created_at"`
}
