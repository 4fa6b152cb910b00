package dto

// CreateClassRequest 创建班级请求
type CreateClassRequest struct {
	Name        string  `json:"name"        binding:"required,max=50"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// UpdateClassRequest 更新班级请求
type UpdateClassRequest struct {
	Name        *string `json:"name"        binding:"omitempty,max=50"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// ClassResponse 班级信息响应
type ClassResponse struct {
	ClassID      string  `json:"class_id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	StudentCount int64   `json:"student_count"`
	CreatedAt    string  `json:"created_at"`
}
