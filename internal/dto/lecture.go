package dto

// UploadMaterialRequest 上传课件请求（multipart 表单，文件字段单独处理）
type UploadMaterialRequest struct {
	SubjectID   string  `form:"subject_id"  binding:"required,uuid"`
	Title       string  `form:"title"       binding:"required,max=200"`
	Description *string `form:"description" binding:"omitempty,max=500"`
}

// MaterialListRequest 课件查询参数
type MaterialListRequest struct {
	PaginationRequest
	SubjectID string `form:"subject_id" binding:"omitempty,uuid"`
}

// MaterialResponse 课件响应
type MaterialResponse struct {
	MaterialID  string  `json:"material_id"`
	TeacherID   string  `json:"teacher_id"`
	TeacherName string  `json:"teacher_name"`
	SubjectID   string  `json:"subject_id"`
	SubjectName string  `json:"subject_name"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	FilePath    *string `json:"file_path"`
	UploadedAt  string  `json:"uploaded_at"`
}
