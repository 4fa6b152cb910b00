package dto

// CreateAnnouncementRequest 发布公告请求
type CreateAnnouncementRequest struct {
	Title    string `json:"title"    binding:"required,max=200"`
	Content  string `json:"content"  binding:"required"`
	Audience string `json:"audience" binding:"required,oneof=all students teachers"`
}

// AnnouncementListRequest 公告查询参数
type AnnouncementListRequest struct {
	PaginationRequest
}

// AnnouncementResponse 公告响应
type AnnouncementResponse struct {
	AnnouncementID string `json:"announcement_id"`
	TeacherID      string `json:"teacher_id"`
	TeacherName    string `json:"teacher_name"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	Audience       string `json:"audience"`
	CreatedAt      string `json:"created_at"`
}
