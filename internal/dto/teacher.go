package dto

// CreateTeacherRequest 创建教师请求
type CreateTeacherRequest struct {
	FullName      string  `json:"full_name"     binding:"required,max=100"`
	Email         *string `json:"email"         binding:"omitempty,email"`
	Phone         *string `json:"phone"         binding:"omitempty,max=30"`
	Qualification *string `json:"qualification" binding:"omitempty,max=100"`
	JoinDate      *string `json:"join_date"     binding:"omitempty,datetime=2006-01-02"`
	Password      string  `json:"password"      binding:"required,min=6"`
}

// UpdateTeacherRequest 更新教师请求
type UpdateTeacherRequest struct {
	FullName      *string `json:"full_name"     binding:"omitempty,max=100"`
	Email         *string `json:"email"         binding:"omitempty,email"`
	Phone         *string `json:"phone"         binding:"omitempty,max=30"`
	Qualification *string `json:"qualification" binding:"omitempty,max=100"`
	JoinDate      *string `json:"join_date"     binding:"omitempty,datetime=2006-01-02"`
}

// TeacherListRequest 教师列表查询参数
type TeacherListRequest struct {
	PaginationRequest
	Keyword string `form:"keyword" binding:"omitempty,max=100"`
}

// TeacherResponse 教师信息响应
type TeacherResponse struct {
	TeacherID     string  `json:"teacher_id"`
	UserID        string  `json:"user_id"`
	FullName      string  `json:"full_name"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Qualification *string `json:"qualification"`
	JoinDate      string  `json:"join_date"`
	CreatedAt     string  `json:"created_at"`
}
