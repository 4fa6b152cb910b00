package dto

// CreateStudentRequest 创建学生请求
type CreateStudentRequest struct {
	FullName    string  `json:"full_name"     binding:"required,max=100"`
	RollNumber  *string `json:"roll_number"   binding:"omitempty,max=50"`
	Email       *string `json:"email"         binding:"omitempty,email"`
	Phone       *string `json:"phone"         binding:"omitempty,max=30"`
	DateOfBirth *string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	Address     *string `json:"address"       binding:"omitempty,max=255"`
	ClassID     *string `json:"class_id"      binding:"omitempty,uuid"`
	Password    string  `json:"password"      binding:"required,min=6"`
}

// UpdateStudentRequest 更新学生请求（指针字段表示可选更新）
type UpdateStudentRequest struct {
	FullName    *string `json:"full_name"     binding:"omitempty,max=100"`
	RollNumber  *string `json:"roll_number"   binding:"omitempty,max=50"`
	Email       *string `json:"email"         binding:"omitempty,email"`
	Phone       *string `json:"phone"         binding:"omitempty,max=30"`
	DateOfBirth *string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	Address     *string `json:"address"       binding:"omitempty,max=255"`
	ClassID     *string `json:"class_id"      binding:"omitempty,uuid"`
}

// StudentListRequest 学生列表查询参数
type StudentListRequest struct {
	PaginationRequest
	ClassID string `form:"class_id" binding:"omitempty,uuid"`
	Keyword string `form:"keyword"  binding:"omitempty,max=100"`
}

// StudentResponse 学生信息响应
type StudentResponse struct {
	StudentID   string  `json:"student_id"`
	UserID      string  `json:"user_id"`
	FullName    string  `json:"full_name"`
	RollNumber  *string `json:"roll_number"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"date_of_birth"`
	Address     *string `json:"address"`
	ClassID     *string `json:"class_id"`
	ClassName   *string `json:"class_name"`
	CreatedAt   string  `json:"created_at"`
}

// ImportStudentsResponse Excel 批量导入结果
type ImportStudentsResponse struct {
	Imported int               `json:"imported"`
	Failed   int               `json:"failed"`
	Errors   []ImportRowError  `json:"errors,omitempty"`
	Students []StudentResponse `json:"students,omitempty"`
}

// ImportRowError 导入失败的行及原因
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}
