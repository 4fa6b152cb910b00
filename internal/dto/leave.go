package dto

// ApplyLeaveRequest 学生请假申请
type ApplyLeaveRequest struct {
	Reason   string `json:"reason"    binding:"required,max=500"`
	FromDate string `json:"from_date" binding:"required,datetime=2006-01-02"`
	ToDate   string `json:"to_date"   binding:"required,datetime=2006-01-02"`
}

// ReviewLeaveRequest 管理员审批请假
type ReviewLeaveRequest struct {
	Decision string  `json:"decision" binding:"required,oneof=approved rejected"`
	Remarks  *string `json:"remarks"  binding:"omitempty,max=255"`
}

// LeaveListRequest 请假查询参数
type LeaveListRequest struct {
	PaginationRequest
	StudentID string `form:"student_id" binding:"omitempty,uuid"`
	Status    string `form:"status"     binding:"omitempty,oneof=pending approved rejected"`
}

// LeaveResponse 请假申请响应
type LeaveResponse struct {
	ApplicationID string  `json:"application_id"`
	StudentID     string  `json:"student_id"`
	StudentName   string  `json:"student_name"`
	Reason        string  `json:"reason"`
	FromDate      string  `json:"from_date"`
	ToDate        string  `json:"to_date"`
	Status        string  `json:"status"`
	AppliedAt     string  `json:"applied_at"`
	AdminRemarks  *string `json:"admin_remarks"`
}
