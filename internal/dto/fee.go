package dto

// IssueVoucherRequest 开具缴费单请求
type IssueVoucherRequest struct {
	StudentID string  `json:"student_id" binding:"required,uuid"`
	Month     string  `json:"month"      binding:"required,max=20"`
	Year      int     `json:"year"       binding:"required,min=2000,max=2100"`
	Amount    float64 `json:"amount"     binding:"required,gt=0"`
	Remarks   *string `json:"remarks"    binding:"omitempty,max=255"`
}

// FeeListRequest 缴费单查询参数
type FeeListRequest struct {
	PaginationRequest
	StudentID string `form:"student_id" binding:"omitempty,uuid"`
	Status    string `form:"status"     binding:"omitempty,oneof=pending paid overdue"`
	Year      int    `form:"year"       binding:"omitempty,min=2000,max=2100"`
}

// FeeVoucherResponse 缴费单响应
type FeeVoucherResponse struct {
	VoucherID   string  `json:"voucher_id"`
	StudentID   string  `json:"student_id"`
	StudentName string  `json:"student_name"`
	Month       string  `json:"month"`
	Year        int     `json:"year"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	IssuedDate  string  `json:"issued_date"`
	PaidDate    *string `json:"paid_date"`
	Remarks     *string `json:"remarks"`
}
