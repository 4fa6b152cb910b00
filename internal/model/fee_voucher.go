package model

import "time"

// ── 缴费单状态常量 ──

const (
	FeePending = "pending"
	FeePaid    = "paid"
	FeeOverdue = "overdue" // 由外部催缴任务按到期日回填，核心不主动赋值
)

// FeeVoucher 缴费单表 — 对应 fee_vouchers
// 状态机：pending -(MarkPaid)-> paid；paid_date 当且仅当 status=paid 时非空
type FeeVoucher struct {
	VoucherID  string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"voucher_id"`
	StudentID  string     `gorm:"type:uuid;not null;index:idx_fee_vouchers_student" json:"student_id"`
	Month      string     `gorm:"type:varchar(50);not null"                      json:"month"`
	Year       int        `gorm:"not null"                                       json:"year"`
	Amount     float64    `gorm:"type:decimal(10,2);not null"                    json:"amount"`
	Status     string     `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"` // pending | paid | overdue
	IssuedDate time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"issued_date"`
	PaidDate   *time.Time `json:"paid_date,omitempty"`
	Remarks    *string    `gorm:"type:varchar(200)"                              json:"remarks,omitempty"`

	// 关联
	Student *Student `gorm:"foreignKey:StudentID;references:StudentID" json:"student,omitempty"`
}

// TableName 指定表名
func (FeeVoucher) TableName() string { return "fee_vouchers" }
