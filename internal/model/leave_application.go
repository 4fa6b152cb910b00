package model

import "time"

// ── 请假状态常量 ──

const (
	LeavePending  = "pending"
	LeaveApproved = "approved"
	LeaveRejected = "rejected"
)

// LeaveApplication 请假申请表 — 对应 leave_applications
// 状态机：pending -> approved | rejected，两者均为终态，不可再变更
type LeaveApplication struct {
	ApplicationID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"application_id"`
	StudentID     string    `gorm:"type:uuid;not null;index:idx_leave_applications_student" json:"student_id"`
	Reason        string    `gorm:"type:varchar(200);not null"                     json:"reason"`
	FromDate      time.Time `gorm:"type:date;not null"                             json:"from_date"`
	ToDate        time.Time `gorm:"type:date;not null"                             json:"to_date"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"` // pending | approved | rejected
	AppliedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"applied_at"`
	AdminRemarks  *string   `gorm:"type:varchar(200)"                              json:"admin_remarks,omitempty"`

	// 关联
	Student *Student `gorm:"foreignKey:StudentID;references:StudentID" json:"student,omitempty"`
}

// TableName 指定表名
func (LeaveApplication) TableName() string { return "leave_applications" }
