package model

import "time"

// ── 考勤状态常量 ──

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

// ValidAttendanceStatus 判断考勤状态是否属于合法闭集
func ValidAttendanceStatus(s string) bool {
	return s == AttendancePresent || s == AttendanceAbsent || s == AttendanceLate
}

// Attendance 考勤记录表 — 对应 attendances
// (student_id, subject_id, date) 自然键唯一，由 idx_attendance_key 保证；
// 重复提交按该键覆盖更新，TeacherID 保留首次记录人
type Attendance struct {
	AttendanceID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_id"`
	StudentID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_key" json:"student_id"`
	TeacherID    string    `gorm:"type:uuid;not null"                             json:"teacher_id"`
	SubjectID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_key" json:"subject_id"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:idx_attendance_key" json:"date"`
	Status       string    `gorm:"type:varchar(10);not null"                      json:"status"` // present | absent | late
	Remarks      *string   `gorm:"type:varchar(200)"                              json:"remarks,omitempty"`
	BaseModel

	// 关联
	Student *Student `gorm:"foreignKey:StudentID;references:StudentID" json:"student,omitempty"`
	Subject *Subject `gorm:"foreignKey:SubjectID;references:SubjectID" json:"subject,omitempty"`
}

// TableName 指定表名
func (Attendance) TableName() string { return "attendances" }
