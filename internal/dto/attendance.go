package dto

// AttendanceEntry 单个学生的考勤录入项
type AttendanceEntry struct {
	StudentID string  `json:"student_id" binding:"required,uuid"`
	Status    string  `json:"status"     binding:"required,oneof=present absent late"`
	Remarks   *string `json:"remarks"    binding:"omitempty,max=255"`
}

// RecordAttendanceRequest 批量录入考勤请求
type RecordAttendanceRequest struct {
	SubjectID string            `json:"subject_id" binding:"required,uuid"`
	Date      string            `json:"date"       binding:"required,datetime=2006-01-02"`
	Entries   []AttendanceEntry `json:"entries"    binding:"required,min=1,dive"`
}

// AttendanceListRequest 考勤查询参数
type AttendanceListRequest struct {
	PaginationRequest
	StudentID string `form:"student_id" binding:"omitempty,uuid"`
	SubjectID string `form:"subject_id" binding:"omitempty,uuid"`
	ClassID   string `form:"class_id"   binding:"omitempty,uuid"`
	DateFrom  string `form:"date_from"  binding:"omitempty,datetime=2006-01-02"`
	DateTo    string `form:"date_to"    binding:"omitempty,datetime=2006-01-02"`
}

// AttendanceResponse 考勤记录响应
type AttendanceResponse struct {
	AttendanceID string  `json:"attendance_id"`
	StudentID    string  `json:"student_id"`
	StudentName  string  `json:"student_name"`
	SubjectID    string  `json:"subject_id"`
	SubjectName  string  `json:"subject_name"`
	TeacherID    string  `json:"teacher_id"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	Remarks      *string `json:"remarks"`
}

// AttendanceSummary 某个学生的考勤汇总
type AttendanceSummary struct {
	Total   int64 `json:"total"`
	Present int64 `json:"present"`
	Absent  int64 `json:"absent"`
	Late    int64 `json:"late"`
}
