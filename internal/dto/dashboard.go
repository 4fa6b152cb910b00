package dto

// AdminDashboardResponse 管理员首页统计
type AdminDashboardResponse struct {
	TotalStudents     int64   `json:"total_students"`
	TotalTeachers     int64   `json:"total_teachers"`
	TotalClasses      int64   `json:"total_classes"`
	TotalSubjects     int64   `json:"total_subjects"`
	PendingLeaves     int64   `json:"pending_leaves"`
	PendingFeeAmount  float64 `json:"pending_fee_amount"`
	CollectedThisYear float64 `json:"collected_this_year"`
}

// TeacherDashboardResponse 教师首页统计
type TeacherDashboardResponse struct {
	AssignmentCount     int64                `json:"assignment_count"`
	ClassCount          int64                `json:"class_count"`
	SubjectCount        int64                `json:"subject_count"`
	UnansweredQuestions int64                `json:"unanswered_questions"`
	Assignments         []AssignmentResponse `json:"assignments"`
}

// StudentDashboardResponse 学生首页统计
type StudentDashboardResponse struct {
	Attendance      AttendanceSummary    `json:"attendance"`
	RecentMarks     []MarkResponse       `json:"recent_marks"`
	PendingVouchers []FeeVoucherResponse `json:"pending_vouchers"`
	PendingLeaves   int64                `json:"pending_leaves"`
	Announcements   []AnnouncementResponse `json:"announcements"`
}
