package handler

import "ssss/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth         *AuthHandler
	Student      *StudentHandler
	Teacher      *TeacherHandler
	Class        *ClassHandler
	Subject      *SubjectHandler
	Assignment   *AssignmentHandler
	Attendance   *AttendanceHandler
	Mark         *MarkHandler
	Fee          *FeeHandler
	Leave        *LeaveHandler
	Announcement *AnnouncementHandler
	Lecture      *LectureHandler
	QA           *QAHandler
	Dashboard    *DashboardHandler
	Export       *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		Student:      NewStudentHandler(svc.Student),
		Teacher:      NewTeacherHandler(svc.Teacher),
		Class:        NewClassHandler(svc.Class),
		Subject:      NewSubjectHandler(svc.Subject),
		Assignment:   NewAssignmentHandler(svc.Assignment, svc.Teacher),
		Attendance:   NewAttendanceHandler(svc.Attendance, svc.Teacher, svc.Student),
		Mark:         NewMarkHandler(svc.Mark, svc.Teacher, svc.Student),
		Fee:          NewFeeHandler(svc.Fee, svc.Student),
		Leave:        NewLeaveHandler(svc.Leave, svc.Student),
		Announcement: NewAnnouncementHandler(svc.Announcement, svc.Teacher),
		Lecture:      NewLectureHandler(svc.Lecture, svc.Teacher),
		QA:           NewQAHandler(svc.QA, svc.Teacher, svc.Student),
		Dashboard:    NewDashboardHandler(svc.Dashboard, svc.Teacher, svc.Student),
		Export:       NewExportHandler(svc.Export, svc.Student),
	}
}
