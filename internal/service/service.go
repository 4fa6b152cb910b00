package service

import (
	"go.uber.org/zap"

	"ssss/backend/config"
	"ssss/backend/internal/repository"
	"ssss/backend/pkg/jwt"
	"ssss/backend/pkg/redis"
	"ssss/backend/pkg/storage"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth         AuthService
	Student      StudentService
	Teacher      TeacherService
	Class        ClassService
	Subject      SubjectService
	Assignment   AssignmentService
	Attendance   AttendanceService
	Mark         MarkService
	Fee          FeeService
	Leave        LeaveService
	Announcement AnnouncementService
	Lecture      LectureService
	QA           QAService
	Dashboard    DashboardService
	Export       ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	store storage.BlobStore,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Student:      NewStudentService(repo, logger),
		Teacher:      NewTeacherService(repo, logger),
		Class:        NewClassService(repo, logger),
		Subject:      NewSubjectService(repo, logger),
		Assignment:   NewAssignmentService(repo, logger),
		Attendance:   NewAttendanceService(repo, logger),
		Mark:         NewMarkService(repo, logger),
		Fee:          NewFeeService(repo, logger),
		Leave:        NewLeaveService(repo, logger),
		Announcement: NewAnnouncementService(repo, logger),
		Lecture:      NewLectureService(repo, store, logger),
		QA:           NewQAService(repo, logger),
		Dashboard:    NewDashboardService(repo, logger),
		Export:       NewExportService(repo, logger),
	}
}
