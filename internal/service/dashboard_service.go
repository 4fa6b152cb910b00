package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ssss/backend/internal/dto"
	"ssss/backend/internal/model"
	"ssss/backend/internal/repository"
)

// 首页最近记录的展示条数
const dashboardRecentLimit = 5

// DashboardService 角色首页统计业务接口
type DashboardService interface {
	Admin(ctx context.Context) (*dto.AdminDashboardResponse, error)
	Teacher(ctx context.Context, teacherID string) (*dto.TeacherDashboardResponse, error)
	Student(ctx context.Context, studentID string) (*dto.StudentDashboardResponse, error)
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService 创建 DashboardService 实例
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

func (s *dashboardService) Admin(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	resp := &dto.AdminDashboardResponse{}

	var err error
	if resp.TotalStudents, err = s.repo.Student.Count(ctx); err != nil {
		s.logger.Error("统计学生数失败", zap.Error(err))
		return nil, err
	}
	if resp.TotalTeachers, err = s.repo.Teacher.Count(ctx); err != nil {
		s.logger.Error("统计教师数失败", zap.Error(err))
		return nil, err
	}
	if resp.TotalClasses, err = s.repo.Class.Count(ctx); err != nil {
		s.logger.Error("统计班级数失败", zap.Error(err))
		return nil, err
	}
	if resp.TotalSubjects, err = s.repo.Subject.Count(ctx); err != nil {
		s.logger.Error("统计科目数失败", zap.Error(err))
		return nil, err
	}
	if resp.PendingLeaves, err = s.repo.Leave.CountByStatus(ctx, model.LeavePending); err != nil {
		s.logger.Error("统计待审批请假失败", zap.Error(err))
		return nil, err
	}
	if resp.PendingFeeAmount, err = s.repo.Fee.SumAmountByStatus(ctx, model.FeePending); err != nil {
		s.logger.Error("统计待缴费金额失败", zap.Error(err))
		return nil, err
	}
	if resp.CollectedThisYear, err = s.repo.Fee.SumPaidInYear(ctx, time.Now().UTC().Year()); err != nil {
		s.logger.Error("统计本年已收金额失败", zap.Error(err))
		return nil, err
	}
	return resp, nil
}

func (s *dashboardService) Teacher(ctx context.Context, teacherID string) (*dto.TeacherDashboardResponse, error) {
	assignments, err := s.repo.Assignment.ListByTeacher(ctx, teacherID)
	if err != nil {
		s.logger.Error("查询授课分配失败", zap.Error(err))
		return nil, err
	}

	classSeen := make(map[string]bool)
	subjectSeen := make(map[string]bool)
	assignmentResponses := make([]dto.AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		classSeen[assignments[i].ClassID] = true
		subjectSeen[assignments[i].SubjectID] = true
		assignmentResponses = append(assignmentResponses, toAssignmentResponse(&assignments[i]))
	}

	unanswered, err := s.repo.QA.CountUnanswered(ctx)
	if err != nil {
		s.logger.Error("统计未回答问题失败", zap.Error(err))
		return nil, err
	}

	return &dto.TeacherDashboardResponse{
		AssignmentCount:     int64(len(assignments)),
		ClassCount:          int64(len(classSeen)),
		SubjectCount:        int64(len(subjectSeen)),
		UnansweredQuestions: unanswered,
		Assignments:         assignmentResponses,
	}, nil
}

func (s *dashboardService) Student(ctx context.Context, studentID string) (*dto.StudentDashboardResponse, error) {
	summary, err := s.repo.Attendance.Summarize(ctx, studentID)
	if err != nil {
		s.logger.Error("统计考勤失败", zap.Error(err))
		return nil, err
	}

	marks, err := s.repo.Mark.ListRecentByStudent(ctx, studentID, dashboardRecentLimit)
	if err != nil {
		s.logger.Error("查询最近成绩失败", zap.Error(err))
		return nil, err
	}
	recentMarks := make([]dto.MarkResponse, 0, len(marks))
	for i := range marks {
		recentMarks = append(recentMarks, toMarkResponse(&marks[i]))
	}

	vouchers, err := s.repo.Fee.ListPendingByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("查询待缴费单失败", zap.Error(err))
		return nil, err
	}
	pendingVouchers := make([]dto.FeeVoucherResponse, 0, len(vouchers))
	for i := range vouchers {
		pendingVouchers = append(pendingVouchers, toFeeVoucherResponse(&vouchers[i]))
	}

	pendingLeaves, err := s.repo.Leave.CountByStudentAndStatus(ctx, studentID, model.LeavePending)
	if err != nil {
		s.logger.Error("统计待审批请假失败", zap.Error(err))
		return nil, err
	}

	announcements, err := s.repo.Announcement.ListRecentForAudiences(ctx, audiencesForRole(model.RoleStudent), dashboardRecentLimit)
	if err != nil {
		s.logger.Error("查询最近公告失败", zap.Error(err))
		return nil, err
	}
	recentAnnouncements := make([]dto.AnnouncementResponse, 0, len(announcements))
	for i := range announcements {
		recentAnnouncements = append(recentAnnouncements, toAnnouncementResponse(&announcements[i]))
	}

	return &dto.StudentDashboardResponse{
		Attendance: dto.AttendanceSummary{
			Total:   summary.Total,
			Present: summary.Present,
			Absent:  summary.Absent,
			Late:    summary.Late,
		},
		RecentMarks:     recentMarks,
		PendingVouchers: pendingVouchers,
		PendingLeaves:   pendingLeaves,
		Announcements:   recentAnnouncements,
	}, nil
}
