package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ssss/backend/internal/dto"
	"ssss/backend/internal/model"
	"ssss/backend/internal/repository"
)

// ── 请假模块业务错误 ──

var (
	ErrLeaveNotFound        = errors.New("请假申请不存在")
	ErrLeaveDateRange       = errors.New("结束日期不能早于开始日期")
	ErrLeaveAlreadyReviewed = errors.New("该申请已审批，不能重复处理")
)

// LeaveService 请假业务接口
type LeaveService interface {
	Apply(ctx context.Context, studentID string, req *dto.ApplyLeaveRequest) (*dto.LeaveResponse, error)
	// Review 审批待处理申请；已进入终态的申请拒绝再次审批
	Review(ctx context.Context, id string, req *dto.ReviewLeaveRequest) (*dto.LeaveResponse, error)
	Get(ctx context.Context, id string) (*dto.LeaveResponse, error)
	List(ctx context.Context, req *dto.LeaveListRequest) ([]dto.LeaveResponse, int64, error)
}

type leaveService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLeaveService 创建 LeaveService 实例
func NewLeaveService(repo *repository.Repository, logger *zap.Logger) LeaveService {
	return &leaveService{repo: repo, logger: logger}
}

func (s *leaveService) Apply(ctx context.Context, studentID string, req *dto.ApplyLeaveRequest) (*dto.LeaveResponse, error) {
	from, err := parseDate(req.FromDate)
	if err != nil {
		return nil, err
	}
	to, err := parseDate(req.ToDate)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, ErrLeaveDateRange
	}

	if _, err := s.repo.Student.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Error(err))
		return nil, err
	}

	leave := &model.LeaveApplication{
		StudentID: studentID,
		Reason:    req.Reason,
		FromDate:  from,
		ToDate:    to,
		Status:    model.LeavePending,
		AppliedAt: time.Now().UTC(),
	}
	if err := s.repo.Leave.Create(ctx, leave); err != nil {
		s.logger.Error("创建请假申请失败", zap.Error(err))
		return nil, err
	}

	return s.Get(ctx, leave.ApplicationID)
}

func (s *leaveService) Review(ctx context.Context, id string, req *dto.ReviewLeaveRequest) (*dto.LeaveResponse, error) {
	leave, err := s.repo.Leave.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeaveNotFound
		}
		s.logger.Error("查询请假申请失败", zap.Error(err))
		return nil, err
	}

	if leave.Status != model.LeavePending {
		return nil, ErrLeaveAlreadyReviewed
	}

	leave.Status = req.Decision
	leave.AdminRemarks = req.Remarks
	if err := s.repo.Leave.Update(ctx, leave); err != nil {
		s.logger.Error("更新请假申请失败", zap.Error(err))
		return nil, err
	}

	resp := toLeaveResponse(leave)
	return &resp, nil
}

func (s *leaveService) Get(ctx context.Context, id string) (*dto.LeaveResponse, error) {
	leave, err := s.repo.Leave.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeaveNotFound
		}
		s.logger.Error("查询请假申请失败", zap.Error(err))
		return nil, err
	}
	resp := toLeaveResponse(leave)
	return &resp, nil
}

func (s *leaveService) List(ctx context.Context, req *dto.LeaveListRequest) ([]dto.LeaveResponse, int64, error) {
	filter := repository.LeaveFilter{
		StudentID: req.StudentID,
		Status:    req.Status,
	}
	leaves, total, err := s.repo.Leave.List(ctx, filter, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询请假列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.LeaveResponse, 0, len(leaves))
	for i := range leaves {
		result = append(result, toLeaveResponse(&leaves[i]))
	}
	return result, total, nil
}

func toLeaveResponse(l *model.LeaveApplication) dto.LeaveResponse {
	resp := dto.LeaveResponse{
		ApplicationID: l.ApplicationID,
		StudentID:     l.StudentID,
		Reason:        l.Reason,
		FromDate:      formatDate(l.FromDate),
		ToDate:        formatDate(l.ToDate),
		Status:        l.Status,
		AppliedAt:     formatTime(l.AppliedAt),
		AdminRemarks:  l.AdminRemarks,
	}
	if l.Student != nil {
		resp.StudentName = l.Student.FullName
	}
	return resp
}
