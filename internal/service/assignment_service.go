package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ssss/backend/internal/dto"
	"ssss/backend/internal/model"
	"ssss/backend/internal/repository"
)

// ── 授课分配模块业务错误 ──

var (
	ErrAssignmentNotFound = errors.New("授课分配不存在")
	ErrAssignmentExists   = errors.New("该教师已在此班级讲授此科目")
)

// AssignmentService 授课分配业务接口
type AssignmentService interface {
	Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, req *dto.AssignmentListRequest) ([]dto.AssignmentResponse, int64, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]dto.AssignmentResponse, error)
}

type assignmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAssignmentService 创建 AssignmentService 实例
func NewAssignmentService(repo *repository.Repository, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, logger: logger}
}

func (s *assignmentService) Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	// 三方外键逐一校验，错误信息可直接定位
	teacher, err := s.repo.Teacher.GetByID(ctx, req.TeacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		s.logger.Error("查询教师失败", zap.Error(err))
		return nil, err
	}
	subject, err := s.repo.Subject.GetByID(ctx, req.SubjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("查询科目失败", zap.Error(err))
		return nil, err
	}
	class, err := s.repo.Class.GetByID(ctx, req.ClassID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		s.logger.Error("查询班级失败", zap.Error(err))
		return nil, err
	}

	// 快路径：已存在的分配直接报冲突，不触发插入
	exists, err := s.repo.Assignment.ExistsForTeacherSubjectClass(ctx, req.TeacherID, req.SubjectID, req.ClassID)
	if err != nil {
		s.logger.Error("查询授课分配失败", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrAssignmentExists
	}

	assignment := &model.SubjectAssignment{
		TeacherID: req.TeacherID,
		SubjectID: req.SubjectID,
		ClassID:   req.ClassID,
	}
	if err := s.repo.Assignment.Create(ctx, assignment); err != nil {
		// 唯一索引兜底并发下的重复分配
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAssignmentExists
		}
		s.logger.Error("创建授课分配失败", zap.Error(err))
		return nil, err
	}

	assignment.Teacher = teacher
	assignment.Subject = subject
	assignment.Class = class
	resp := toAssignmentResponse(assignment)
	return &resp, nil
}

func (s *assignmentService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Assignment.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}
		s.logger.Error("查询授课分配失败", zap.Error(err))
		return err
	}
	if err := s.repo.Assignment.Delete(ctx, id); err != nil {
		s.logger.Error("删除授课分配失败", zap.Error(err))
		return err
	}
	return nil
}

func (s *assignmentService) List(ctx context.Context, req *dto.AssignmentListRequest) ([]dto.AssignmentResponse, int64, error) {
	filter := repository.AssignmentFilter{
		TeacherID: req.TeacherID,
		SubjectID: req.SubjectID,
		ClassID:   req.ClassID,
	}
	assignments, total, err := s.repo.Assignment.List(ctx, filter, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询授课分配列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		result = append(result, toAssignmentResponse(&assignments[i]))
	}
	return result, total, nil
}

func (s *assignmentService) ListByTeacher(ctx context.Context, teacherID string) ([]dto.AssignmentResponse, error) {
	assignments, err := s.repo.Assignment.ListByTeacher(ctx, teacherID)
	if err != nil {
		s.logger.Error("查询授课分配失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		result = append(result, toAssignmentResponse(&assignments[i]))
	}
	return result, nil
}

func toAssignmentResponse(a *model.SubjectAssignment) dto.AssignmentResponse {
	resp := dto.AssignmentResponse{
		AssignmentID: a.AssignmentID,
		TeacherID:    a.TeacherID,
		SubjectID:    a.SubjectID,
		ClassID:      a.ClassID,
		CreatedAt:    formatTime(a.CreatedAt),
	}
	if a.Teacher != nil {
		resp.TeacherName = a.Teacher.FullName
	}
	if a.Subject != nil {
		resp.SubjectName = a.Subject.Name
	}
	if a.Class != nil {
		resp.ClassName = a.Class.Name
	}
	return resp
}
