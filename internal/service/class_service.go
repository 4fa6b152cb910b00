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

var ErrClassNotFound = errors.New("班级不存在")

// ClassService 班级业务接口
type ClassService interface {
	Create(ctx context.Context, req *dto.CreateClassRequest) (*dto.ClassResponse, error)
	Get(ctx context.Context, id string) (*dto.ClassResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateClassRequest) (*dto.ClassResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, req *dto.PaginationRequest) ([]dto.ClassResponse, int64, error)
}

type classService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClassService 创建 ClassService 实例
func NewClassService(repo *repository.Repository, logger *zap.Logger) ClassService {
	return &classService{repo: repo, logger: logger}
}

func (s *classService) Create(ctx context.Context, req *dto.CreateClassRequest) (*dto.ClassResponse, error) {
	class := &model.Class{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Class.Create(ctx, class); err != nil {
		s.logger.Error("创建班级失败", zap.Error(err))
		return nil, err
	}
	resp := s.toResponse(class, 0)
	return &resp, nil
}

func (s *classService) Get(ctx context.Context, id string) (*dto.ClassResponse, error) {
	class, err := s.repo.Class.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		s.logger.Error("查询班级失败", zap.Error(err))
		return nil, err
	}
	count, err := s.repo.Student.CountByClass(ctx, id)
	if err != nil {
		s.logger.Error("统计班级人数失败", zap.Error(err))
		return nil, err
	}
	resp := s.toResponse(class, count)
	return &resp, nil
}

func (s *classService) Update(ctx context.Context, id string, req *dto.UpdateClassRequest) (*dto.ClassResponse, error) {
	class, err := s.repo.Class.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		s.logger.Error("查询班级失败", zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		class.Name = *req.Name
	}
	if req.Description != nil {
		class.Description = req.Description
	}

	if err := s.repo.Class.Update(ctx, class); err != nil {
		s.logger.Error("更新班级失败", zap.Error(err))
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *classService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Class.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassNotFound
		}
		s.logger.Error("查询班级失败", zap.Error(err))
		return err
	}

	// 班内仍有学生或授课分配时拒绝删除
	studentCount, err := s.repo.Student.CountByClass(ctx, id)
	if err != nil {
		s.logger.Error("统计班级人数失败", zap.Error(err))
		return err
	}
	if studentCount > 0 {
		return ErrHasDependents
	}
	assignmentCount, err := s.repo.Assignment.CountByClass(ctx, id)
	if err != nil {
		s.logger.Error("统计授课分配失败", zap.Error(err))
		return err
	}
	if assignmentCount > 0 {
		return ErrHasDependents
	}

	if err := s.repo.Class.Delete(ctx, id); err != nil {
		s.logger.Error("删除班级失败", zap.Error(err))
		return err
	}
	return nil
}

func (s *classService) List(ctx context.Context, req *dto.PaginationRequest) ([]dto.ClassResponse, int64, error) {
	classes, total, err := s.repo.Class.List(ctx, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询班级列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.ClassResponse, 0, len(classes))
	for i := range classes {
		count, err := s.repo.Student.CountByClass(ctx, classes[i].ClassID)
		if err != nil {
			s.logger.Error("统计班级人数失败", zap.Error(err))
			return nil, 0, err
		}
		result = append(result, s.toResponse(&classes[i], count))
	}
	return result, total, nil
}

func (s *classService) toResponse(class *model.Class, studentCount int64) dto.ClassResponse {
	return dto.ClassResponse{
		ClassID:      class.ClassID,
		Name:         class.Name,
		Description:  class.Description,
		StudentCount: studentCount,
		CreatedAt:    formatTime(class.CreatedAt),
	}
}
