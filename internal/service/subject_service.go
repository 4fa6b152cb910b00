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

var ErrSubjectNotFound = errors.New("科目不存在")

// SubjectService 科目业务接口
type SubjectService interface {
	Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error)
	Get(ctx context.Context, id string) (*dto.SubjectResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateSubjectRequest) (*dto.SubjectResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, req *dto.PaginationRequest) ([]dto.SubjectResponse, int64, error)
}

type subjectService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSubjectService 创建 SubjectService 实例
func NewSubjectService(repo *repository.Repository, logger *zap.Logger) SubjectService {
	return &subjectService{repo: repo, logger: logger}
}

func (s *subjectService) Create(ctx context.Context, req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error) {
	subject := &model.Subject{
		Name: req.Name,
		Code: req.Code,
	}
	if err := s.repo.Subject.Create(ctx, subject); err != nil {
		s.logger.Error("创建科目失败", zap.Error(err))
		return nil, err
	}
	resp := toSubjectResponse(subject)
	return &resp, nil
}

func (s *subjectService) Get(ctx context.Context, id string) (*dto.SubjectResponse, error) {
	subject, err := s.repo.Subject.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("查询科目失败", zap.Error(err))
		return nil, err
	}
	resp := toSubjectResponse(subject)
	return &resp, nil
}

func (s *subjectService) Update(ctx context.Context, id string, req *dto.UpdateSubjectRequest) (*dto.SubjectResponse, error) {
	subject, err := s.repo.Subject.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("查询科目失败", zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		subject.Name = *req.Name
	}
	if req.Code != nil {
		subject.Code = req.Code
	}

	if err := s.repo.Subject.Update(ctx, subject); err != nil {
		s.logger.Error("更新科目失败", zap.Error(err))
		return nil, err
	}
	resp := toSubjectResponse(subject)
	return &resp, nil
}

func (s *subjectService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Subject.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubjectNotFound
		}
		s.logger.Error("查询科目失败", zap.Error(err))
		return err
	}

	// 仍被授课分配、学业记录、课件或提问引用时拒绝删除
	for _, count := range []func(context.Context, string) (int64, error){
		s.repo.Assignment.CountBySubject,
		s.repo.Mark.CountBySubject,
		s.repo.Attendance.CountBySubject,
		s.repo.Lecture.CountBySubject,
		s.repo.QA.CountQuestionsBySubject,
	} {
		n, err := count(ctx, id)
		if err != nil {
			s.logger.Error("统计关联记录失败", zap.Error(err))
			return err
		}
		if n > 0 {
			return ErrHasDependents
		}
	}

	if err := s.repo.Subject.Delete(ctx, id); err != nil {
		s.logger.Error("删除科目失败", zap.Error(err))
		return err
	}
	return nil
}

func (s *subjectService) List(ctx context.Context, req *dto.PaginationRequest) ([]dto.SubjectResponse, int64, error) {
	subjects, total, err := s.repo.Subject.List(ctx, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询科目列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.SubjectResponse, 0, len(subjects))
	for i := range subjects {
		result = append(result, toSubjectResponse(&subjects[i]))
	}
	return result, total, nil
}

func toSubjectResponse(subject *model.Subject) dto.SubjectResponse {
	return dto.SubjectResponse{
		SubjectID: subject.SubjectID,
		Name:      subject.Name,
		Code:      subject.Code,
		CreatedAt: formatTime(subject.CreatedAt),
	}
}
