package service

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ssss/backend/internal/dto"
	"ssss/backend/internal/model"
	"ssss/backend/internal/repository"
	"ssss/backend/pkg/storage"
)

// ── 课件模块业务错误 ──

var (
	ErrMaterialNotFound  = errors.New("课件不存在")
	ErrNotMaterialOwner  = errors.New("只能删除自己上传的课件")
	ErrMaterialStoreFail = errors.New("课件文件保存失败")
)

// LectureService 课件业务接口
type LectureService interface {
	// Upload 保存课件文件并登记元数据；file 为 nil 时仅登记元数据
	Upload(ctx context.Context, teacherID string, req *dto.UploadMaterialRequest, file io.Reader, filename string) (*dto.MaterialResponse, error)
	Get(ctx context.Context, id string) (*dto.MaterialResponse, error)
	Delete(ctx context.Context, teacherID, id string) error
	List(ctx context.Context, req *dto.MaterialListRequest) ([]dto.MaterialResponse, int64, error)
}

type lectureService struct {
	repo   *repository.Repository
	store  storage.BlobStore
	logger *zap.Logger
}

// NewLectureService 创建 LectureService 实例
func NewLectureService(repo *repository.Repository, store storage.BlobStore, logger *zap.Logger) LectureService {
	return &lectureService{repo: repo, store: store, logger: logger}
}

func (s *lectureService) Upload(ctx context.Context, teacherID string, req *dto.UploadMaterialRequest, file io.Reader, filename string) (*dto.MaterialResponse, error) {
	if _, err := s.repo.Subject.GetByID(ctx, req.SubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("查询科目失败", zap.Error(err))
		return nil, err
	}

	var filePath *string
	if file != nil {
		stored, err := s.store.Store(file, filename)
		if err != nil {
			s.logger.Error("保存课件文件失败", zap.Error(err))
			return nil, ErrMaterialStoreFail
		}
		filePath = &stored
	}

	material := &model.LectureMaterial{
		TeacherID:   teacherID,
		SubjectID:   req.SubjectID,
		Title:       req.Title,
		Description: req.Description,
		FilePath:    filePath,
	}
	if err := s.repo.Lecture.Create(ctx, material); err != nil {
		s.logger.Error("登记课件失败", zap.Error(err))
		return nil, err
	}

	return s.Get(ctx, material.MaterialID)
}

func (s *lectureService) Get(ctx context.Context, id string) (*dto.MaterialResponse, error) {
	material, err := s.repo.Lecture.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaterialNotFound
		}
		s.logger.Error("查询课件失败", zap.Error(err))
		return nil, err
	}
	resp := toMaterialResponse(material)
	return &resp, nil
}

func (s *lectureService) Delete(ctx context.Context, teacherID, id string) error {
	material, err := s.repo.Lecture.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMaterialNotFound
		}
		s.logger.Error("查询课件失败", zap.Error(err))
		return err
	}

	if material.TeacherID != teacherID {
		return ErrNotMaterialOwner
	}

	if err := s.repo.Lecture.Delete(ctx, id); err != nil {
		s.logger.Error("删除课件失败", zap.Error(err))
		return err
	}
	return nil
}

func (s *lectureService) List(ctx context.Context, req *dto.MaterialListRequest) ([]dto.MaterialResponse, int64, error) {
	materials, total, err := s.repo.Lecture.List(ctx, req.SubjectID, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询课件列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.MaterialResponse, 0, len(materials))
	for i := range materials {
		result = append(result, toMaterialResponse(&materials[i]))
	}
	return result, total, nil
}

func toMaterialResponse(m *model.LectureMaterial) dto.MaterialResponse {
	resp := dto.MaterialResponse{
		MaterialID:  m.MaterialID,
		TeacherID:   m.TeacherID,
		SubjectID:   m.SubjectID,
		Title:       m.Title,
		Description: m.Description,
		FilePath:    m.FilePath,
		UploadedAt:  formatTime(m.UploadedAt),
	}
	if m.Teacher != nil {
		resp.TeacherName = m.Teacher.FullName
	}
	if m.Subject != nil {
		resp.SubjectName = m.Subject.Name
	}
	return resp
}
