package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ssss/backend/internal/dto"
	"ssss/backend/internal/model"
	"ssss/backend/internal/repository"

	"github.com/google/uuid"
)

var ErrTeacherNotFound = errors.New("教师不存在")

// TeacherService 教师档案业务接口
type TeacherService interface {
	Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.TeacherResponse, error)
	Get(ctx context.Context, id string) (*dto.TeacherResponse, error)
	GetByUserID(ctx context.Context, userID string) (*dto.TeacherResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, req *dto.TeacherListRequest) ([]dto.TeacherResponse, int64, error)
}

type teacherService struct {
	repo   *repository.Repository
	idGen  IDGenerator
	logger *zap.Logger
}

// NewTeacherService 创建 TeacherService 实例
func NewTeacherService(repo *repository.Repository, logger *zap.Logger) TeacherService {
	return &teacherService{
		repo:   repo,
		idGen:  uuid.NewString,
		logger: logger,
	}
}

func (s *teacherService) placeholderEmail() string {
	id := strings.ReplaceAll(s.idGen(), "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("teacher-%s@ssss.edu", id)
}

func (s *teacherService) Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.TeacherResponse, error) {
	joinDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.JoinDate != nil && *req.JoinDate != "" {
		parsed, err := parseDate(*req.JoinDate)
		if err != nil {
			return nil, err
		}
		joinDate = parsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("生成密码哈希失败", zap.Error(err))
		return nil, err
	}

	loginEmail := s.placeholderEmail()
	if req.Email != nil && *req.Email != "" {
		loginEmail = *req.Email
	}

	user := &model.User{
		FullName:     req.FullName,
		Email:        loginEmail,
		PasswordHash: string(hash),
		Role:         model.RoleTeacher,
	}
	teacher := &model.Teacher{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Qualification: req.Qualification,
		JoinDate:      joinDate,
	}

	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.User.Create(ctx, user); err != nil {
			return err
		}
		teacher.UserID = user.UserID
		return txRepo.Teacher.Create(ctx, teacher)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		s.logger.Error("创建教师失败", zap.Error(err))
		return nil, err
	}

	resp := toTeacherResponse(teacher)
	return &resp, nil
}

func (s *teacherService) Get(ctx context.Context, id string) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		s.logger.Error("查询教师失败", zap.Error(err))
		return nil, err
	}
	resp := toTeacherResponse(teacher)
	return &resp, nil
}

func (s *teacherService) GetByUserID(ctx context.Context, userID string) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.Teacher.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		s.logger.Error("查询教师失败", zap.Error(err))
		return nil, err
	}
	resp := toTeacherResponse(teacher)
	return &resp, nil
}

func (s *teacherService) Update(ctx context.Context, id string, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		s.logger.Error("查询教师失败", zap.Error(err))
		return nil, err
	}

	if req.FullName != nil {
		teacher.FullName = *req.FullName
	}
	if req.Email != nil {
		teacher.Email = req.Email
	}
	if req.Phone != nil {
		teacher.Phone = req.Phone
	}
	if req.Qualification != nil {
		teacher.Qualification = req.Qualification
	}
	if req.JoinDate != nil && *req.JoinDate != "" {
		parsed, err := parseDate(*req.JoinDate)
		if err != nil {
			return nil, err
		}
		teacher.JoinDate = parsed
	}

	if err := s.repo.Teacher.Update(ctx, teacher); err != nil {
		s.logger.Error("更新教师失败", zap.Error(err))
		return nil, err
	}

	resp := toTeacherResponse(teacher)
	return &resp, nil
}

func (s *teacherService) Delete(ctx context.Context, id string) error {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeacherNotFound
		}
		s.logger.Error("查询教师失败", zap.Error(err))
		return err
	}

	// 仍有授课分配或教学记录时拒绝删除
	for _, count := range []func(context.Context, string) (int64, error){
		s.repo.Assignment.CountByTeacher,
		s.repo.Attendance.CountByTeacher,
		s.repo.Mark.CountByTeacher,
		s.repo.Announcement.CountByTeacher,
		s.repo.Lecture.CountByTeacher,
		s.repo.QA.CountAnswersByTeacher,
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

	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.Teacher.Delete(ctx, id); err != nil {
			return err
		}
		return txRepo.User.Delete(ctx, teacher.UserID)
	})
	if err != nil {
		s.logger.Error("删除教师失败", zap.Error(err))
		return err
	}
	return nil
}

func (s *teacherService) List(ctx context.Context, req *dto.TeacherListRequest) ([]dto.TeacherResponse, int64, error) {
	teachers, total, err := s.repo.Teacher.List(ctx, req.Keyword, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询教师列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.TeacherResponse, 0, len(teachers))
	for i := range teachers {
		result = append(result, toTeacherResponse(&teachers[i]))
	}
	return result, total, nil
}

func toTeacherResponse(teacher *model.Teacher) dto.TeacherResponse {
	return dto.TeacherResponse{
		TeacherID:     teacher.TeacherID,
		UserID:        teacher.UserID,
		FullName:      teacher.FullName,
		Email:         teacher.Email,
		Phone:         teacher.Phone,
		Qualification: teacher.Qualification,
		JoinDate:      formatDate(teacher.JoinDate),
		CreatedAt:     formatTime(teacher.CreatedAt),
	}
}
