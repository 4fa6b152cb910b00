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

// ── 公告模块业务错误 ──

var (
	ErrAnnouncementNotFound = errors.New("公告不存在")
	ErrInvalidAudience      = errors.New("公告受众无效")
	ErrNotAnnouncementOwner = errors.New("只能删除自己发布的公告")
)

// AnnouncementService 公告业务接口
type AnnouncementService interface {
	Create(ctx context.Context, teacherID string, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	// Delete 仅发布者本人可删除
	Delete(ctx context.Context, teacherID, id string) error
	// ListForRole 按查看者角色过滤受众
	ListForRole(ctx context.Context, role string, req *dto.AnnouncementListRequest) ([]dto.AnnouncementResponse, int64, error)
}

type announcementService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAnnouncementService 创建 AnnouncementService 实例
func NewAnnouncementService(repo *repository.Repository, logger *zap.Logger) AnnouncementService {
	return &announcementService{repo: repo, logger: logger}
}

// audiencesForRole 角色可见的受众集合；管理员看全部
func audiencesForRole(role string) []string {
	switch role {
	case model.RoleStudent:
		return []string{model.AudienceAll, model.AudienceStudents}
	case model.RoleTeacher:
		return []string{model.AudienceAll, model.AudienceTeachers}
	default:
		return nil
	}
}

func (s *announcementService) Create(ctx context.Context, teacherID string, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	if !model.ValidAudience(req.Audience) {
		return nil, ErrInvalidAudience
	}

	announcement := &model.Announcement{
		TeacherID: teacherID,
		Title:     req.Title,
		Content:   req.Content,
		Audience:  req.Audience,
	}
	if err := s.repo.Announcement.Create(ctx, announcement); err != nil {
		s.logger.Error("发布公告失败", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Announcement.GetByID(ctx, announcement.AnnouncementID)
	if err != nil {
		s.logger.Error("查询公告失败", zap.Error(err))
		return nil, err
	}
	resp := toAnnouncementResponse(created)
	return &resp, nil
}

func (s *announcementService) Delete(ctx context.Context, teacherID, id string) error {
	announcement, err := s.repo.Announcement.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnnouncementNotFound
		}
		s.logger.Error("查询公告失败", zap.Error(err))
		return err
	}

	if announcement.TeacherID != teacherID {
		return ErrNotAnnouncementOwner
	}

	if err := s.repo.Announcement.Delete(ctx, id); err != nil {
		s.logger.Error("删除公告失败", zap.Error(err))
		return err
	}
	return nil
}

func (s *announcementService) ListForRole(ctx context.Context, role string, req *dto.AnnouncementListRequest) ([]dto.AnnouncementResponse, int64, error) {
	audiences := audiencesForRole(role)
	announcements, total, err := s.repo.Announcement.ListForAudiences(ctx, audiences, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询公告列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.AnnouncementResponse, 0, len(announcements))
	for i := range announcements {
		result = append(result, toAnnouncementResponse(&announcements[i]))
	}
	return result, total, nil
}

func toAnnouncementResponse(a *model.Announcement) dto.AnnouncementResponse {
	resp := dto.AnnouncementResponse{
		AnnouncementID: a.AnnouncementID,
		TeacherID:      a.TeacherID,
		Title:          a.Title,
		Content:        a.Content,
		Audience:       a.Audience,
		CreatedAt:      formatTime(a.CreatedAt),
	}
	if a.Teacher != nil {
		resp.TeacherName = a.Teacher.FullName
	}
	return resp
}
