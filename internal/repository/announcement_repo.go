package repository

import (
	"context"

	"gorm.io/gorm"

	"ssss/backend/internal/model"
)

// AnnouncementRepository 公告数据访问接口
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *model.Announcement) error
	GetByID(ctx context.Context, id string) (*model.Announcement, error)
	Delete(ctx context.Context, id string) error
	// ListForAudiences 按受众集合查询（学生传 [all students]，教师传 [all teachers]）
	ListForAudiences(ctx context.Context, audiences []string, offset, limit int) ([]model.Announcement, int64, error)
	ListRecentForAudiences(ctx context.Context, audiences []string, limit int) ([]model.Announcement, error)
	CountByTeacher(ctx context.Context, teacherID string) (int64, error)
}

// announcementRepo AnnouncementRepository 的 GORM 实现
type announcementRepo struct {
	db *gorm.DB
}

// NewAnnouncementRepo 创建 AnnouncementRepository 实例
func NewAnnouncementRepo(db *gorm.DB) AnnouncementRepository {
	return &announcementRepo{db: db}
}

func (r *announcementRepo) Create(ctx context.Context, announcement *model.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

func (r *announcementRepo) GetByID(ctx context.Context, id string) (*model.Announcement, error) {
	var announcement model.Announcement
	err := r.db.WithContext(ctx).
		Preload("Teacher").
		Where("announcement_id = ?", id).
		First(&announcement).Error
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

func (r *announcementRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("announcement_id = ?", id).
		Delete(&model.Announcement{}).Error
}

func (r *announcementRepo) ListForAudiences(ctx context.Context, audiences []string, offset, limit int) ([]model.Announcement, int64, error) {
	var announcements []model.Announcement
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Announcement{})
	if len(audiences) > 0 {
		db = db.Where("audience IN ?", audiences)
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("Teacher").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&announcements).Error
	if err != nil {
		return nil, 0, err
	}
	return announcements, total, nil
}

func (r *announcementRepo) ListRecentForAudiences(ctx context.Context, audiences []string, limit int) ([]model.Announcement, error) {
	var announcements []model.Announcement
	db := r.db.WithContext(ctx).Preload("Teacher")
	if len(audiences) > 0 {
		db = db.Where("audience IN ?", audiences)
	}
	err := db.Order("created_at DESC").
		Limit(limit).
		Find(&announcements).Error
	if err != nil {
		return nil, err
	}
	return announcements, nil
}

func (r *announcementRepo) CountByTeacher(ctx context.Context, teacherID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Announcement{}).
		Where("teacher_id = ?", teacherID).
		Count(&count).Error
	return count, err
}
