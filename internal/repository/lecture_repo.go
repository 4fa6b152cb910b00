package repository

import (
	"context"

	"gorm.io/gorm"

	"ssss/backend/internal/model"
)

// LectureMaterialRepository 课件数据访问接口
type LectureMaterialRepository interface {
	Create(ctx context.Context, material *model.LectureMaterial) error
	GetByID(ctx context.Context, id string) (*model.LectureMaterial, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, subjectID string, offset, limit int) ([]model.LectureMaterial, int64, error)
	CountByTeacher(ctx context.Context, teacherID string) (int64, error)
	CountBySubject(ctx context.Context, subjectID string) (int64, error)
}

// lectureMaterialRepo LectureMaterialRepository 的 GORM 实现
type lectureMaterialRepo struct {
	db *gorm.DB
}

// NewLectureMaterialRepo 创建 LectureMaterialRepository 实例
func NewLectureMaterialRepo(db *gorm.DB) LectureMaterialRepository {
	return &lectureMaterialRepo{db: db}
}

func (r *lectureMaterialRepo) Create(ctx context.Context, material *model.LectureMaterial) error {
	return r.db.WithContext(ctx).Create(material).Error
}

func (r *lectureMaterialRepo) GetByID(ctx context.Context, id string) (*model.LectureMaterial, error) {
	var material model.LectureMaterial
	err := r.db.WithContext(ctx).
		Preload("Teacher").
		Preload("Subject").
		Where("material_id = ?", id).
		First(&material).Error
	if err != nil {
		return nil, err
	}
	return &material, nil
}

func (r *lectureMaterialRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("material_id = ?", id).
		Delete(&model.LectureMaterial{}).Error
}

func (r *lectureMaterialRepo) List(ctx context.Context, subjectID string, offset, limit int) ([]model.LectureMaterial, int64, error) {
	var materials []model.LectureMaterial
	var total int64

	db := r.db.WithContext(ctx).Model(&model.LectureMaterial{})
	if subjectID != "" {
		db = db.Where("subject_id = ?", subjectID)
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("Teacher").
		Preload("Subject").
		Order("uploaded_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&materials).Error
	if err != nil {
		return nil, 0, err
	}
	return materials, total, nil
}

func (r *lectureMaterialRepo) CountByTeacher(ctx context.Context, teacherID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.LectureMaterial{}).
		Where("teacher_id = ?", teacherID).
		Count(&count).Error
	return count, err
}

func (r *lectureMaterialRepo) CountBySubject(ctx context.Context, subjectID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.LectureMaterial{}).
		Where("subject_id = ?", subjectID).
		Count(&count).Error
	return count, err
}
