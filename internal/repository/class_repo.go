package repository

import (
	"context"

	"gorm.io/gorm"

	"ssss/backend/internal/model"
)

// ClassRepository 班级数据访问接口
type ClassRepository interface {
	Create(ctx context.Context, class *model.Class) error
	GetByID(ctx context.Context, id string) (*model.Class, error)
	Update(ctx context.Context, class *model.Class) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]model.Class, int64, error)
	Count(ctx context.Context) (int64, error)
}

// classRepo ClassRepository 的 GORM 实现
type classRepo struct {
	db *gorm.DB
}

// NewClassRepo 创建 ClassRepository 实例
func NewClassRepo(db *gorm.DB) ClassRepository {
	return &classRepo{db: db}
}

func (r *classRepo) Create(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepo) GetByID(ctx context.Context, id string) (*model.Class, error) {
	var class model.Class
	err := r.db.WithContext(ctx).
		Where("class_id = ?", id).
		First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepo) Update(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Save(class).Error
}

func (r *classRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("class_id = ?", id).
		Delete(&model.Class{}).Error
}

func (r *classRepo) List(ctx context.Context, offset, limit int) ([]model.Class, int64, error) {
	var classes []model.Class
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Class{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&classes).Error
	if err != nil {
		return nil, 0, err
	}
	return classes, total, nil
}

func (r *classRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Class{}).Count(&count).Error
	return count, err
}
