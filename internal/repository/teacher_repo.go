package repository

import (
	"context"

	"gorm.io/gorm"

	"ssss/backend/internal/model"
)

// TeacherRepository 教师档案数据访问接口
type TeacherRepository interface {
	Create(ctx context.Context, teacher *model.Teacher) error
	GetByID(ctx context.Context, id string) (*model.Teacher, error)
	GetByUserID(ctx context.Context, userID string) (*model.Teacher, error)
	Update(ctx context.Context, teacher *model.Teacher) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, keyword string, offset, limit int) ([]model.Teacher, int64, error)
	Count(ctx context.Context) (int64, error)
}

// teacherRepo TeacherRepository 的 GORM 实现
type teacherRepo struct {
	db *gorm.DB
}

// NewTeacherRepo 创建 TeacherRepository 实例
func NewTeacherRepo(db *gorm.DB) TeacherRepository {
	return &teacherRepo{db: db}
}

func (r *teacherRepo) Create(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Create(teacher).Error
}

func (r *teacherRepo) GetByID(ctx context.Context, id string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("teacher_id = ?", id).
		First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) GetByUserID(ctx context.Context, userID string) (*model.Teacher, error) {
	var teacher model.Teacher
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&teacher).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *teacherRepo) Update(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Save(teacher).Error
}

func (r *teacherRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("teacher_id = ?", id).
		Delete(&model.Teacher{}).Error
}

func (r *teacherRepo) List(ctx context.Context, keyword string, offset, limit int) ([]model.Teacher, int64, error) {
	var teachers []model.Teacher
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Teacher{})
	if keyword != "" {
		db = db.Where("full_name ILIKE ?", "%"+keyword+"%")
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("full_name ASC").
		Offset(offset).
		Limit(limit).
		Find(&teachers).Error
	if err != nil {
		return nil, 0, err
	}
	return teachers, total, nil
}

func (r *teacherRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Teacher{}).Count(&count).Error
	return count, err
}
