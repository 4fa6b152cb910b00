package repository

import (
	"context"

	"gorm.io/gorm"

	"ssss/backend/internal/model"
)

// MarkFilter 成绩查询条件
type MarkFilter struct {
	StudentID string
	SubjectID string
	ExamType  string
}

// MarkRepository 成绩数据访问接口（只追加，不修改历史记录）
type MarkRepository interface {
	BatchCreate(ctx context.Context, marks []model.Mark) error
	List(ctx context.Context, filter MarkFilter, offset, limit int) ([]model.Mark, int64, error)
	ListRecentByStudent(ctx context.Context, studentID string, limit int) ([]model.Mark, error)
	CountByStudent(ctx context.Context, studentID string) (int64, error)
	CountBySubject(ctx context.Context, subjectID string) (int64, error)
	CountByTeacher(ctx context.Context, teacherID string) (int64, error)
}

// markRepo MarkRepository 的 GORM 实现
type markRepo struct {
	db *gorm.DB
}

// NewMarkRepo 创建 MarkRepository 实例
func NewMarkRepo(db *gorm.DB) MarkRepository {
	return &markRepo{db: db}
}

func (r *markRepo) BatchCreate(ctx context.Context, marks []model.Mark) error {
	if len(marks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&marks).Error
}

func (r *markRepo) List(ctx context.Context, filter MarkFilter, offset, limit int) ([]model.Mark, int64, error) {
	var marks []model.Mark
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Mark{})
	if filter.StudentID != "" {
		db = db.Where("student_id = ?", filter.StudentID)
	}
	if filter.SubjectID != "" {
		db = db.Where("subject_id = ?", filter.SubjectID)
	}
	if filter.ExamType != "" {
		db = db.Where("exam_type = ?", filter.ExamType)
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("Student").
		Preload("Subject").
		Order("date DESC, created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&marks).Error
	if err != nil {
		return nil, 0, err
	}
	return marks, total, nil
}

func (r *markRepo) ListRecentByStudent(ctx context.Context, studentID string, limit int) ([]model.Mark, error) {
	var marks []model.Mark
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Where("student_id = ?", studentID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&marks).Error
	if err != nil {
		return nil, err
	}
	return marks, nil
}

func (r *markRepo) CountByStudent(ctx context.Context, studentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Mark{}).
		Where("student_id = ?", studentID).
		Count(&count).Error
	return count, err
}

func (r *markRepo) CountBySubject(ctx context.Context, subjectID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Mark{}).
		Where("subject_id = ?", subjectID).
		Count(&count).Error
	return count, err
}

func (r *markRepo) CountByTeacher(ctx context.Context, teacherID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Mark{}).
		Where("teacher_id = ?", teacherID).
		Count(&count).Error
	return count, err
}
