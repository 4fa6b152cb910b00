package repository

import (
	"context"

	"gorm.io/gorm"

	"ssss/backend/internal/model"
)

// AssignmentFilter 授课分配查询条件
type AssignmentFilter struct {
	TeacherID string
	SubjectID string
	ClassID   string
}

// AssignmentRepository 授课分配数据访问接口
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *model.SubjectAssignment) error
	GetByID(ctx context.Context, id string) (*model.SubjectAssignment, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter AssignmentFilter, offset, limit int) ([]model.SubjectAssignment, int64, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]model.SubjectAssignment, error)
	ExistsForTeacherSubjectClass(ctx context.Context, teacherID, subjectID, classID string) (bool, error)
	CountByTeacher(ctx context.Context, teacherID string) (int64, error)
	CountBySubject(ctx context.Context, subjectID string) (int64, error)
	CountByClass(ctx context.Context, classID string) (int64, error)
}

// assignmentRepo AssignmentRepository 的 GORM 实现
type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo 创建 AssignmentRepository 实例
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Create(ctx context.Context, assignment *model.SubjectAssignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepo) GetByID(ctx context.Context, id string) (*model.SubjectAssignment, error) {
	var assignment model.SubjectAssignment
	err := r.db.WithContext(ctx).
		Preload("Teacher").
		Preload("Subject").
		Preload("Class").
		Where("assignment_id = ?", id).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("assignment_id = ?", id).
		Delete(&model.SubjectAssignment{}).Error
}

func (r *assignmentRepo) List(ctx context.Context, filter AssignmentFilter, offset, limit int) ([]model.SubjectAssignment, int64, error) {
	var assignments []model.SubjectAssignment
	var total int64

	db := r.db.WithContext(ctx).Model(&model.SubjectAssignment{})
	if filter.TeacherID != "" {
		db = db.Where("teacher_id = ?", filter.TeacherID)
	}
	if filter.SubjectID != "" {
		db = db.Where("subject_id = ?", filter.SubjectID)
	}
	if filter.ClassID != "" {
		db = db.Where("class_id = ?", filter.ClassID)
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("Teacher").
		Preload("Subject").
		Preload("Class").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&assignments).Error
	if err != nil {
		return nil, 0, err
	}
	return assignments, total, nil
}

func (r *assignmentRepo) ListByTeacher(ctx context.Context, teacherID string) ([]model.SubjectAssignment, error) {
	var assignments []model.SubjectAssignment
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Preload("Class").
		Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *assignmentRepo) ExistsForTeacherSubjectClass(ctx context.Context, teacherID, subjectID, classID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SubjectAssignment{}).
		Where("teacher_id = ? AND subject_id = ? AND class_id = ?", teacherID, subjectID, classID).
		Count(&count).Error
	return count > 0, err
}

func (r *assignmentRepo) CountByTeacher(ctx context.Context, teacherID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SubjectAssignment{}).
		Where("teacher_id = ?", teacherID).
		Count(&count).Error
	return count, err
}

func (r *assignmentRepo) CountBySubject(ctx context.Context, subjectID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SubjectAssignment{}).
		Where("subject_id = ?", subjectID).
		Count(&count).Error
	return count, err
}

func (r *assignmentRepo) CountByClass(ctx context.Context, classID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SubjectAssignment{}).
		Where("class_id = ?", classID).
		Count(&count).Error
	return count, err
}
