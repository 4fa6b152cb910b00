package repository

import (
	"context"

	"gorm.io/gorm"

	"ssss/backend/internal/model"
)

// LeaveFilter 请假查询条件
type LeaveFilter struct {
	StudentID string
	Status    string
}

// LeaveRepository 请假申请数据访问接口
type LeaveRepository interface {
	Create(ctx context.Context, leave *model.LeaveApplication) error
	GetByID(ctx context.Context, id string) (*model.LeaveApplication, error)
	Update(ctx context.Context, leave *model.LeaveApplication) error
	List(ctx context.Context, filter LeaveFilter, offset, limit int) ([]model.LeaveApplication, int64, error)
	ListApprovedByStudent(ctx context.Context, studentID string) ([]model.LeaveApplication, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountByStudent(ctx context.Context, studentID string) (int64, error)
	CountByStudentAndStatus(ctx context.Context, studentID, status string) (int64, error)
}

// leaveRepo LeaveRepository 的 GORM 实现
type leaveRepo struct {
	db *gorm.DB
}

// NewLeaveRepo 创建 LeaveRepository 实例
func NewLeaveRepo(db *gorm.DB) LeaveRepository {
	return &leaveRepo{db: db}
}

func (r *leaveRepo) Create(ctx context.Context, leave *model.LeaveApplication) error {
	return r.db.WithContext(ctx).Create(leave).Error
}

func (r *leaveRepo) GetByID(ctx context.Context, id string) (*model.LeaveApplication, error) {
	var leave model.LeaveApplication
	err := r.db.WithContext(ctx).
		Preload("Student").
		Where("application_id = ?", id).
		First(&leave).Error
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

func (r *leaveRepo) Update(ctx context.Context, leave *model.LeaveApplication) error {
	return r.db.WithContext(ctx).Save(leave).Error
}

func (r *leaveRepo) List(ctx context.Context, filter LeaveFilter, offset, limit int) ([]model.LeaveApplication, int64, error) {
	var leaves []model.LeaveApplication
	var total int64

	db := r.db.WithContext(ctx).Model(&model.LeaveApplication{})
	if filter.StudentID != "" {
		db = db.Where("student_id = ?", filter.StudentID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("Student").
		Order("applied_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&leaves).Error
	if err != nil {
		return nil, 0, err
	}
	return leaves, total, nil
}

func (r *leaveRepo) ListApprovedByStudent(ctx context.Context, studentID string) ([]model.LeaveApplication, error) {
	var leaves []model.LeaveApplication
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND status = ?", studentID, model.LeaveApproved).
		Order("from_date ASC").
		Find(&leaves).Error
	if err != nil {
		return nil, err
	}
	return leaves, nil
}

func (r *leaveRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.LeaveApplication{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *leaveRepo) CountByStudent(ctx context.Context, studentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.LeaveApplication{}).
		Where("student_id = ?", studentID).
		Count(&count).Error
	return count, err
}

func (r *leaveRepo) CountByStudentAndStatus(ctx context.Context, studentID, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.LeaveApplication{}).
		Where("student_id = ? AND status = ?", studentID, status).
		Count(&count).Error
	return count, err
}
