package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"ssss/backend/internal/model"
)

// FeeFilter 缴费单查询条件
type FeeFilter struct {
	StudentID string
	Status    string
	Year      int
}

// FeeVoucherRepository 缴费单数据访问接口
type FeeVoucherRepository interface {
	Create(ctx context.Context, voucher *model.FeeVoucher) error
	GetByID(ctx context.Context, id string) (*model.FeeVoucher, error)
	Update(ctx context.Context, voucher *model.FeeVoucher) error
	List(ctx context.Context, filter FeeFilter, offset, limit int) ([]model.FeeVoucher, int64, error)
	ListPendingByStudent(ctx context.Context, studentID string) ([]model.FeeVoucher, error)
	SumAmountByStatus(ctx context.Context, status string) (float64, error)
	SumPaidInYear(ctx context.Context, year int) (float64, error)
	// MarkOverdueIssuedBefore 将指定日期前开具且仍未缴费的账单批量置为逾期
	MarkOverdueIssuedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	CountByStudent(ctx context.Context, studentID string) (int64, error)
}

// feeVoucherRepo FeeVoucherRepository 的 GORM 实现
type feeVoucherRepo struct {
	db *gorm.DB
}

// NewFeeVoucherRepo 创建 FeeVoucherRepository 实例
func NewFeeVoucherRepo(db *gorm.DB) FeeVoucherRepository {
	return &feeVoucherRepo{db: db}
}

func (r *feeVoucherRepo) Create(ctx context.Context, voucher *model.FeeVoucher) error {
	return r.db.WithContext(ctx).Create(voucher).Error
}

func (r *feeVoucherRepo) GetByID(ctx context.Context, id string) (*model.FeeVoucher, error) {
	var voucher model.FeeVoucher
	err := r.db.WithContext(ctx).
		Preload("Student").
		Where("voucher_id = ?", id).
		First(&voucher).Error
	if err != nil {
		return nil, err
	}
	return &voucher, nil
}

func (r *feeVoucherRepo) Update(ctx context.Context, voucher *model.FeeVoucher) error {
	return r.db.WithContext(ctx).Save(voucher).Error
}

func (r *feeVoucherRepo) List(ctx context.Context, filter FeeFilter, offset, limit int) ([]model.FeeVoucher, int64, error) {
	var vouchers []model.FeeVoucher
	var total int64

	db := r.db.WithContext(ctx).Model(&model.FeeVoucher{})
	if filter.StudentID != "" {
		db = db.Where("student_id = ?", filter.StudentID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Year != 0 {
		db = db.Where("year = ?", filter.Year)
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("Student").
		Order("issued_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&vouchers).Error
	if err != nil {
		return nil, 0, err
	}
	return vouchers, total, nil
}

func (r *feeVoucherRepo) ListPendingByStudent(ctx context.Context, studentID string) ([]model.FeeVoucher, error) {
	var vouchers []model.FeeVoucher
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND status IN ?", studentID, []string{model.FeePending, model.FeeOverdue}).
		Order("issued_date DESC").
		Find(&vouchers).Error
	if err != nil {
		return nil, err
	}
	return vouchers, nil
}

func (r *feeVoucherRepo) SumAmountByStatus(ctx context.Context, status string) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&model.FeeVoucher{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", status).
		Scan(&sum).Error
	return sum, err
}

func (r *feeVoucherRepo) SumPaidInYear(ctx context.Context, year int) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&model.FeeVoucher{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ? AND year = ?", model.FeePaid, year).
		Scan(&sum).Error
	return sum, err
}

func (r *feeVoucherRepo) MarkOverdueIssuedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.FeeVoucher{}).
		Where("status = ? AND issued_date < ?", model.FeePending, cutoff).
		Update("status", model.FeeOverdue)
	return result.RowsAffected, result.Error
}

func (r *feeVoucherRepo) CountByStudent(ctx context.Context, studentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.FeeVoucher{}).
		Where("student_id = ?", studentID).
		Count(&count).Error
	return count, err
}
