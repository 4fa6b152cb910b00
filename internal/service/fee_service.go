package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ssss/backend/internal/dto"
	"ssss/backend/internal/model"
	"ssss/backend/internal/repository"
)

// ── 费用模块业务错误 ──

var ErrVoucherNotFound = errors.New("缴费单不存在")

// FeeService 缴费单业务接口
type FeeService interface {
	Issue(ctx context.Context, req *dto.IssueVoucherRequest) (*dto.FeeVoucherResponse, error)
	// MarkPaid 将缴费单置为已缴费；幂等，重复调用返回当前状态
	MarkPaid(ctx context.Context, id string) (*dto.FeeVoucherResponse, error)
	Get(ctx context.Context, id string) (*dto.FeeVoucherResponse, error)
	List(ctx context.Context, req *dto.FeeListRequest) ([]dto.FeeVoucherResponse, int64, error)
	// MarkOverdue 将指定日期前开具且未缴费的账单批量置为逾期，返回更新条数
	MarkOverdue(ctx context.Context, cutoff time.Time) (int64, error)
}

type feeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFeeService 创建 FeeService 实例
func NewFeeService(repo *repository.Repository, logger *zap.Logger) FeeService {
	return &feeService{repo: repo, logger: logger}
}

func (s *feeService) Issue(ctx context.Context, req *dto.IssueVoucherRequest) (*dto.FeeVoucherResponse, error) {
	if _, err := s.repo.Student.GetByID(ctx, req.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Error(err))
		return nil, err
	}

	voucher := &model.FeeVoucher{
		StudentID:  req.StudentID,
		Month:      req.Month,
		Year:       req.Year,
		Amount:     req.Amount,
		Status:     model.FeePending,
		IssuedDate: time.Now().UTC(),
		Remarks:    req.Remarks,
	}
	if err := s.repo.Fee.Create(ctx, voucher); err != nil {
		s.logger.Error("开具缴费单失败", zap.Error(err))
		return nil, err
	}

	return s.Get(ctx, voucher.VoucherID)
}

func (s *feeService) MarkPaid(ctx context.Context, id string) (*dto.FeeVoucherResponse, error) {
	voucher, err := s.repo.Fee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVoucherNotFound
		}
		s.logger.Error("查询缴费单失败", zap.Error(err))
		return nil, err
	}

	// 已缴费直接返回，不重置缴费时间
	if voucher.Status == model.FeePaid {
		resp := toFeeVoucherResponse(voucher)
		return &resp, nil
	}

	now := time.Now().UTC()
	voucher.Status = model.FeePaid
	voucher.PaidDate = &now
	if err := s.repo.Fee.Update(ctx, voucher); err != nil {
		s.logger.Error("更新缴费单失败", zap.Error(err))
		return nil, err
	}

	resp := toFeeVoucherResponse(voucher)
	return &resp, nil
}

func (s *feeService) Get(ctx context.Context, id string) (*dto.FeeVoucherResponse, error) {
	voucher, err := s.repo.Fee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVoucherNotFound
		}
		s.logger.Error("查询缴费单失败", zap.Error(err))
		return nil, err
	}
	resp := toFeeVoucherResponse(voucher)
	return &resp, nil
}

func (s *feeService) List(ctx context.Context, req *dto.FeeListRequest) ([]dto.FeeVoucherResponse, int64, error) {
	filter := repository.FeeFilter{
		StudentID: req.StudentID,
		Status:    req.Status,
		Year:      req.Year,
	}
	vouchers, total, err := s.repo.Fee.List(ctx, filter, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询缴费单列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.FeeVoucherResponse, 0, len(vouchers))
	for i := range vouchers {
		result = append(result, toFeeVoucherResponse(&vouchers[i]))
	}
	return result, total, nil
}

func (s *feeService) MarkOverdue(ctx context.Context, cutoff time.Time) (int64, error) {
	affected, err := s.repo.Fee.MarkOverdueIssuedBefore(ctx, cutoff)
	if err != nil {
		s.logger.Error("批量标记逾期失败", zap.Error(err))
		return 0, err
	}
	if affected > 0 {
		s.logger.Info("缴费单已标记逾期", zap.Int64("count", affected))
	}
	return affected, nil
}

func toFeeVoucherResponse(v *model.FeeVoucher) dto.FeeVoucherResponse {
	resp := dto.FeeVoucherResponse{
		VoucherID:  v.VoucherID,
		StudentID:  v.StudentID,
		Month:      v.Month,
		Year:       v.Year,
		Amount:     v.Amount,
		Status:     v.Status,
		IssuedDate: formatDate(v.IssuedDate),
		PaidDate:   formatDatePtr(v.PaidDate),
		Remarks:    v.Remarks,
	}
	if v.Student != nil {
		resp.StudentName = v.Student.FullName
	}
	return resp
}
