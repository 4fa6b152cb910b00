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

// ── 考勤模块业务错误 ──

var (
	ErrInvalidAttendanceStatus = errors.New("考勤状态无效")
	ErrNotAssignedSubject      = errors.New("未分配该科目的授课任务")
)

// AttendanceService 考勤业务接口
type AttendanceService interface {
	// Record 批量录入某科目某日的考勤；同键记录改写状态但保留首次录入教师
	Record(ctx context.Context, teacherID string, req *dto.RecordAttendanceRequest) ([]dto.AttendanceResponse, error)
	List(ctx context.Context, req *dto.AttendanceListRequest) ([]dto.AttendanceResponse, int64, error)
	Summary(ctx context.Context, studentID string) (*dto.AttendanceSummary, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService 创建 AttendanceService 实例
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// Record — 批量录入考勤
// ═══════════════════════════════════════════════════════════
//
// 语义：
//   - (学生, 科目, 日期) 唯一；重复录入更新状态与备注，不产生新记录
//   - 更新时保留首次录入的 teacher_id
//   - 整批同一事务，任一行失败则全部回滚
//   - 并发下同键插入撞唯一索引时降级为更新

func (s *attendanceService) Record(ctx context.Context, teacherID string, req *dto.RecordAttendanceRequest) ([]dto.AttendanceResponse, error) {
	for _, entry := range req.Entries {
		if !model.ValidAttendanceStatus(entry.Status) {
			return nil, ErrInvalidAttendanceStatus
		}
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	// 仅允许录入自己任教科目的考勤
	assignments, err := s.repo.Assignment.ListByTeacher(ctx, teacherID)
	if err != nil {
		s.logger.Error("查询授课分配失败", zap.Error(err))
		return nil, err
	}
	assigned := false
	for _, a := range assignments {
		if a.SubjectID == req.SubjectID {
			assigned = true
			break
		}
	}
	if !assigned {
		return nil, ErrNotAssignedSubject
	}

	// 整批学生必须全部存在，否则一行都不写
	for _, entry := range req.Entries {
		if _, err := s.repo.Student.GetByID(ctx, entry.StudentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrStudentNotFound
			}
			s.logger.Error("查询学生失败", zap.Error(err))
			return nil, err
		}
	}

	saved := make([]*model.Attendance, 0, len(req.Entries))
	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		for _, entry := range req.Entries {
			record, err := s.upsertEntry(ctx, txRepo, teacherID, req.SubjectID, date, entry)
			if err != nil {
				return err
			}
			saved = append(saved, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := make([]dto.AttendanceResponse, 0, len(saved))
	for _, record := range saved {
		result = append(result, toAttendanceResponse(record))
	}
	return result, nil
}

func (s *attendanceService) upsertEntry(
	ctx context.Context,
	txRepo *repository.Repository,
	teacherID, subjectID string,
	date time.Time,
	entry dto.AttendanceEntry,
) (*model.Attendance, error) {
	existing, err := txRepo.Attendance.GetByKey(ctx, entry.StudentID, subjectID, date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询考勤记录失败", zap.Error(err))
		return nil, err
	}

	if existing != nil {
		existing.Status = entry.Status
		existing.Remarks = entry.Remarks
		if err := txRepo.Attendance.Update(ctx, existing); err != nil {
			s.logger.Error("更新考勤记录失败", zap.Error(err))
			return nil, err
		}
		return existing, nil
	}

	record := &model.Attendance{
		StudentID: entry.StudentID,
		SubjectID: subjectID,
		TeacherID: teacherID,
		Date:      date,
		Status:    entry.Status,
		Remarks:   entry.Remarks,
	}
	err = txRepo.Attendance.Create(ctx, record)
	if err == nil {
		return record, nil
	}
	// 查询与插入之间被并发写入，降级为更新
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		existing, getErr := txRepo.Attendance.GetByKey(ctx, entry.StudentID, subjectID, date)
		if getErr != nil {
			s.logger.Error("查询考勤记录失败", zap.Error(getErr))
			return nil, getErr
		}
		existing.Status = entry.Status
		existing.Remarks = entry.Remarks
		if updateErr := txRepo.Attendance.Update(ctx, existing); updateErr != nil {
			s.logger.Error("更新考勤记录失败", zap.Error(updateErr))
			return nil, updateErr
		}
		return existing, nil
	}
	s.logger.Error("创建考勤记录失败", zap.Error(err))
	return nil, err
}

func (s *attendanceService) List(ctx context.Context, req *dto.AttendanceListRequest) ([]dto.AttendanceResponse, int64, error) {
	filter := repository.AttendanceFilter{
		StudentID: req.StudentID,
		SubjectID: req.SubjectID,
		ClassID:   req.ClassID,
	}
	if req.DateFrom != "" {
		from, err := parseDate(req.DateFrom)
		if err != nil {
			return nil, 0, err
		}
		filter.DateFrom = &from
	}
	if req.DateTo != "" {
		to, err := parseDate(req.DateTo)
		if err != nil {
			return nil, 0, err
		}
		filter.DateTo = &to
	}

	records, total, err := s.repo.Attendance.List(ctx, filter, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询考勤列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.AttendanceResponse, 0, len(records))
	for i := range records {
		result = append(result, toAttendanceResponse(&records[i]))
	}
	return result, total, nil
}

func (s *attendanceService) Summary(ctx context.Context, studentID string) (*dto.AttendanceSummary, error) {
	summary, err := s.repo.Attendance.Summarize(ctx, studentID)
	if err != nil {
		s.logger.Error("统计考勤失败", zap.Error(err))
		return nil, err
	}
	return &dto.AttendanceSummary{
		Total:   summary.Total,
		Present: summary.Present,
		Absent:  summary.Absent,
		Late:    summary.Late,
	}, nil
}

func toAttendanceResponse(a *model.Attendance) dto.AttendanceResponse {
	resp := dto.AttendanceResponse{
		AttendanceID: a.AttendanceID,
		StudentID:    a.StudentID,
		SubjectID:    a.SubjectID,
		TeacherID:    a.TeacherID,
		Date:         formatDate(a.Date),
		Status:       a.Status,
		Remarks:      a.Remarks,
	}
	if a.Student != nil {
		resp.StudentName = a.Student.FullName
	}
	if a.Subject != nil {
		resp.SubjectName = a.Subject.Name
	}
	return resp
}
