package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"ssss/backend/internal/model"
)

// AttendanceFilter 考勤查询条件
type AttendanceFilter struct {
	StudentID string
	SubjectID string
	ClassID   string
	DateFrom  *time.Time
	DateTo    *time.Time
}

// AttendanceSummary 某学生的考勤状态计数
type AttendanceSummary struct {
	Total   int64
	Present int64
	Absent  int64
	Late    int64
}

// AttendanceRepository 考勤数据访问接口
type AttendanceRepository interface {
	Create(ctx context.Context, attendance *model.Attendance) error
	Update(ctx context.Context, attendance *model.Attendance) error
	// GetByKey 按 (学生, 科目, 日期) 取唯一记录
	GetByKey(ctx context.Context, studentID, subjectID string, date time.Time) (*model.Attendance, error)
	List(ctx context.Context, filter AttendanceFilter, offset, limit int) ([]model.Attendance, int64, error)
	ListByClassAndRange(ctx context.Context, classID, subjectID string, from, to time.Time) ([]model.Attendance, error)
	Summarize(ctx context.Context, studentID string) (*AttendanceSummary, error)
	CountByStudent(ctx context.Context, studentID string) (int64, error)
	CountByTeacher(ctx context.Context, teacherID string) (int64, error)
	CountBySubject(ctx context.Context, subjectID string) (int64, error)
}

// attendanceRepo AttendanceRepository 的 GORM 实现
type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo 创建 AttendanceRepository 实例
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Create(ctx context.Context, attendance *model.Attendance) error {
	return r.db.WithContext(ctx).Create(attendance).Error
}

func (r *attendanceRepo) Update(ctx context.Context, attendance *model.Attendance) error {
	return r.db.WithContext(ctx).Save(attendance).Error
}

func (r *attendanceRepo) GetByKey(ctx context.Context, studentID, subjectID string, date time.Time) (*model.Attendance, error) {
	var attendance model.Attendance
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND subject_id = ? AND date = ?", studentID, subjectID, date).
		First(&attendance).Error
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (r *attendanceRepo) List(ctx context.Context, filter AttendanceFilter, offset, limit int) ([]model.Attendance, int64, error) {
	var records []model.Attendance
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Attendance{})
	if filter.StudentID != "" {
		db = db.Where("student_id = ?", filter.StudentID)
	}
	if filter.SubjectID != "" {
		db = db.Where("subject_id = ?", filter.SubjectID)
	}
	if filter.ClassID != "" {
		db = db.Where("student_id IN (?)",
			r.db.Model(&model.Student{}).Select("student_id").Where("class_id = ?", filter.ClassID))
	}
	if filter.DateFrom != nil {
		db = db.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		db = db.Where("date <= ?", *filter.DateTo)
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("Student").
		Preload("Subject").
		Order("date DESC").
		Offset(offset).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (r *attendanceRepo) ListByClassAndRange(ctx context.Context, classID, subjectID string, from, to time.Time) ([]model.Attendance, error) {
	var records []model.Attendance
	err := r.db.WithContext(ctx).
		Preload("Student").
		Where("subject_id = ? AND date >= ? AND date <= ?", subjectID, from, to).
		Where("student_id IN (?)",
			r.db.Model(&model.Student{}).Select("student_id").Where("class_id = ?", classID)).
		Order("date ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepo) Summarize(ctx context.Context, studentID string) (*AttendanceSummary, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Attendance{}).
		Select("status, COUNT(*) AS count").
		Where("student_id = ?", studentID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summary := &AttendanceSummary{}
	for _, row := range rows {
		summary.Total += row.Count
		switch row.Status {
		case model.AttendancePresent:
			summary.Present = row.Count
		case model.AttendanceAbsent:
			summary.Absent = row.Count
		case model.AttendanceLate:
			summary.Late = row.Count
		}
	}
	return summary, nil
}

func (r *attendanceRepo) CountByStudent(ctx context.Context, studentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Attendance{}).
		Where("student_id = ?", studentID).
		Count(&count).Error
	return count, err
}

func (r *attendanceRepo) CountByTeacher(ctx context.Context, teacherID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Attendance{}).
		Where("teacher_id = ?", teacherID).
		Count(&count).Error
	return count, err
}

func (r *attendanceRepo) CountBySubject(ctx context.Context, subjectID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Attendance{}).
		Where("subject_id = ?", subjectID).
		Count(&count).Error
	return count, err
}
