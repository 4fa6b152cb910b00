package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	User         UserRepository
	Class        ClassRepository
	Subject      SubjectRepository
	Teacher      TeacherRepository
	Student      StudentRepository
	Assignment   AssignmentRepository
	Attendance   AttendanceRepository
	Mark         MarkRepository
	Fee          FeeVoucherRepository
	Leave        LeaveRepository
	Announcement AnnouncementRepository
	Lecture      LectureMaterialRepository
	QA           QARepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:           db,
		User:         NewUserRepo(db),
		Class:        NewClassRepo(db),
		Subject:      NewSubjectRepo(db),
		Teacher:      NewTeacherRepo(db),
		Student:      NewStudentRepo(db),
		Assignment:   NewAssignmentRepo(db),
		Attendance:   NewAttendanceRepo(db),
		Mark:         NewMarkRepo(db),
		Fee:          NewFeeVoucherRepo(db),
		Leave:        NewLeaveRepo(db),
		Announcement: NewAnnouncementRepo(db),
		Lecture:      NewLectureMaterialRepo(db),
		QA:           NewQARepo(db),
	}
}

// BeginTx 开启事务，返回事务连接
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tx, nil
}

// WithTx 返回一个绑定到事务连接的 Repository 副本
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}

// Transaction 在事务中执行 fn，fn 返回错误则整体回滚。
// 没有真实连接的聚合（测试场景）直接在当前聚合上执行。
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
