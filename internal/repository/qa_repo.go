package repository

import (
	"context"

	"gorm.io/gorm"

	"ssss/backend/internal/model"
)

// QuestionFilter 问题查询条件
type QuestionFilter struct {
	StudentID  string
	SubjectID  string
	Unanswered bool
}

// QARepository 问答数据访问接口
type QARepository interface {
	CreateQuestion(ctx context.Context, question *model.QAQuestion) error
	GetQuestionByID(ctx context.Context, id string) (*model.QAQuestion, error)
	ListQuestions(ctx context.Context, filter QuestionFilter, offset, limit int) ([]model.QAQuestion, int64, error)
	CreateAnswer(ctx context.Context, answer *model.QAAnswer) error
	CountUnanswered(ctx context.Context) (int64, error)
	CountQuestionsByStudent(ctx context.Context, studentID string) (int64, error)
	CountQuestionsBySubject(ctx context.Context, subjectID string) (int64, error)
	CountAnswersByTeacher(ctx context.Context, teacherID string) (int64, error)
}

// qaRepo QARepository 的 GORM 实现
type qaRepo struct {
	db *gorm.DB
}

// NewQARepo 创建 QARepository 实例
func NewQARepo(db *gorm.DB) QARepository {
	return &qaRepo{db: db}
}

func (r *qaRepo) CreateQuestion(ctx context.Context, question *model.QAQuestion) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *qaRepo) GetQuestionByID(ctx context.Context, id string) (*model.QAQuestion, error) {
	var question model.QAQuestion
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Subject").
		Preload("Answers").
		Preload("Answers.Teacher").
		Where("question_id = ?", id).
		First(&question).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *qaRepo) ListQuestions(ctx context.Context, filter QuestionFilter, offset, limit int) ([]model.QAQuestion, int64, error) {
	var questions []model.QAQuestion
	var total int64

	db := r.db.WithContext(ctx).Model(&model.QAQuestion{})
	if filter.StudentID != "" {
		db = db.Where("student_id = ?", filter.StudentID)
	}
	if filter.SubjectID != "" {
		db = db.Where("subject_id = ?", filter.SubjectID)
	}
	if filter.Unanswered {
		db = db.Where("question_id NOT IN (?)",
			r.db.Model(&model.QAAnswer{}).Select("question_id"))
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Preload("Student").
		Preload("Subject").
		Preload("Answers").
		Preload("Answers.Teacher").
		Order("asked_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, 0, err
	}
	return questions, total, nil
}

func (r *qaRepo) CreateAnswer(ctx context.Context, answer *model.QAAnswer) error {
	return r.db.WithContext(ctx).Create(answer).Error
}

func (r *qaRepo) CountUnanswered(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.QAQuestion{}).
		Where("question_id NOT IN (?)",
			r.db.Model(&model.QAAnswer{}).Select("question_id")).
		Count(&count).Error
	return count, err
}

func (r *qaRepo) CountQuestionsByStudent(ctx context.Context, studentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.QAQuestion{}).
		Where("student_id = ?", studentID).
		Count(&count).Error
	return count, err
}

func (r *qaRepo) CountQuestionsBySubject(ctx context.Context, subjectID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.QAQuestion{}).
		Where("subject_id = ?", subjectID).
		Count(&count).Error
	return count, err
}

func (r *qaRepo) CountAnswersByTeacher(ctx context.Context, teacherID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.QAAnswer{}).
		Where("teacher_id = ?", teacherID).
		Count(&count).Error
	return count, err
}
