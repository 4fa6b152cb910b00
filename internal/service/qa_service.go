package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"ssss/backend/internal/dto"
	"ssss/backend/internal/model"
	"ssss/backend/internal/repository"
)

// ── 问答模块业务错误 ──

var ErrQuestionNotFound = errors.New("问题不存在")

// QAService 课业问答业务接口
type QAService interface {
	// Ask 学生提问；匿名提问不记录提问者
	Ask(ctx context.Context, studentID string, req *dto.AskQuestionRequest) (*dto.QuestionResponse, error)
	Answer(ctx context.Context, teacherID, questionID string, req *dto.AnswerQuestionRequest) (*dto.QuestionResponse, error)
	Get(ctx context.Context, id string) (*dto.QuestionResponse, error)
	List(ctx context.Context, req *dto.QuestionListRequest) ([]dto.QuestionResponse, int64, error)
	ListByStudent(ctx context.Context, studentID string, req *dto.QuestionListRequest) ([]dto.QuestionResponse, int64, error)
}

type qaService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewQAService 创建 QAService 实例
func NewQAService(repo *repository.Repository, logger *zap.Logger) QAService {
	return &qaService{repo: repo, logger: logger}
}

func (s *qaService) Ask(ctx context.Context, studentID string, req *dto.AskQuestionRequest) (*dto.QuestionResponse, error) {
	if _, err := s.repo.Subject.GetByID(ctx, req.SubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		s.logger.Error("查询科目失败", zap.Error(err))
		return nil, err
	}

	question := &model.QAQuestion{
		SubjectID:    req.SubjectID,
		QuestionText: req.QuestionText,
	}
	if !req.Anonymous {
		question.StudentID = &studentID
	}

	if err := s.repo.QA.CreateQuestion(ctx, question); err != nil {
		s.logger.Error("创建问题失败", zap.Error(err))
		return nil, err
	}

	return s.Get(ctx, question.QuestionID)
}

func (s *qaService) Answer(ctx context.Context, teacherID, questionID string, req *dto.AnswerQuestionRequest) (*dto.QuestionResponse, error) {
	if _, err := s.repo.QA.GetQuestionByID(ctx, questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		s.logger.Error("查询问题失败", zap.Error(err))
		return nil, err
	}

	answer := &model.QAAnswer{
		QuestionID: questionID,
		TeacherID:  teacherID,
		AnswerText: req.AnswerText,
	}
	if err := s.repo.QA.CreateAnswer(ctx, answer); err != nil {
		s.logger.Error("创建回答失败", zap.Error(err))
		return nil, err
	}

	return s.Get(ctx, questionID)
}

func (s *qaService) Get(ctx context.Context, id string) (*dto.QuestionResponse, error) {
	question, err := s.repo.QA.GetQuestionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		s.logger.Error("查询问题失败", zap.Error(err))
		return nil, err
	}
	resp := toQuestionResponse(question)
	return &resp, nil
}

func (s *qaService) List(ctx context.Context, req *dto.QuestionListRequest) ([]dto.QuestionResponse, int64, error) {
	filter := repository.QuestionFilter{
		SubjectID:  req.SubjectID,
		Unanswered: req.Unanswered,
	}
	return s.list(ctx, filter, req)
}

func (s *qaService) ListByStudent(ctx context.Context, studentID string, req *dto.QuestionListRequest) ([]dto.QuestionResponse, int64, error) {
	filter := repository.QuestionFilter{
		StudentID:  studentID,
		SubjectID:  req.SubjectID,
		Unanswered: req.Unanswered,
	}
	return s.list(ctx, filter, req)
}

func (s *qaService) list(ctx context.Context, filter repository.QuestionFilter, req *dto.QuestionListRequest) ([]dto.QuestionResponse, int64, error) {
	questions, total, err := s.repo.QA.ListQuestions(ctx, filter, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询问题列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		result = append(result, toQuestionResponse(&questions[i]))
	}
	return result, total, nil
}

func toQuestionResponse(q *model.QAQuestion) dto.QuestionResponse {
	resp := dto.QuestionResponse{
		QuestionID:   q.QuestionID,
		StudentID:    q.StudentID,
		SubjectID:    q.SubjectID,
		QuestionText: q.QuestionText,
		AskedAt:      formatTime(q.AskedAt),
		Answers:      make([]dto.AnswerResponse, 0, len(q.Answers)),
	}
	if q.Student != nil {
		resp.StudentName = &q.Student.FullName
	}
	if q.Subject != nil {
		resp.SubjectName = q.Subject.Name
	}
	for i := range q.Answers {
		answer := dto.AnswerResponse{
			AnswerID:   q.Answers[i].AnswerID,
			TeacherID:  q.Answers[i].TeacherID,
			AnswerText: q.Answers[i].AnswerText,
			AnsweredAt: formatTime(q.Answers[i].AnsweredAt),
		}
		if q.Answers[i].Teacher != nil {
			answer.TeacherName = q.Answers[i].Teacher.FullName
		}
		resp.Answers = append(resp.Answers, answer)
	}
	return resp
}
