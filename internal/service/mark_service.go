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

// ── 成绩模块业务错误 ──

var ErrInvalidScore = errors.New("得分不能为负或超过总分")

// MarkService 成绩业务接口
//
// 成绩为只追加流水：同一学生同一科目同一考试类型可多次录入，
// 历史记录不被覆盖，查询按日期倒序呈现
type MarkService interface {
	Record(ctx context.Context, teacherID string, req *dto.RecordMarksRequest) ([]dto.MarkResponse, error)
	List(ctx context.Context, req *dto.MarkListRequest) ([]dto.MarkResponse, int64, error)
}

type markService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMarkService 创建 MarkService 实例
func NewMarkService(repo *repository.Repository, logger *zap.Logger) MarkService {
	return &markService{repo: repo, logger: logger}
}

func (s *markService) Record(ctx context.Context, teacherID string, req *dto.RecordMarksRequest) ([]dto.MarkResponse, error) {
	for _, entry := range req.Entries {
		if entry.ObtainedMarks < 0 || entry.ObtainedMarks > req.TotalMarks {
			return nil, ErrInvalidScore
		}
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	// 仅允许录入自己任教科目的成绩
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

	marks := make([]model.Mark, 0, len(req.Entries))
	for _, entry := range req.Entries {
		marks = append(marks, model.Mark{
			StudentID:     entry.StudentID,
			TeacherID:     teacherID,
			SubjectID:     req.SubjectID,
			ExamType:      req.ExamType,
			ObtainedMarks: entry.ObtainedMarks,
			TotalMarks:    req.TotalMarks,
			Date:          date,
			Remarks:       entry.Remarks,
		})
	}

	if err := s.repo.Mark.BatchCreate(ctx, marks); err != nil {
		s.logger.Error("批量录入成绩失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.MarkResponse, 0, len(marks))
	for i := range marks {
		result = append(result, toMarkResponse(&marks[i]))
	}
	return result, nil
}

func (s *markService) List(ctx context.Context, req *dto.MarkListRequest) ([]dto.MarkResponse, int64, error) {
	filter := repository.MarkFilter{
		StudentID: req.StudentID,
		SubjectID: req.SubjectID,
		ExamType:  req.ExamType,
	}
	marks, total, err := s.repo.Mark.List(ctx, filter, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询成绩列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.MarkResponse, 0, len(marks))
	for i := range marks {
		result = append(result, toMarkResponse(&marks[i]))
	}
	return result, total, nil
}

func toMarkResponse(m *model.Mark) dto.MarkResponse {
	resp := dto.MarkResponse{
		MarkID:        m.MarkID,
		StudentID:     m.StudentID,
		SubjectID:     m.SubjectID,
		ExamType:      m.ExamType,
		ObtainedMarks: m.ObtainedMarks,
		TotalMarks:    m.TotalMarks,
		Date:          formatDate(m.Date),
		Remarks:       m.Remarks,
	}
	if m.Student != nil {
		resp.StudentName = m.Student.FullName
	}
	if m.Subject != nil {
		resp.SubjectName = m.Subject.Name
	}
	return resp
}
