package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"ssss/backend/internal/dto"
	"ssss/backend/internal/model"
)

func setupTestQAService(t *testing.T) (QAService, *testMocks) {
	t.Helper()
	repo, mocks := newTestRepo()
	svc := NewQAService(repo, zap.NewNop())
	return svc, mocks
}

func seedSubject(t *testing.T, mocks *testMocks, name string) *model.Subject {
	t.Helper()
	subject := &model.Subject{Name: name}
	if err := mocks.subject.Create(context.Background(), subject); err != nil {
		t.Fatalf("创建科目失败: %v", err)
	}
	return subject
}

func TestQAService_Ask_Named(t *testing.T) {
	svc, mocks := setupTestQAService(t)
	subject := seedSubject(t, mocks, "Physics")

	resp, err := svc.Ask(context.Background(), "student-1", &dto.AskQuestionRequest{
		SubjectID:    subject.SubjectID,
		QuestionText: "牛顿第二定律怎么用？",
	})
	if err != nil {
		t.Fatalf("Ask 失败: %v", err)
	}
	if resp.StudentID == nil || *resp.StudentID != "student-1" {
		t.Error("实名提问应记录提问者")
	}
}

func TestQAService_Ask_Anonymous(t *testing.T) {
	svc, mocks := setupTestQAService(t)
	subject := seedSubject(t, mocks, "Physics")

	resp, err := svc.Ask(context.Background(), "student-1", &dto.AskQuestionRequest{
		SubjectID:    subject.SubjectID,
		QuestionText: "没听懂能再讲一遍吗？",
		Anonymous:    true,
	})
	if err != nil {
		t.Fatalf("Ask 失败: %v", err)
	}
	if resp.StudentID != nil {
		t.Error("匿名提问不应记录提问者")
	}
	if resp.StudentName != nil {
		t.Error("匿名提问不应暴露姓名")
	}
}

func TestQAService_Ask_SubjectNotFound(t *testing.T) {
	svc, _ := setupTestQAService(t)

	_, err := svc.Ask(context.Background(), "student-1", &dto.AskQuestionRequest{
		SubjectID:    "missing",
		QuestionText: "?",
	})
	if !errors.Is(err, ErrSubjectNotFound) {
		t.Fatalf("期望 ErrSubjectNotFound, got %v", err)
	}
}

func TestQAService_Answer(t *testing.T) {
	svc, mocks := setupTestQAService(t)
	subject := seedSubject(t, mocks, "Physics")

	question, err := svc.Ask(context.Background(), "student-1", &dto.AskQuestionRequest{
		SubjectID:    subject.SubjectID,
		QuestionText: "问题",
	})
	if err != nil {
		t.Fatalf("Ask 失败: %v", err)
	}

	answered, err := svc.Answer(context.Background(), "teacher-1", question.QuestionID, &dto.AnswerQuestionRequest{
		AnswerText: "解答",
	})
	if err != nil {
		t.Fatalf("Answer 失败: %v", err)
	}
	if len(answered.Answers) != 1 {
		t.Fatalf("期望 1 条回答, got %d", len(answered.Answers))
	}
	if answered.Answers[0].TeacherID != "teacher-1" {
		t.Errorf("回答教师不匹配: %+v", answered.Answers[0])
	}

	// 同一问题可以有多条回答
	if _, err := svc.Answer(context.Background(), "teacher-2", question.QuestionID, &dto.AnswerQuestionRequest{
		AnswerText: "补充解答",
	}); err != nil {
		t.Fatalf("二次 Answer 失败: %v", err)
	}
	got, err := svc.Get(context.Background(), question.QuestionID)
	if err != nil {
		t.Fatalf("Get 失败: %v", err)
	}
	if len(got.Answers) != 2 {
		t.Errorf("期望 2 条回答, got %d", len(got.Answers))
	}
}

func TestQAService_Answer_QuestionNotFound(t *testing.T) {
	svc, _ := setupTestQAService(t)

	_, err := svc.Answer(context.Background(), "teacher-1", "missing", &dto.AnswerQuestionRequest{
		AnswerText: "解答",
	})
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("期望 ErrQuestionNotFound, got %v", err)
	}
}

func TestQAService_List_UnansweredFilter(t *testing.T) {
	svc, mocks := setupTestQAService(t)
	subject := seedSubject(t, mocks, "Physics")

	first, err := svc.Ask(context.Background(), "student-1", &dto.AskQuestionRequest{
		SubjectID: subject.SubjectID, QuestionText: "已回答的问题",
	})
	if err != nil {
		t.Fatalf("Ask 失败: %v", err)
	}
	if _, err := svc.Answer(context.Background(), "teacher-1", first.QuestionID, &dto.AnswerQuestionRequest{
		AnswerText: "解答",
	}); err != nil {
		t.Fatalf("Answer 失败: %v", err)
	}
	if _, err := svc.Ask(context.Background(), "student-2", &dto.AskQuestionRequest{
		SubjectID: subject.SubjectID, QuestionText: "未回答的问题",
	}); err != nil {
		t.Fatalf("Ask 失败: %v", err)
	}

	list, total, err := svc.List(context.Background(), &dto.QuestionListRequest{Unanswered: true})
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if total != 1 || len(list) != 1 {
		t.Fatalf("期望 1 条未回答问题, got %d", total)
	}
	if list[0].QuestionText != "未回答的问题" {
		t.Errorf("过滤结果不匹配: %+v", list[0])
	}
}
