package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"ssss/backend/internal/dto"
	"ssss/backend/internal/model"
)

// ═══════════════════════════════════════════════════════════
// TeacherService 测试
// ═══════════════════════════════════════════════════════════

func setupTestTeacherService(t *testing.T) (TeacherService, *testMocks) {
	t.Helper()
	repo, mocks := newTestRepo()
	svc := NewTeacherService(repo, zap.NewNop())
	return svc, mocks
}

func TestTeacherService_Delete_RemovesUserToo(t *testing.T) {
	svc, mocks := setupTestTeacherService(t)

	created, err := svc.Create(context.Background(), &dto.CreateTeacherRequest{
		FullName: "待删除教师", Password: "Teacher@123",
	})
	if err != nil {
		t.Fatalf("Create 失败: %v", err)
	}

	if err := svc.Delete(context.Background(), created.TeacherID); err != nil {
		t.Fatalf("Delete 失败: %v", err)
	}
	if _, err := mocks.teacher.GetByID(context.Background(), created.TeacherID); err == nil {
		t.Error("期望教师档案已删除")
	}
	if _, err := mocks.user.GetByID(context.Background(), created.UserID); err == nil {
		t.Error("期望登录账号已删除")
	}
}

func TestTeacherService_Delete_WithDependents(t *testing.T) {
	tests := []struct {
		name string
		seed func(t *testing.T, mocks *testMocks, teacherID string)
	}{
		{"授课分配", func(t *testing.T, mocks *testMocks, teacherID string) {
			if err := mocks.assignment.Create(context.Background(), &model.SubjectAssignment{
				TeacherID: teacherID, SubjectID: "subject-1", ClassID: "class-1",
			}); err != nil {
				t.Fatalf("创建授课分配失败: %v", err)
			}
		}},
		{"考勤记录", func(t *testing.T, mocks *testMocks, teacherID string) {
			if err := mocks.attendance.Create(context.Background(), &model.Attendance{
				StudentID: "student-1",
				TeacherID: teacherID,
				SubjectID: "subject-1",
				Date:      time.Now(),
				Status:    model.AttendancePresent,
			}); err != nil {
				t.Fatalf("创建考勤失败: %v", err)
			}
		}},
		{"成绩记录", func(t *testing.T, mocks *testMocks, teacherID string) {
			if err := mocks.mark.BatchCreate(context.Background(), []model.Mark{{
				StudentID:  "student-1",
				TeacherID:  teacherID,
				SubjectID:  "subject-1",
				ExamType:   "Midterm",
				TotalMarks: 100,
				Date:       time.Now(),
			}}); err != nil {
				t.Fatalf("创建成绩失败: %v", err)
			}
		}},
		{"发布的公告", func(t *testing.T, mocks *testMocks, teacherID string) {
			if err := mocks.announcement.Create(context.Background(), &model.Announcement{
				TeacherID: teacherID,
				Title:     "期末安排",
				Content:   "下周一开始复习",
				Audience:  model.AudienceAll,
			}); err != nil {
				t.Fatalf("创建公告失败: %v", err)
			}
		}},
		{"上传的课件", func(t *testing.T, mocks *testMocks, teacherID string) {
			if err := mocks.lecture.Create(context.Background(), &model.LectureMaterial{
				TeacherID: teacherID,
				SubjectID: "subject-1",
				Title:     "第一章讲义",
			}); err != nil {
				t.Fatalf("创建课件失败: %v", err)
			}
		}},
		{"答疑记录", func(t *testing.T, mocks *testMocks, teacherID string) {
			question := &model.QAQuestion{SubjectID: "subject-1", QuestionText: "这道题怎么做"}
			if err := mocks.qa.CreateQuestion(context.Background(), question); err != nil {
				t.Fatalf("创建提问失败: %v", err)
			}
			if err := mocks.qa.CreateAnswer(context.Background(), &model.QAAnswer{
				QuestionID: question.QuestionID,
				TeacherID:  teacherID,
				AnswerText: "先看定义",
			}); err != nil {
				t.Fatalf("创建回答失败: %v", err)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := setupTestTeacherService(t)
			created, err := svc.Create(context.Background(), &dto.CreateTeacherRequest{
				FullName: "有记录的教师", Password: "Teacher@123",
			})
			if err != nil {
				t.Fatalf("Create 失败: %v", err)
			}

			tt.seed(t, mocks, created.TeacherID)

			if err := svc.Delete(context.Background(), created.TeacherID); !errors.Is(err, ErrHasDependents) {
				t.Fatalf("期望 ErrHasDependents, got %v", err)
			}
			// 档案与账号均未被删除
			if _, err := mocks.teacher.GetByID(context.Background(), created.TeacherID); err != nil {
				t.Error("教师档案不应被删除")
			}
			if _, err := mocks.user.GetByID(context.Background(), created.UserID); err != nil {
				t.Error("登录账号不应被删除")
			}
		})
	}
}
