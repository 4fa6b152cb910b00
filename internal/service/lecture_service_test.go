package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"ssss/backend/internal/dto"
	"ssss/backend/pkg/storage"
)

// ═══════════════════════════════════════════════════════════
// LectureService 测试
// ═══════════════════════════════════════════════════════════

func setupTestLectureService(t *testing.T) (LectureService, *testMocks) {
	t.Helper()
	repo, mocks := newTestRepo()
	store, err := storage.NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("创建本地存储失败: %v", err)
	}
	svc := NewLectureService(repo, store, zap.NewNop())
	return svc, mocks
}

func TestLectureService_Upload_WithFile(t *testing.T) {
	svc, mocks := setupTestLectureService(t)
	ctx := context.Background()
	subject := seedSubject(t, mocks, "Mathematics")

	resp, err := svc.Upload(ctx, "teacher-1", &dto.UploadMaterialRequest{
		SubjectID: subject.SubjectID,
		Title:     "第一章讲义",
	}, strings.NewReader("pdf content"), "chapter1.pdf")
	if err != nil {
		t.Fatalf("上传课件失败: %v", err)
	}

	if resp.Title != "第一章讲义" || resp.TeacherID != "teacher-1" {
		t.Errorf("课件元数据不匹配: %+v", resp)
	}
	if resp.FilePath == nil {
		t.Fatal("期望保存文件路径")
	}
	if !strings.HasPrefix(*resp.FilePath, "uploads/") || !strings.HasSuffix(*resp.FilePath, "_chapter1.pdf") {
		t.Errorf("文件路径格式不符: %s", *resp.FilePath)
	}
}

func TestLectureService_Upload_MetadataOnly(t *testing.T) {
	svc, mocks := setupTestLectureService(t)
	ctx := context.Background()
	subject := seedSubject(t, mocks, "Physics")

	resp, err := svc.Upload(ctx, "teacher-1", &dto.UploadMaterialRequest{
		SubjectID: subject.SubjectID,
		Title:     "复习提纲",
	}, nil, "")
	if err != nil {
		t.Fatalf("登记课件失败: %v", err)
	}
	if resp.FilePath != nil {
		t.Errorf("无附件时不应有文件路径, got %s", *resp.FilePath)
	}
}

func TestLectureService_Upload_SubjectNotFound(t *testing.T) {
	svc, _ := setupTestLectureService(t)

	_, err := svc.Upload(context.Background(), "teacher-1", &dto.UploadMaterialRequest{
		SubjectID: "missing",
		Title:     "讲义",
	}, nil, "")
	if !errors.Is(err, ErrSubjectNotFound) {
		t.Errorf("期望 ErrSubjectNotFound, got %v", err)
	}
}

func TestLectureService_Delete_NotOwner(t *testing.T) {
	svc, mocks := setupTestLectureService(t)
	ctx := context.Background()
	subject := seedSubject(t, mocks, "Chemistry")

	resp, err := svc.Upload(ctx, "teacher-1", &dto.UploadMaterialRequest{
		SubjectID: subject.SubjectID,
		Title:     "实验手册",
	}, nil, "")
	if err != nil {
		t.Fatalf("登记课件失败: %v", err)
	}

	if err := svc.Delete(ctx, "teacher-2", resp.MaterialID); !errors.Is(err, ErrNotMaterialOwner) {
		t.Errorf("期望 ErrNotMaterialOwner, got %v", err)
	}

	// 本人删除成功
	if err := svc.Delete(ctx, "teacher-1", resp.MaterialID); err != nil {
		t.Fatalf("删除课件失败: %v", err)
	}
	if _, err := svc.Get(ctx, resp.MaterialID); !errors.Is(err, ErrMaterialNotFound) {
		t.Errorf("期望 ErrMaterialNotFound, got %v", err)
	}
}

func TestLectureService_List_BySubject(t *testing.T) {
	svc, mocks := setupTestLectureService(t)
	ctx := context.Background()
	math := seedSubject(t, mocks, "Mathematics")
	physics := seedSubject(t, mocks, "Physics")

	for _, subjectID := range []string{math.SubjectID, math.SubjectID, physics.SubjectID} {
		if _, err := svc.Upload(ctx, "teacher-1", &dto.UploadMaterialRequest{
			SubjectID: subjectID,
			Title:     "讲义",
		}, nil, ""); err != nil {
			t.Fatalf("登记课件失败: %v", err)
		}
	}

	_, total, err := svc.List(ctx, &dto.MaterialListRequest{SubjectID: math.SubjectID})
	if err != nil {
		t.Fatalf("查询课件列表失败: %v", err)
	}
	if total != 2 {
		t.Errorf("期望 2 条课件, got %d", total)
	}
}
