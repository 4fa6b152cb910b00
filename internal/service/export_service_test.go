package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"ssss/backend/internal/model"
)

func setupTestExportService(t *testing.T) (ExportService, *testMocks) {
	t.Helper()
	repo, mocks := newTestRepo()
	svc := NewExportService(repo, zap.NewNop())
	return svc, mocks
}

// seedClassStudent 创建班级内学生并登记其班级归属
func seedClassStudent(t *testing.T, mocks *testMocks, fullName, rollNumber, classID string) *model.Student {
	t.Helper()
	student := &model.Student{
		UserID:     fullName + "-user",
		FullName:   fullName,
		RollNumber: &rollNumber,
		ClassID:    &classID,
	}
	if err := mocks.student.Create(context.Background(), student); err != nil {
		t.Fatalf("创建学生失败: %v", err)
	}
	mocks.attendance.classOf[student.StudentID] = classID
	return student
}

func seedAttendanceRecord(t *testing.T, mocks *testMocks, studentID, subjectID string, date time.Time, status string) {
	t.Helper()
	if err := mocks.attendance.Create(context.Background(), &model.Attendance{
		StudentID: studentID,
		SubjectID: subjectID,
		TeacherID: "teacher-1",
		Date:      date,
		Status:    status,
	}); err != nil {
		t.Fatalf("创建考勤记录失败: %v", err)
	}
}

func TestExportService_AttendanceRegister(t *testing.T) {
	svc, mocks := setupTestExportService(t)
	class := seedClass(t, mocks, "9-A")
	subject := seedSubject(t, mocks, "Mathematics")
	zhang := seedClassStudent(t, mocks, "张三", "S-001", class.ClassID)
	li := seedClassStudent(t, mocks, "李四", "S-002", class.ClassID)

	day1 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	seedAttendanceRecord(t, mocks, zhang.StudentID, subject.SubjectID, day1, model.AttendancePresent)
	seedAttendanceRecord(t, mocks, zhang.StudentID, subject.SubjectID, day2, model.AttendanceLate)
	seedAttendanceRecord(t, mocks, li.StudentID, subject.SubjectID, day1, model.AttendanceAbsent)

	buf, filename, err := svc.AttendanceRegister(context.Background(),
		class.ClassID, subject.SubjectID, day1, day2)
	if err != nil {
		t.Fatalf("AttendanceRegister 失败: %v", err)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("文件名应为 xlsx: %s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("打开导出的 Excel 失败: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("考勤登记表")
	if err != nil {
		t.Fatalf("读取工作表失败: %v", err)
	}
	// 表头 + 两名学生
	if len(rows) != 3 {
		t.Fatalf("期望 3 行, got %d", len(rows))
	}
	if rows[0][2] != "2026-03-02" || rows[0][3] != "2026-03-03" {
		t.Errorf("日期表头不匹配: %v", rows[0])
	}
	// 按姓名定位行，不依赖排序规则
	findRow := func(name string) []string {
		for _, row := range rows[1:] {
			if len(row) > 0 && row[0] == name {
				return row
			}
		}
		t.Fatalf("未找到 %s 的行: %v", name, rows)
		return nil
	}
	liRow := findRow("李四")
	if liRow[2] != "A" {
		t.Errorf("李四的行不匹配: %v", liRow)
	}
	zhangRow := findRow("张三")
	if zhangRow[2] != "P" || zhangRow[3] != "L" {
		t.Errorf("张三的行不匹配: %v", zhangRow)
	}
}

func TestExportService_AttendanceRegister_NoRecords(t *testing.T) {
	svc, mocks := setupTestExportService(t)
	class := seedClass(t, mocks, "9-A")
	subject := seedSubject(t, mocks, "Mathematics")

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, _, err := svc.AttendanceRegister(context.Background(),
		class.ClassID, subject.SubjectID, from, from.AddDate(0, 0, 7))
	if !errors.Is(err, ErrExportNoRecords) {
		t.Fatalf("期望 ErrExportNoRecords, got %v", err)
	}
}

func TestExportService_AttendanceRegister_ClassNotFound(t *testing.T) {
	svc, mocks := setupTestExportService(t)
	subject := seedSubject(t, mocks, "Mathematics")

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, _, err := svc.AttendanceRegister(context.Background(),
		"missing", subject.SubjectID, from, from)
	if !errors.Is(err, ErrClassNotFound) {
		t.Fatalf("期望 ErrClassNotFound, got %v", err)
	}
}

func TestExportService_LeaveCalendar(t *testing.T) {
	svc, mocks := setupTestExportService(t)
	student := seedStudent(t, mocks, "张三")

	if err := mocks.leave.Create(context.Background(), &model.LeaveApplication{
		StudentID: student.StudentID,
		Reason:    "家中有事",
		FromDate:  time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC),
		ToDate:    time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC),
		Status:    model.LeaveApproved,
		AppliedAt: time.Now(),
	}); err != nil {
		t.Fatalf("创建请假失败: %v", err)
	}
	// 待审批的请假不应出现在日历中
	if err := mocks.leave.Create(context.Background(), &model.LeaveApplication{
		StudentID: student.StudentID,
		Reason:    "发烧请假",
		FromDate:  time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		ToDate:    time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		Status:    model.LeavePending,
		AppliedAt: time.Now(),
	}); err != nil {
		t.Fatalf("创建请假失败: %v", err)
	}

	buf, filename, err := svc.LeaveCalendar(context.Background(), student.StudentID)
	if err != nil {
		t.Fatalf("LeaveCalendar 失败: %v", err)
	}
	if !strings.HasSuffix(filename, ".ics") {
		t.Errorf("文件名应为 ics: %s", filename)
	}

	serialized := buf.String()
	if !strings.Contains(serialized, "BEGIN:VCALENDAR") {
		t.Error("输出缺少 VCALENDAR 块")
	}
	if got := strings.Count(serialized, "BEGIN:VEVENT"); got != 1 {
		t.Errorf("期望 1 个事件, got %d", got)
	}
	if !strings.Contains(serialized, "请假：张三") {
		t.Error("事件摘要缺少学生姓名")
	}
	// DTEND 独占边界：4 月 8 日结束的全天请假应以 4 月 9 日为界
	if !strings.Contains(serialized, "DTEND;VALUE=DATE:20260409") {
		t.Error("DTEND 应为结束日期的次日")
	}
}

func TestExportService_LeaveCalendar_NoApprovedLeaves(t *testing.T) {
	svc, mocks := setupTestExportService(t)
	student := seedStudent(t, mocks, "张三")

	_, _, err := svc.LeaveCalendar(context.Background(), student.StudentID)
	if !errors.Is(err, ErrExportNoLeaves) {
		t.Fatalf("期望 ErrExportNoLeaves, got %v", err)
	}
}
