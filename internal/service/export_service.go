package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ssss/backend/internal/model"
	"ssss/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoRecords    = errors.New("所选范围内无考勤记录")
	ErrExportNoLeaves     = errors.New("该学生没有已批准的请假")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 考勤登记表导出为 Excel (.xlsx)：行为学生、列为日期、单元格为状态缩写
//   - 已批准请假导出为 iCalendar (.ics)，可订阅到日历客户端
//   - 均以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
type ExportService interface {
	// AttendanceRegister 导出某班某科目在日期区间内的考勤登记表
	AttendanceRegister(ctx context.Context, classID, subjectID string, from, to time.Time) (*bytes.Buffer, string, error)
	// LeaveCalendar 导出某学生全部已批准请假为 ICS
	LeaveCalendar(ctx context.Context, studentID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// 状态缩写：单元格里一个字母足够
var statusAbbrev = map[string]string{
	model.AttendancePresent: "P",
	model.AttendanceAbsent:  "A",
	model.AttendanceLate:    "L",
}

// ═══════════════════════════════════════════════════════════
// AttendanceRegister — 考勤登记表导出
// ═══════════════════════════════════════════════════════════

func (s *exportService) AttendanceRegister(ctx context.Context, classID, subjectID string, from, to time.Time) (*bytes.Buffer, string, error) {
	class, err := s.repo.Class.GetByID(ctx, classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrClassNotFound
		}
		s.logger.Error("查询班级失败", zap.Error(err))
		return nil, "", err
	}
	subject, err := s.repo.Subject.GetByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrSubjectNotFound
		}
		s.logger.Error("查询科目失败", zap.Error(err))
		return nil, "", err
	}

	records, err := s.repo.Attendance.ListByClassAndRange(ctx, classID, subjectID, from, to)
	if err != nil {
		s.logger.Error("查询考勤记录失败", zap.Error(err))
		return nil, "", err
	}
	if len(records) == 0 {
		return nil, "", ErrExportNoRecords
	}

	students, err := s.repo.Student.ListByClass(ctx, classID)
	if err != nil {
		s.logger.Error("查询班级学生失败", zap.Error(err))
		return nil, "", err
	}

	// 索引: "studentID:date" → 状态缩写；收集出现过的日期
	statusIndex := make(map[string]string, len(records))
	dateSeen := make(map[string]bool)
	for i := range records {
		day := formatDate(records[i].Date)
		statusIndex[records[i].StudentID+":"+day] = statusAbbrev[records[i].Status]
		dateSeen[day] = true
	}
	dates := make([]string, 0, len(dateSeen))
	for day := range dateSeen {
		dates = append(dates, day)
	}
	sort.Strings(dates)

	f := excelize.NewFile()
	defer f.Close()

	sheet := "考勤登记表"
	f.SetSheetName(f.GetSheetName(0), sheet)

	// 表头：学生 | 学号 | 各日期
	_ = f.SetCellValue(sheet, "A1", "学生")
	_ = f.SetCellValue(sheet, "B1", "学号")
	for col, day := range dates {
		cell, err := excelize.CoordinatesToCellName(col+3, 1)
		if err != nil {
			return nil, "", ErrExportGenerateFail
		}
		_ = f.SetCellValue(sheet, cell, day)
	}

	for rowIdx := range students {
		row := rowIdx + 2
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), students[rowIdx].FullName)
		if students[rowIdx].RollNumber != nil {
			_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), *students[rowIdx].RollNumber)
		}
		for col, day := range dates {
			cell, err := excelize.CoordinatesToCellName(col+3, row)
			if err != nil {
				return nil, "", ErrExportGenerateFail
			}
			if mark, ok := statusIndex[students[rowIdx].StudentID+":"+day]; ok {
				_ = f.SetCellValue(sheet, cell, mark)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("写出 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("attendance_%s_%s_%s_%s.xlsx",
		class.Name, subject.Name, formatDate(from), formatDate(to))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// LeaveCalendar — 已批准请假导出为 ICS
// ═══════════════════════════════════════════════════════════

func (s *exportService) LeaveCalendar(ctx context.Context, studentID string) (*bytes.Buffer, string, error) {
	student, err := s.repo.Student.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Error(err))
		return nil, "", err
	}

	leaves, err := s.repo.Leave.ListApprovedByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("查询已批准请假失败", zap.Error(err))
		return nil, "", err
	}
	if len(leaves) == 0 {
		return nil, "", ErrExportNoLeaves
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//SSSS//Leave Calendar//ZH")

	for i := range leaves {
		event := cal.AddEvent(fmt.Sprintf("leave-%s@ssss.edu", leaves[i].ApplicationID))
		event.SetCreatedTime(leaves[i].AppliedAt)
		event.SetDtStampTime(leaves[i].AppliedAt)
		event.SetAllDayStartAt(leaves[i].FromDate)
		// DTEND 为独占边界，全天事件需加一天
		event.SetAllDayEndAt(leaves[i].ToDate.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("请假：%s", student.FullName))
		event.SetDescription(leaves[i].Reason)
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("leaves_%s.ics", student.FullName)
	return buf, filename, nil
}
