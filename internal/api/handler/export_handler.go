package handler

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"ssss/backend/internal/service"
	"ssss/backend/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler 导出 HTTP 处理器
type ExportHandler struct {
	exportSvc  service.ExportService
	studentSvc service.StudentService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService, studentSvc service.StudentService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc, studentSvc: studentSvc}
}

// AttendanceRegister 导出考勤登记表
// GET /api/v1/export/attendance?class_id=x&subject_id=y&from=2006-01-02&to=2006-01-02
func (h *ExportHandler) AttendanceRegister(c *gin.Context) {
	classID := c.Query("class_id")
	subjectID := c.Query("subject_id")
	if classID == "" || subjectID == "" {
		response.BadRequest(c, 10001, "class_id 和 subject_id 不能为空")
		return
	}

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		response.BadRequest(c, 10001, "from 日期格式无效")
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		response.BadRequest(c, 10001, "to 日期格式无效")
		return
	}
	if to.Before(from) {
		response.BadRequest(c, 10001, "to 不能早于 from")
		return
	}

	buf, filename, err := h.exportSvc.AttendanceRegister(c.Request.Context(), classID, subjectID, from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	writeDownload(c, filename, contentTypeXLSX, buf.Bytes())
}

// LeaveCalendar 导出某学生已批准请假的 ICS 日历
// GET /api/v1/export/leaves/:student_id
func (h *ExportHandler) LeaveCalendar(c *gin.Context) {
	buf, filename, err := h.exportSvc.LeaveCalendar(c.Request.Context(), c.Param("student_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	writeDownload(c, filename, contentTypeICS, buf.Bytes())
}

// MyLeaveCalendar 当前学生本人的请假日历
// GET /api/v1/export/leaves/mine
func (h *ExportHandler) MyLeaveCalendar(c *gin.Context) {
	studentID, ok := resolveStudentID(c, h.studentSvc)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.LeaveCalendar(c.Request.Context(), studentID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	writeDownload(c, filename, contentTypeICS, buf.Bytes())
}

func writeDownload(c *gin.Context, filename, contentType string, data []byte) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Header("Content-Type", contentType)
	c.Data(http.StatusOK, contentType, data)
}

func (h *ExportHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportNoRecords):
		response.NotFound(c, 19001, "所选范围内无考勤记录")
	case errors.Is(err, service.ErrExportNoLeaves):
		response.NotFound(c, 19002, "该学生没有已批准的请假")
	case errors.Is(err, service.ErrClassNotFound):
		response.NotFound(c, 11003, "班级不存在")
	case errors.Is(err, service.ErrSubjectNotFound):
		response.NotFound(c, 11005, "科目不存在")
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 11001, "学生不存在")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
