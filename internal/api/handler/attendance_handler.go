package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ssss/backend/internal/dto"
	"ssss/backend/internal/service"
	"ssss/backend/pkg/response"
)

// AttendanceHandler 考勤 HTTP 处理器
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
	teacherSvc    service.TeacherService
	studentSvc    service.StudentService
}

// NewAttendanceHandler 创建 AttendanceHandler
func NewAttendanceHandler(
	attendanceSvc service.AttendanceService,
	teacherSvc service.TeacherService,
	studentSvc service.StudentService,
) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceSvc: attendanceSvc,
		teacherSvc:    teacherSvc,
		studentSvc:    studentSvc,
	}
}

// Record 批量录入某科目某日考勤（当前教师）
// POST /api/v1/attendance
func (h *AttendanceHandler) Record(c *gin.Context) {
	teacherID, ok := resolveTeacherID(c, h.teacherSvc)
	if !ok {
		return
	}

	var req dto.RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	records, err := h.attendanceSvc.Record(c.Request.Context(), teacherID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, records)
}

// List 考勤记录查询
// GET /api/v1/attendance
func (h *AttendanceHandler) List(c *gin.Context) {
	var req dto.AttendanceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	records, total, err := h.attendanceSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OKPage(c, records, total, req.GetPage(), req.GetPageSize())
}

// MyList 当前学生本人的考勤记录
// GET /api/v1/attendance/mine
func (h *AttendanceHandler) MyList(c *gin.Context) {
	studentID, ok := resolveStudentID(c, h.studentSvc)
	if !ok {
		return
	}

	var req dto.AttendanceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}
	req.StudentID = studentID

	records, total, err := h.attendanceSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OKPage(c, records, total, req.GetPage(), req.GetPageSize())
}

// MySummary 当前学生本人的考勤汇总
// GET /api/v1/attendance/summary
func (h *AttendanceHandler) MySummary(c *gin.Context) {
	studentID, ok := resolveStudentID(c, h.studentSvc)
	if !ok {
		return
	}

	summary, err := h.attendanceSvc.Summary(c.Request.Context(), studentID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, summary)
}

func (h *AttendanceHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidAttendanceStatus):
		response.BadRequest(c, 13001, "考勤状态无效")
	case errors.Is(err, service.ErrNotAssignedSubject):
		response.Forbidden(c, 13002, "未被分配该科目，不能录入")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 13003, "日期格式无效")
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 11001, "学生不存在")
	default:
		response.InternalError(c)
	}
}
