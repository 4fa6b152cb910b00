package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ssss/backend/internal/dto"
	"ssss/backend/internal/service"
	"ssss/backend/pkg/response"
)

// MarkHandler 成绩 HTTP 处理器
type MarkHandler struct {
	markSvc    service.MarkService
	teacherSvc service.TeacherService
	studentSvc service.StudentService
}

// NewMarkHandler 创建 MarkHandler
func NewMarkHandler(
	markSvc service.MarkService,
	teacherSvc service.TeacherService,
	studentSvc service.StudentService,
) *MarkHandler {
	return &MarkHandler{markSvc: markSvc, teacherSvc: teacherSvc, studentSvc: studentSvc}
}

// Record 批量录入某科目某次考试成绩（当前教师）。
// 追加写入，不去重：重复提交同一批次会产生重复行，调用方不应盲目重试。
// POST /api/v1/marks
func (h *MarkHandler) Record(c *gin.Context) {
	teacherID, ok := resolveTeacherID(c, h.teacherSvc)
	if !ok {
		return
	}

	var req dto.RecordMarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	marks, err := h.markSvc.Record(c.Request.Context(), teacherID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, marks)
}

// List 成绩查询
// GET /api/v1/marks
func (h *MarkHandler) List(c *gin.Context) {
	var req dto.MarkListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	marks, total, err := h.markSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OKPage(c, marks, total, req.GetPage(), req.GetPageSize())
}

// MyList 当前学生本人的成绩
// GET /api/v1/marks/mine
func (h *MarkHandler) MyList(c *gin.Context) {
	studentID, ok := resolveStudentID(c, h.studentSvc)
	if !ok {
		return
	}

	var req dto.MarkListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}
	req.StudentID = studentID

	marks, total, err := h.markSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OKPage(c, marks, total, req.GetPage(), req.GetPageSize())
}

func (h *MarkHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidScore):
		response.BadRequest(c, 14001, "成绩超出有效范围")
	case errors.Is(err, service.ErrNotAssignedSubject):
		response.Forbidden(c, 14002, "未被分配该科目，不能录入")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 10001, "日期格式无效")
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 11001, "学生不存在")
	default:
		response.InternalError(c)
	}
}
