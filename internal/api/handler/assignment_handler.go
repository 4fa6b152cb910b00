package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ssss/backend/internal/dto"
	"ssss/backend/internal/service"
	"ssss/backend/pkg/response"
)

// AssignmentHandler 授课分配 HTTP 处理器
type AssignmentHandler struct {
	assignmentSvc service.AssignmentService
	teacherSvc    service.TeacherService
}

// NewAssignmentHandler 创建 AssignmentHandler
func NewAssignmentHandler(assignmentSvc service.AssignmentService, teacherSvc service.TeacherService) *AssignmentHandler {
	return &AssignmentHandler{assignmentSvc: assignmentSvc, teacherSvc: teacherSvc}
}

// Create 建立 教师-科目-班级 分配
// POST /api/v1/assignments
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	assignment, err := h.assignmentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, assignment)
}

// Delete 撤销分配
// DELETE /api/v1/assignments/:id
func (h *AssignmentHandler) Delete(c *gin.Context) {
	if err := h.assignmentSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

// List 分配列表（按教师/科目/班级过滤）
// GET /api/v1/assignments
func (h *AssignmentHandler) List(c *gin.Context) {
	var req dto.AssignmentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	assignments, total, err := h.assignmentSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, assignments, total, req.GetPage(), req.GetPageSize())
}

// ListMine 当前教师的授课分配
// GET /api/v1/assignments/mine
func (h *AssignmentHandler) ListMine(c *gin.Context) {
	teacherID, ok := resolveTeacherID(c, h.teacherSvc)
	if !ok {
		return
	}

	assignments, err := h.assignmentSvc.ListByTeacher(c.Request.Context(), teacherID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, assignments)
}

func (h *AssignmentHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAssignmentNotFound):
		response.NotFound(c, 12001, "授课分配不存在")
	case errors.Is(err, service.ErrAssignmentExists):
		response.Conflict(c, 12002, "该授课分配已存在")
	case errors.Is(err, service.ErrTeacherNotFound):
		response.NotFound(c, 11004, "教师不存在")
	case errors.Is(err, service.ErrSubjectNotFound):
		response.NotFound(c, 11005, "科目不存在")
	case errors.Is(err, service.ErrClassNotFound):
		response.NotFound(c, 11003, "班级不存在")
	default:
		response.InternalError(c)
	}
}
