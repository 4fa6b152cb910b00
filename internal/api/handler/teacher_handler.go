package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ssss/backend/internal/dto"
	"ssss/backend/internal/service"
	"ssss/backend/pkg/response"
)

// TeacherHandler 教师档案 HTTP 处理器
type TeacherHandler struct {
	teacherSvc service.TeacherService
}

// NewTeacherHandler 创建 TeacherHandler
func NewTeacherHandler(teacherSvc service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teacherSvc: teacherSvc}
}

// Create 建立教师档案（同时创建登录账号）
// POST /api/v1/teachers
func (h *TeacherHandler) Create(c *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	teacher, err := h.teacherSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, teacher)
}

// Get 查询教师档案
// GET /api/v1/teachers/:id
func (h *TeacherHandler) Get(c *gin.Context) {
	teacher, err := h.teacherSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, teacher)
}

// Update 更新教师档案
// PUT /api/v1/teachers/:id
func (h *TeacherHandler) Update(c *gin.Context) {
	var req dto.UpdateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	teacher, err := h.teacherSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, teacher)
}

// Delete 删除教师档案；仍有授课分配时拒绝删除
// DELETE /api/v1/teachers/:id
func (h *TeacherHandler) Delete(c *gin.Context) {
	if err := h.teacherSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

// List 教师列表（按关键词过滤）
// GET /api/v1/teachers
func (h *TeacherHandler) List(c *gin.Context) {
	var req dto.TeacherListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	teachers, total, err := h.teacherSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, teachers, total, req.GetPage(), req.GetPageSize())
}

func (h *TeacherHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTeacherNotFound):
		response.NotFound(c, 11004, "教师不存在")
	case errors.Is(err, service.ErrEmailTaken):
		response.Conflict(c, 11002, "邮箱已被占用")
	case errors.Is(err, service.ErrHasDependents):
		response.Conflict(c, 11006, "存在关联记录，不能删除")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 10001, "日期格式无效")
	default:
		response.InternalError(c)
	}
}
