package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ssss/backend/internal/dto"
	"ssss/backend/internal/service"
	"ssss/backend/pkg/response"
)

// ClassHandler 班级 HTTP 处理器
type ClassHandler struct {
	classSvc service.ClassService
}

// NewClassHandler 创建 ClassHandler
func NewClassHandler(classSvc service.ClassService) *ClassHandler {
	return &ClassHandler{classSvc: classSvc}
}

// Create 创建班级
// POST /api/v1/classes
func (h *ClassHandler) Create(c *gin.Context) {
	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	class, err := h.classSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, class)
}

// Get 查询班级
// GET /api/v1/classes/:id
func (h *ClassHandler) Get(c *gin.Context) {
	class, err := h.classSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, class)
}

// Update 更新班级
// PUT /api/v1/classes/:id
func (h *ClassHandler) Update(c *gin.Context) {
	var req dto.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	class, err := h.classSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, class)
}

// Delete 删除班级；仍有学生或授课分配时拒绝删除
// DELETE /api/v1/classes/:id
func (h *ClassHandler) Delete(c *gin.Context) {
	if err := h.classSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

// List 班级列表
// GET /api/v1/classes
func (h *ClassHandler) List(c *gin.Context) {
	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	classes, total, err := h.classSvc.List(c.Request.Context(), &page)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, classes, total, page.GetPage(), page.GetPageSize())
}

func (h *ClassHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrClassNotFound):
		response.NotFound(c, 11003, "班级不存在")
	case errors.Is(err, service.ErrHasDependents):
		response.Conflict(c, 11006, "存在关联记录，不能删除")
	default:
		response.InternalError(c)
	}
}
