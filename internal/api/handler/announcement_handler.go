package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ssss/backend/internal/dto"
	"ssss/backend/internal/service"
	"ssss/backend/pkg/response"
)

// AnnouncementHandler 公告 HTTP 处理器
type AnnouncementHandler struct {
	announcementSvc service.AnnouncementService
	teacherSvc      service.TeacherService
}

// NewAnnouncementHandler 创建 AnnouncementHandler
func NewAnnouncementHandler(
	announcementSvc service.AnnouncementService,
	teacherSvc service.TeacherService,
) *AnnouncementHandler {
	return &AnnouncementHandler{announcementSvc: announcementSvc, teacherSvc: teacherSvc}
}

// Create 发布公告（当前教师）
// POST /api/v1/announcements
func (h *AnnouncementHandler) Create(c *gin.Context) {
	teacherID, ok := resolveTeacherID(c, h.teacherSvc)
	if !ok {
		return
	}

	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	announcement, err := h.announcementSvc.Create(c.Request.Context(), teacherID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, announcement)
}

// Delete 删除公告；仅发布者本人可删除
// DELETE /api/v1/announcements/:id
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	teacherID, ok := resolveTeacherID(c, h.teacherSvc)
	if !ok {
		return
	}

	if err := h.announcementSvc.Delete(c.Request.Context(), teacherID, c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

// List 按当前角色过滤受众的公告列表
// GET /api/v1/announcements
func (h *AnnouncementHandler) List(c *gin.Context) {
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.AnnouncementListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	announcements, total, err := h.announcementSvc.ListForRole(c.Request.Context(), role, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, announcements, total, req.GetPage(), req.GetPageSize())
}

func (h *AnnouncementHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAnnouncementNotFound):
		response.NotFound(c, 17001, "公告不存在")
	case errors.Is(err, service.ErrInvalidAudience):
		response.BadRequest(c, 17002, "公告受众无效")
	case errors.Is(err, service.ErrNotAnnouncementOwner):
		response.Forbidden(c, 17003, "只能删除自己发布的公告")
	default:
		response.InternalError(c)
	}
}
