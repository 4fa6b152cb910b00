package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"ssss/backend/internal/dto"
	"ssss/backend/internal/service"
	"ssss/backend/pkg/response"
)

// LectureHandler 课件 HTTP 处理器
type LectureHandler struct {
	lectureSvc service.LectureService
	teacherSvc service.TeacherService
}

// NewLectureHandler 创建 LectureHandler
func NewLectureHandler(lectureSvc service.LectureService, teacherSvc service.TeacherService) *LectureHandler {
	return &LectureHandler{lectureSvc: lectureSvc, teacherSvc: teacherSvc}
}

// Upload 上传课件（multipart，文件字段名 file，文件可省略）
// POST /api/v1/materials
func (h *LectureHandler) Upload(c *gin.Context) {
	teacherID, ok := resolveTeacherID(c, h.teacherSvc)
	if !ok {
		return
	}

	var req dto.UploadMaterialRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	var file io.Reader
	var filename string
	if fileHeader, err := c.FormFile("file"); err == nil {
		opened, err := fileHeader.Open()
		if err != nil {
			response.BadRequest(c, 10001, "文件无法读取")
			return
		}
		defer opened.Close()
		file = opened
		filename = fileHeader.Filename
	}

	material, err := h.lectureSvc.Upload(c.Request.Context(), teacherID, &req, file, filename)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, material)
}

// Get 查询课件
// GET /api/v1/materials/:id
func (h *LectureHandler) Get(c *gin.Context) {
	material, err := h.lectureSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, material)
}

// Delete 删除课件；仅上传者本人可删除
// DELETE /api/v1/materials/:id
func (h *LectureHandler) Delete(c *gin.Context) {
	teacherID, ok := resolveTeacherID(c, h.teacherSvc)
	if !ok {
		return
	}

	if err := h.lectureSvc.Delete(c.Request.Context(), teacherID, c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

// List 课件列表（按科目过滤）
// GET /api/v1/materials
func (h *LectureHandler) List(c *gin.Context) {
	var req dto.MaterialListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	materials, total, err := h.lectureSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, materials, total, req.GetPage(), req.GetPageSize())
}

func (h *LectureHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMaterialNotFound):
		response.NotFound(c, 17101, "课件不存在")
	case errors.Is(err, service.ErrNotMaterialOwner):
		response.Forbidden(c, 17102, "只能删除自己上传的课件")
	case errors.Is(err, service.ErrSubjectNotFound):
		response.NotFound(c, 11005, "科目不存在")
	case errors.Is(err, service.ErrMaterialStoreFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
