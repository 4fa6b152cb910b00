package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ssss/backend/internal/dto"
	"ssss/backend/internal/service"
	"ssss/backend/pkg/response"
)

// StudentHandler 学生档案 HTTP 处理器
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler 创建 StudentHandler
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// Create 建立学生档案（同时创建登录账号）
// POST /api/v1/students
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	student, err := h.studentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, student)
}

// Get 查询学生档案
// GET /api/v1/students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.studentSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, student)
}

// Update 更新学生档案
// PUT /api/v1/students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	student, err := h.studentSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, student)
}

// Delete 删除学生档案；存在关联记录时拒绝删除
// DELETE /api/v1/students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.studentSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

// List 学生列表（按班级/关键词过滤）
// GET /api/v1/students
func (h *StudentHandler) List(c *gin.Context) {
	var req dto.StudentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	students, total, err := h.studentSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, students, total, req.GetPage(), req.GetPageSize())
}

// Import 从 Excel 批量建档
// POST /api/v1/students/import  (multipart, 字段名 file)
func (h *StudentHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 10001, "缺少上传文件")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, 11007, "文件无法读取")
		return
	}
	defer file.Close()

	result, err := h.studentSvc.ImportFromExcel(c.Request.Context(), file)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *StudentHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 11001, "学生不存在")
	case errors.Is(err, service.ErrEmailTaken):
		response.Conflict(c, 11002, "邮箱已被占用")
	case errors.Is(err, service.ErrClassNotFound):
		response.NotFound(c, 11003, "班级不存在")
	case errors.Is(err, service.ErrHasDependents):
		response.Conflict(c, 11006, "存在关联记录，不能删除")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 10001, "日期格式无效")
	case errors.Is(err, service.ErrImportBadFile):
		response.BadRequest(c, 11007, "无法解析 Excel 文件")
	case errors.Is(err, service.ErrImportEmpty):
		response.BadRequest(c, 11008, "文件中没有可导入的数据行")
	default:
		response.InternalError(c)
	}
}
