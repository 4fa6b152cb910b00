package handler

import (
	"github.com/gin-gonic/gin"

	"ssss/backend/internal/service"
	"ssss/backend/pkg/response"
)

// DashboardHandler 角色首页 HTTP 处理器
type DashboardHandler struct {
	dashboardSvc service.DashboardService
	teacherSvc   service.TeacherService
	studentSvc   service.StudentService
}

// NewDashboardHandler 创建 DashboardHandler
func NewDashboardHandler(
	dashboardSvc service.DashboardService,
	teacherSvc service.TeacherService,
	studentSvc service.StudentService,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardSvc: dashboardSvc,
		teacherSvc:   teacherSvc,
		studentSvc:   studentSvc,
	}
}

// Admin 管理员首页统计
// GET /api/v1/dashboard/admin
func (h *DashboardHandler) Admin(c *gin.Context) {
	result, err := h.dashboardSvc.Admin(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Teacher 教师首页统计
// GET /api/v1/dashboard/teacher
func (h *DashboardHandler) Teacher(c *gin.Context) {
	teacherID, ok := resolveTeacherID(c, h.teacherSvc)
	if !ok {
		return
	}

	result, err := h.dashboardSvc.Teacher(c.Request.Context(), teacherID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Student 学生首页统计
// GET /api/v1/dashboard/student
func (h *DashboardHandler) Student(c *gin.Context) {
	studentID, ok := resolveStudentID(c, h.studentSvc)
	if !ok {
		return
	}

	result, err := h.dashboardSvc.Student(c.Request.Context(), studentID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
