package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ssss/backend/internal/dto"
	"ssss/backend/internal/service"
	"ssss/backend/pkg/response"
)

// LeaveHandler 请假 HTTP 处理器
type LeaveHandler struct {
	leaveSvc   service.LeaveService
	studentSvc service.StudentService
}

// NewLeaveHandler 创建 LeaveHandler
func NewLeaveHandler(leaveSvc service.LeaveService, studentSvc service.StudentService) *LeaveHandler {
	return &LeaveHandler{leaveSvc: leaveSvc, studentSvc: studentSvc}
}

// Apply 当前学生提交请假申请
// POST /api/v1/leaves
func (h *LeaveHandler) Apply(c *gin.Context) {
	studentID, ok := resolveStudentID(c, h.studentSvc)
	if !ok {
		return
	}

	var req dto.ApplyLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	leave, err := h.leaveSvc.Apply(c.Request.Context(), studentID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, leave)
}

// Review 审批请假申请
// POST /api/v1/leaves/:id/review
func (h *LeaveHandler) Review(c *gin.Context) {
	var req dto.ReviewLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	leave, err := h.leaveSvc.Review(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, leave)
}

// Get 查询请假申请
// GET /api/v1/leaves/:id
func (h *LeaveHandler) Get(c *gin.Context) {
	leave, err := h.leaveSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, leave)
}

// List 请假申请查询
// GET /api/v1/leaves
func (h *LeaveHandler) List(c *gin.Context) {
	var req dto.LeaveListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	leaves, total, err := h.leaveSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OKPage(c, leaves, total, req.GetPage(), req.GetPageSize())
}

// MyList 当前学生本人的请假申请
// GET /api/v1/leaves/mine
func (h *LeaveHandler) MyList(c *gin.Context) {
	studentID, ok := resolveStudentID(c, h.studentSvc)
	if !ok {
		return
	}

	var req dto.LeaveListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}
	req.StudentID = studentID

	leaves, total, err := h.leaveSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OKPage(c, leaves, total, req.GetPage(), req.GetPageSize())
}

func (h *LeaveHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLeaveNotFound):
		response.NotFound(c, 16001, "请假申请不存在")
	case errors.Is(err, service.ErrLeaveDateRange):
		response.BadRequest(c, 16002, "请假起止日期无效")
	case errors.Is(err, service.ErrLeaveAlreadyReviewed):
		response.Conflict(c, 16003, "该申请已审批，不能重复处理")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 10001, "日期格式无效")
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 11001, "学生不存在")
	default:
		response.InternalError(c)
	}
}
