package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"ssss/backend/internal/dto"
	"ssss/backend/internal/service"
	"ssss/backend/pkg/response"
)

// FeeHandler 费用 HTTP 处理器
type FeeHandler struct {
	feeSvc     service.FeeService
	studentSvc service.StudentService
}

// NewFeeHandler 创建 FeeHandler
func NewFeeHandler(feeSvc service.FeeService, studentSvc service.StudentService) *FeeHandler {
	return &FeeHandler{feeSvc: feeSvc, studentSvc: studentSvc}
}

// Issue 开具缴费单
// POST /api/v1/fees
func (h *FeeHandler) Issue(c *gin.Context) {
	var req dto.IssueVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	voucher, err := h.feeSvc.Issue(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, voucher)
}

// MarkPaid 登记缴费；幂等操作
// POST /api/v1/fees/:id/pay
func (h *FeeHandler) MarkPaid(c *gin.Context) {
	voucher, err := h.feeSvc.MarkPaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, voucher)
}

// Get 查询缴费单
// GET /api/v1/fees/:id
func (h *FeeHandler) Get(c *gin.Context) {
	voucher, err := h.feeSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, voucher)
}

// List 缴费单查询
// GET /api/v1/fees
func (h *FeeHandler) List(c *gin.Context) {
	var req dto.FeeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	vouchers, total, err := h.feeSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OKPage(c, vouchers, total, req.GetPage(), req.GetPageSize())
}

// MyList 当前学生本人的缴费单
// GET /api/v1/fees/mine
func (h *FeeHandler) MyList(c *gin.Context) {
	studentID, ok := resolveStudentID(c, h.studentSvc)
	if !ok {
		return
	}

	var req dto.FeeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}
	req.StudentID = studentID

	vouchers, total, err := h.feeSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OKPage(c, vouchers, total, req.GetPage(), req.GetPageSize())
}

// MarkOverdue 将指定日期前开具且未缴费的账单批量置为逾期
// POST /api/v1/fees/mark-overdue?before=2006-01-02
func (h *FeeHandler) MarkOverdue(c *gin.Context) {
	before := c.Query("before")
	cutoff := time.Now().UTC()
	if before != "" {
		parsed, err := time.Parse("2006-01-02", before)
		if err != nil {
			response.BadRequest(c, 10001, "日期格式无效")
			return
		}
		cutoff = parsed
	}

	updated, err := h.feeSvc.MarkOverdue(c.Request.Context(), cutoff)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, gin.H{"updated": updated})
}

func (h *FeeHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVoucherNotFound):
		response.NotFound(c, 15001, "缴费单不存在")
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 11001, "学生不存在")
	default:
		response.InternalError(c)
	}
}
