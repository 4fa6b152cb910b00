package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ssss/backend/internal/dto"
	"ssss/backend/internal/service"
	"ssss/backend/pkg/response"
)

// QAHandler 课业问答 HTTP 处理器
type QAHandler struct {
	qaSvc      service.QAService
	teacherSvc service.TeacherService
	studentSvc service.StudentService
}

// NewQAHandler 创建 QAHandler
func NewQAHandler(
	qaSvc service.QAService,
	teacherSvc service.TeacherService,
	studentSvc service.StudentService,
) *QAHandler {
	return &QAHandler{qaSvc: qaSvc, teacherSvc: teacherSvc, studentSvc: studentSvc}
}

// Ask 学生提问（可匿名）
// POST /api/v1/questions
func (h *QAHandler) Ask(c *gin.Context) {
	studentID, ok := resolveStudentID(c, h.studentSvc)
	if !ok {
		return
	}

	var req dto.AskQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	question, err := h.qaSvc.Ask(c.Request.Context(), studentID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, question)
}

// Answer 教师回答问题
// POST /api/v1/questions/:id/answers
func (h *QAHandler) Answer(c *gin.Context) {
	teacherID, ok := resolveTeacherID(c, h.teacherSvc)
	if !ok {
		return
	}

	var req dto.AnswerQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	question, err := h.qaSvc.Answer(c.Request.Context(), teacherID, c.Param("id"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, question)
}

// Get 查询问题及其回答
// GET /api/v1/questions/:id
func (h *QAHandler) Get(c *gin.Context) {
	question, err := h.qaSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, question)
}

// List 问题列表（按科目/未回答过滤）
// GET /api/v1/questions
func (h *QAHandler) List(c *gin.Context) {
	var req dto.QuestionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	questions, total, err := h.qaSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, questions, total, req.GetPage(), req.GetPageSize())
}

// MyList 当前学生本人的提问（不含匿名提问）
// GET /api/v1/questions/mine
func (h *QAHandler) MyList(c *gin.Context) {
	studentID, ok := resolveStudentID(c, h.studentSvc)
	if !ok {
		return
	}

	var req dto.QuestionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	questions, total, err := h.qaSvc.ListByStudent(c.Request.Context(), studentID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, questions, total, req.GetPage(), req.GetPageSize())
}

func (h *QAHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrQuestionNotFound):
		response.NotFound(c, 18001, "问题不存在")
	case errors.Is(err, service.ErrSubjectNotFound):
		response.NotFound(c, 11005, "科目不存在")
	default:
		response.InternalError(c)
	}
}
