package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ssss/backend/internal/service"
	"ssss/backend/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 如果 JWT 中间件未正确注入 user_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// MustGetRole 从 Gin 上下文中安全提取 role。
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// resolveTeacherID 将当前登录账号解析为教师档案 ID。
// 账号无教师档案时写入 403 响应并返回 false。
func resolveTeacherID(c *gin.Context, teacherSvc service.TeacherService) (string, bool) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return "", false
	}
	teacher, err := teacherSvc.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrTeacherNotFound) {
			response.Forbidden(c, 10003, "当前账号没有教师档案")
			return "", false
		}
		response.InternalError(c)
		return "", false
	}
	return teacher.TeacherID, true
}

// resolveStudentID 将当前登录账号解析为学生档案 ID。
func resolveStudentID(c *gin.Context, studentSvc service.StudentService) (string, bool) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return "", false
	}
	student, err := studentSvc.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.Forbidden(c, 10003, "当前账号没有学生档案")
			return "", false
		}
		response.InternalError(c)
		return "", false
	}
	return student.StudentID, true
}
