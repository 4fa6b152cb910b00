package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ssss/backend/config"
	"ssss/backend/internal/api/handler"
	"ssss/backend/internal/api/middleware"
	"ssss/backend/internal/model"
	"ssss/backend/pkg/jwt"
	"ssss/backend/pkg/redis"
)

// 登录与刷新接口的限流窗口
const (
	authRateLimit  = 20
	authRateWindow = time.Minute
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Upload.MaxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	adminOnly := middleware.RoleAuth(model.RoleAdmin)
	teacherOnly := middleware.RoleAuth(model.RoleTeacher)
	studentOnly := middleware.RoleAuth(model.RoleStudent)
	staffOnly := middleware.RoleAuth(model.RoleAdmin, model.RoleTeacher)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证，带限流）
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, authRateLimit, authRateWindow))
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// 学生档案（管理员维护）
			students := authorized.Group("/students")
			{
				students.GET("", staffOnly, h.Student.List)
				students.GET("/:id", staffOnly, h.Student.Get)
				students.POST("", adminOnly, h.Student.Create)
				students.PUT("/:id", adminOnly, h.Student.Update)
				students.DELETE("/:id", adminOnly, h.Student.Delete)
				students.POST("/import", adminOnly, h.Student.Import)
			}

			// 教师档案（管理员维护）
			teachers := authorized.Group("/teachers")
			{
				teachers.GET("", staffOnly, h.Teacher.List)
				teachers.GET("/:id", staffOnly, h.Teacher.Get)
				teachers.POST("", adminOnly, h.Teacher.Create)
				teachers.PUT("/:id", adminOnly, h.Teacher.Update)
				teachers.DELETE("/:id", adminOnly, h.Teacher.Delete)
			}

			// 班级模块
			classes := authorized.Group("/classes")
			{
				classes.GET("", h.Class.List)
				classes.GET("/:id", h.Class.Get)
				classes.POST("", adminOnly, h.Class.Create)
				classes.PUT("/:id", adminOnly, h.Class.Update)
				classes.DELETE("/:id", adminOnly, h.Class.Delete)
			}

			// 科目模块
			subjects := authorized.Group("/subjects")
			{
				subjects.GET("", h.Subject.List)
				subjects.GET("/:id", h.Subject.Get)
				subjects.POST("", adminOnly, h.Subject.Create)
				subjects.PUT("/:id", adminOnly, h.Subject.Update)
				subjects.DELETE("/:id", adminOnly, h.Subject.Delete)
			}

			// 授课分配模块
			assignments := authorized.Group("/assignments")
			{
				assignments.GET("", staffOnly, h.Assignment.List)
				assignments.GET("/mine", teacherOnly, h.Assignment.ListMine)
				assignments.POST("", adminOnly, h.Assignment.Create)
				assignments.DELETE("/:id", adminOnly, h.Assignment.Delete)
			}

			// 考勤模块
			attendance := authorized.Group("/attendance")
			{
				attendance.POST("", teacherOnly, h.Attendance.Record)
				attendance.GET("", staffOnly, h.Attendance.List)
				attendance.GET("/mine", studentOnly, h.Attendance.MyList)
				attendance.GET("/summary", studentOnly, h.Attendance.MySummary)
			}

			// 成绩模块
			marks := authorized.Group("/marks")
			{
				marks.POST("", teacherOnly, h.Mark.Record)
				marks.GET("", staffOnly, h.Mark.List)
				marks.GET("/mine", studentOnly, h.Mark.MyList)
			}

			// 费用模块
			fees := authorized.Group("/fees")
			{
				fees.POST("", adminOnly, h.Fee.Issue)
				fees.GET("", adminOnly, h.Fee.List)
				fees.GET("/mine", studentOnly, h.Fee.MyList)
				fees.GET("/:id", adminOnly, h.Fee.Get)
				fees.POST("/:id/pay", adminOnly, h.Fee.MarkPaid)
				fees.POST("/mark-overdue", adminOnly, h.Fee.MarkOverdue)
			}

			// 请假模块
			leaves := authorized.Group("/leaves")
			{
				leaves.POST("", studentOnly, h.Leave.Apply)
				leaves.GET("", adminOnly, h.Leave.List)
				leaves.GET("/mine", studentOnly, h.Leave.MyList)
				leaves.GET("/:id", staffOnly, h.Leave.Get)
				leaves.POST("/:id/review", adminOnly, h.Leave.Review)
			}

			// 公告模块
			announcements := authorized.Group("/announcements")
			{
				announcements.GET("", h.Announcement.List)
				announcements.POST("", teacherOnly, h.Announcement.Create)
				announcements.DELETE("/:id", teacherOnly, h.Announcement.Delete)
			}

			// 课件模块
			materials := authorized.Group("/materials")
			{
				materials.GET("", h.Lecture.List)
				materials.GET("/:id", h.Lecture.Get)
				materials.POST("", teacherOnly, h.Lecture.Upload)
				materials.DELETE("/:id", teacherOnly, h.Lecture.Delete)
			}

			// 问答模块
			questions := authorized.Group("/questions")
			{
				questions.GET("", h.QA.List)
				questions.GET("/mine", studentOnly, h.QA.MyList)
				questions.GET("/:id", h.QA.Get)
				questions.POST("", studentOnly, h.QA.Ask)
				questions.POST("/:id/answers", teacherOnly, h.QA.Answer)
			}

			// 角色首页
			dashboard := authorized.Group("/dashboard")
			{
				dashboard.GET("/admin", adminOnly, h.Dashboard.Admin)
				dashboard.GET("/teacher", teacherOnly, h.Dashboard.Teacher)
				dashboard.GET("/student", studentOnly, h.Dashboard.Student)
			}

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/attendance", staffOnly, h.Export.AttendanceRegister)
				export.GET("/leaves/mine", studentOnly, h.Export.MyLeaveCalendar)
				export.GET("/leaves/:student_id", staffOnly, h.Export.LeaveCalendar)
			}
		}
	}

	return r
}
