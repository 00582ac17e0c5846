package app

import (
	"school_dashboard_backend/docs"
	"school_dashboard_backend/internal/config"
	"school_dashboard_backend/internal/middleware"
	"school_dashboard_backend/internal/model"
	"school_dashboard_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerCommonRoutes(authGroup, c)
		a.registerTeacherRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Check)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}
}

// registerCommonRoutes 所有已登录角色可访问的接口
func (a *App) registerCommonRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/auth/profile", c.auth.GetProfile)
	rg.PUT("/users/profile", c.user.UpdateProfile)
	rg.POST("/users/avatar", c.user.UploadAvatar)

	rg.GET("/announcements", c.announcement.ListAnnouncements)
	rg.GET("/assignments", c.assignment.ListAssignments)
	rg.GET("/grades", c.grade.ListGrades)

	// 考试：学生可查看列表/详情，提交答卷，查询自己的成绩
	rg.GET("/exams", c.exam.ListExams)
	rg.GET("/exams/:id", c.exam.GetExam)
	rg.POST("/exams/:id/submit", c.exam.SubmitExam)
	rg.GET("/exams/results/:studentId", c.exam.GetStudentResults)
}

// registerTeacherRoutes 教师及以上角色的接口
func (a *App) registerTeacherRoutes(rg *gin.RouterGroup, c *controllers) {
	teacher := rg.Group("/")
	teacher.Use(middleware.RoleMiddleware(model.RoleTeacher))
	{
		teacher.GET("/students", c.student.ListStudents)
		teacher.POST("/students", c.student.CreateStudent)
		teacher.GET("/students/:id", c.student.GetStudent)
		teacher.PUT("/students/:id", c.student.UpdateStudent)
		teacher.DELETE("/students/:id", c.student.DeleteStudent)

		teacher.GET("/attendance/:date", c.attendance.GetAttendance)
		teacher.POST("/attendance", c.attendance.SaveAttendance)
		teacher.GET("/attendance/summary/:date", c.attendance.GetSummary)

		teacher.POST("/assignments", c.assignment.CreateAssignment)
		teacher.POST("/grades", c.grade.SaveGrade)
		teacher.POST("/announcements", c.announcement.CreateAnnouncement)

		teacher.POST("/exams", c.exam.CreateExam)
		teacher.PUT("/exams/:id", c.exam.UpdateExam)
		teacher.DELETE("/exams/:id", c.exam.DeleteExam)
		teacher.GET("/exams/:id/submissions", c.exam.GetExamSubmissions)

		teacher.GET("/students/count", c.dashboard.GetStudentCount)
		teacher.GET("/assignments/ungraded-count", c.dashboard.GetUngradedCount)
		teacher.GET("/dashboard/attendance/summary/:date", c.dashboard.GetAttendanceSummary)
	}
}

// registerAdminRoutes 仅管理员的接口
func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/")
	admin.Use(middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.GET("/users", c.user.ListUsers)
		admin.PUT("/users/:id/password", c.user.ResetPassword)
		admin.PUT("/users/:id/disabled", c.user.SetDisabled)
	}
}
