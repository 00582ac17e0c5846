package app

import (
	"net/http"
	"testing"

	"school_dashboard_backend/internal/config"
	"school_dashboard_backend/internal/controller"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// 只注册路由表，不发请求，handler不会被调用
func buildTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	a := &App{Config: cfg}
	router := gin.New()
	a.registerRoutes(router, &controllers{
		auth:         &controller.AuthController{},
		user:         &controller.UserController{},
		student:      &controller.StudentController{},
		attendance:   &controller.AttendanceController{},
		assignment:   &controller.AssignmentController{},
		grade:        &controller.GradeController{},
		announcement: &controller.AnnouncementController{},
		exam:         &controller.ExamController{},
		dashboard:    &controller.DashboardController{},
		health:       &controller.HealthController{},
	}, &repositories{}, cfg)
	return router
}

func TestRegisteredRoutePaths(t *testing.T) {
	router := buildTestRouter(t)

	registered := make(map[string]bool)
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	want := []string{
		http.MethodGet + " /api/health",
		http.MethodPost + " /api/auth/register",
		http.MethodPost + " /api/auth/login",
		http.MethodGet + " /api/auth/profile",

		http.MethodGet + " /api/students",
		http.MethodPost + " /api/students",
		http.MethodGet + " /api/students/:id",
		http.MethodPut + " /api/students/:id",
		http.MethodDelete + " /api/students/:id",
		http.MethodGet + " /api/students/count",

		http.MethodGet + " /api/attendance/:date",
		http.MethodPost + " /api/attendance",
		http.MethodGet + " /api/attendance/summary/:date",

		http.MethodGet + " /api/assignments",
		http.MethodPost + " /api/assignments",
		http.MethodGet + " /api/assignments/ungraded-count",

		http.MethodGet + " /api/grades",
		http.MethodPost + " /api/grades",

		http.MethodGet + " /api/announcements",
		http.MethodPost + " /api/announcements",

		http.MethodGet + " /api/exams",
		http.MethodPost + " /api/exams",
		http.MethodGet + " /api/exams/:id",
		http.MethodPut + " /api/exams/:id",
		http.MethodDelete + " /api/exams/:id",
		http.MethodPost + " /api/exams/:id/submit",
		http.MethodGet + " /api/exams/results/:studentId",
		http.MethodGet + " /api/exams/:id/submissions",

		http.MethodGet + " /api/users",
		http.MethodPut + " /api/users/:id/password",
		http.MethodPut + " /api/users/:id/disabled",

		http.MethodGet + " /metrics",
	}

	for _, path := range want {
		assert.True(t, registered[path], "missing route %s", path)
	}
}
