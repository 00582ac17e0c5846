package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"school_dashboard_backend/internal/config"
	"school_dashboard_backend/internal/controller"
	"school_dashboard_backend/internal/repository"
	"school_dashboard_backend/internal/service"
	"school_dashboard_backend/pkg/database"
	"school_dashboard_backend/pkg/logger"
	"school_dashboard_backend/pkg/monitoring"
	"school_dashboard_backend/pkg/security"
	"school_dashboard_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user         *repository.UserRepository
	student      *repository.StudentRepository
	attendance   *repository.AttendanceRepository
	assignment   *repository.AssignmentRepository
	grade        *repository.GradeRepository
	announcement *repository.AnnouncementRepository
	exam         *repository.ExamRepository
}

type services struct {
	auth         *service.AuthService
	storage      *service.StorageService
	user         *service.UserService
	student      *service.StudentService
	attendance   *service.AttendanceService
	assignment   *service.AssignmentService
	grade        *service.GradeService
	announcement *service.AnnouncementService
	exam         *service.ExamService
	dashboard    *service.DashboardService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	student      *controller.StudentController
	attendance   *controller.AttendanceController
	assignment   *controller.AssignmentController
	grade        *controller.GradeController
	announcement *controller.AnnouncementController
	exam         *controller.ExamController
	dashboard    *controller.DashboardController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 热更新回调，配置文件变更时由watcher调用
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		student:      repository.NewStudentRepository(db),
		attendance:   repository.NewAttendanceRepository(db),
		assignment:   repository.NewAssignmentRepository(db),
		grade:        repository.NewGradeRepository(db),
		announcement: repository.NewAnnouncementRepository(db),
		exam:         repository.NewExamRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user, s.storage)
	s.student = service.NewStudentService(repos.student)
	s.attendance = service.NewAttendanceService(repos.attendance)
	s.assignment = service.NewAssignmentService(repos.assignment)
	s.grade = service.NewGradeService(repos.grade)
	s.announcement = service.NewAnnouncementService(repos.announcement)
	s.exam = service.NewExamService(repos.exam)
	s.dashboard = service.NewDashboardService(repos.student, repos.assignment, repos.grade, s.attendance, rdb)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth, s.user),
		user:         controller.NewUserController(s.user),
		student:      controller.NewStudentController(s.student),
		attendance:   controller.NewAttendanceController(s.attendance),
		assignment:   controller.NewAssignmentController(s.assignment),
		grade:        controller.NewGradeController(s.grade),
		announcement: controller.NewAnnouncementController(s.announcement),
		exam:         controller.NewExamController(s.exam),
		dashboard:    controller.NewDashboardController(s.dashboard),
		health:       controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := database.SeedDefaultAdmin(db, &cfg.Admin); err != nil {
		logger.Log.Fatal("Failed to seed default admin", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Redis不可用时降级为直查数据库
		logger.Log.Warn("Redis unavailable, dashboard counters will not be cached", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("school-dashboard", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
