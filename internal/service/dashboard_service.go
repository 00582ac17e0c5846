package service

import (
	"context"
	"school_dashboard_backend/internal/model"
	"school_dashboard_backend/internal/repository"
	"school_dashboard_backend/pkg/logger"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// 仪表盘计数缓存TTL。计数查询每次页面加载都会触发，短缓存足够
const dashboardCacheTTL = time.Minute

type DashboardService struct {
	StudentRepo    *repository.StudentRepository
	AssignmentRepo *repository.AssignmentRepository
	GradeRepo      *repository.GradeRepository
	Attendance     *AttendanceService
	Redis          *redis.Client
}

func NewDashboardService(
	studentRepo *repository.StudentRepository,
	assignmentRepo *repository.AssignmentRepository,
	gradeRepo *repository.GradeRepository,
	attendance *AttendanceService,
	rdb *redis.Client,
) *DashboardService {
	return &DashboardService{
		StudentRepo:    studentRepo,
		AssignmentRepo: assignmentRepo,
		GradeRepo:      gradeRepo,
		Attendance:     attendance,
		Redis:          rdb,
	}
}

func (s *DashboardService) cachedCount(ctx context.Context, key string, load func() (int64, error)) (int64, error) {
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, key).Result(); err == nil {
			if n, err := strconv.ParseInt(val, 10, 64); err == nil {
				return n, nil
			}
		}
	}

	n, err := load()
	if err != nil {
		return 0, err
	}

	if s.Redis != nil {
		if err := s.Redis.Set(ctx, key, strconv.FormatInt(n, 10), dashboardCacheTTL).Err(); err != nil {
			logger.Log.Warn("dashboard cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return n, nil
}

func (s *DashboardService) StudentCount(ctx context.Context) (int64, error) {
	return s.cachedCount(ctx, "dashboard:students:count", s.StudentRepo.Count)
}

// UngradedCount 估算未批改数量：作业数×学生数−已打分数
func (s *DashboardService) UngradedCount(ctx context.Context) (int64, error) {
	return s.cachedCount(ctx, "dashboard:assignments:ungraded", func() (int64, error) {
		assignments, err := s.AssignmentRepo.Count()
		if err != nil {
			return 0, err
		}
		students, err := s.StudentRepo.Count()
		if err != nil {
			return 0, err
		}
		graded, err := s.GradeRepo.Count()
		if err != nil {
			return 0, err
		}

		ungraded := assignments*students - graded
		if ungraded < 0 {
			ungraded = 0
		}
		return ungraded, nil
	})
}

func (s *DashboardService) AttendanceSummary(date string) (model.AttendanceSummary, error) {
	return s.Attendance.Summary(date)
}
