package controller

import (
	"school_dashboard_backend/internal/service"
	"school_dashboard_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Service *service.DashboardService
}

func NewDashboardController(svc *service.DashboardService) *DashboardController {
	return &DashboardController{Service: svc}
}

// GetStudentCount godoc
// @Summary 获取学生总数
// @Tags 仪表盘
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/students/count [get]
func (c *DashboardController) GetStudentCount(ctx *gin.Context) {
	count, err := c.Service.StudentCount(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"count": count})
}

// GetUngradedCount godoc
// @Summary 获取未批改作业估算数
// @Tags 仪表盘
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/assignments/ungraded-count [get]
func (c *DashboardController) GetUngradedCount(ctx *gin.Context) {
	count, err := c.Service.UngradedCount(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"count": count})
}

// GetAttendanceSummary godoc
// @Summary 获取某日考勤汇总
// @Tags 仪表盘
// @Produce json
// @Security ApiKeyAuth
// @Param date path string true "日期 YYYY-MM-DD"
// @Success 200 {object} util.Response
// @Router /api/dashboard/attendance/summary/{date} [get]
func (c *DashboardController) GetAttendanceSummary(ctx *gin.Context) {
	summary, err := c.Service.AttendanceSummary(ctx.Param("date"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}
