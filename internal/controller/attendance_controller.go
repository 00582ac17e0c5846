package controller

import (
	"school_dashboard_backend/internal/service"
	"school_dashboard_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AttendanceController struct {
	Service *service.AttendanceService
}

func NewAttendanceController(svc *service.AttendanceService) *AttendanceController {
	return &AttendanceController{Service: svc}
}

// GetAttendance godoc
// @Summary 获取某日出勤记录
// @Description 该日期尚未点名时返回空名单
// @Tags 出勤
// @Produce json
// @Security ApiKeyAuth
// @Param date path string true "日期 YYYY-MM-DD"
// @Success 200 {object} util.Response
// @Router /api/attendance/{date} [get]
func (c *AttendanceController) GetAttendance(ctx *gin.Context) {
	date := ctx.Param("date")

	a, err := c.Service.GetByDate(date)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, a)
}

// SaveAttendance godoc
// @Summary 保存某日出勤记录
// @Description 按日期整体覆盖，重复提交以最新记录为准
// @Tags 出勤
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.AttendanceRequest true "出勤记录"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/attendance [post]
func (c *AttendanceController) SaveAttendance(ctx *gin.Context) {
	var req service.AttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.Service.Save(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, a)
}

// GetSummary godoc
// @Summary 获取某日出勤统计
// @Tags 出勤
// @Produce json
// @Security ApiKeyAuth
// @Param date path string true "日期 YYYY-MM-DD"
// @Success 200 {object} util.Response
// @Router /api/attendance/summary/{date} [get]
func (c *AttendanceController) GetSummary(ctx *gin.Context) {
	summary, err := c.Service.Summary(ctx.Param("date"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}
