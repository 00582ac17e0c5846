package controller

import (
	"school_dashboard_backend/internal/service"
	"school_dashboard_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GradeController struct {
	Service *service.GradeService
}

func NewGradeController(svc *service.GradeService) *GradeController {
	return &GradeController{Service: svc}
}

// ListGrades godoc
// @Summary 获取成绩列表
// @Tags 成绩
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/grades [get]
func (c *GradeController) ListGrades(ctx *gin.Context) {
	grades, err := c.Service.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, grades)
}

// SaveGrade godoc
// @Summary 登记成绩
// @Description 同一学生同一作业重复登记时覆盖旧分数
// @Tags 成绩
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.GradeRequest true "成绩信息"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/grades [post]
func (c *GradeController) SaveGrade(ctx *gin.Context) {
	var req service.GradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	grade, err := c.Service.Save(req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, grade)
}
