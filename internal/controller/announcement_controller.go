package controller

import (
	"errors"
	"school_dashboard_backend/internal/service"
	"school_dashboard_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnnouncementController struct {
	Service *service.AnnouncementService
}

func NewAnnouncementController(svc *service.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{Service: svc}
}

// ListAnnouncements godoc
// @Summary 获取公告列表
// @Description 按发布时间倒序
// @Tags 公告
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/announcements [get]
func (c *AnnouncementController) ListAnnouncements(ctx *gin.Context) {
	announcements, err := c.Service.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, announcements)
}

// CreateAnnouncement godoc
// @Summary 发布公告
// @Tags 公告
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.AnnouncementRequest true "公告内容"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/announcements [post]
func (c *AnnouncementController) CreateAnnouncement(ctx *gin.Context) {
	var req service.AnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.Service.Create(req)
	if err != nil {
		if errors.Is(err, util.ErrAnnouncementMissing) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, a)
}
