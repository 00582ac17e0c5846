package service

import (
	"school_dashboard_backend/internal/model"
	"school_dashboard_backend/internal/repository"
	"school_dashboard_backend/internal/util"
	"time"
)

type AnnouncementService struct {
	Repo *repository.AnnouncementRepository
}

func NewAnnouncementService(repo *repository.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{Repo: repo}
}

type AnnouncementRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (s *AnnouncementService) Create(req AnnouncementRequest) (*model.Announcement, error) {
	if req.Title == "" || req.Content == "" {
		return nil, util.ErrAnnouncementMissing
	}

	a := &model.Announcement{
		Title:   req.Title,
		Content: req.Content,
		Date:    time.Now(),
	}
	if err := s.Repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AnnouncementService) List() ([]model.Announcement, error) {
	return s.Repo.List()
}
