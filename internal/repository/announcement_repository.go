package repository

import (
	"school_dashboard_backend/internal/model"

	"gorm.io/gorm"
)

type AnnouncementRepository struct {
	DB *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{DB: db}
}

func (r *AnnouncementRepository) Create(a *model.Announcement) error {
	return r.DB.Create(a).Error
}

func (r *AnnouncementRepository) List() ([]model.Announcement, error) {
	var announcements []model.Announcement
	err := r.DB.Order("date desc").Find(&announcements).Error
	return announcements, err
}
