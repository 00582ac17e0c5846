package repository

import (
	"school_dashboard_backend/internal/model"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) Create(assignment *model.Assignment) error {
	return r.DB.Create(assignment).Error
}

func (r *AssignmentRepository) List() ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Assignment{}).Count(&count).Error
	return count, err
}
