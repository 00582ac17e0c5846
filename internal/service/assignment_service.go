package service

import (
	"school_dashboard_backend/internal/model"
	"school_dashboard_backend/internal/repository"
)

type AssignmentService struct {
	Repo *repository.AssignmentRepository
}

func NewAssignmentService(repo *repository.AssignmentRepository) *AssignmentService {
	return &AssignmentService{Repo: repo}
}

type AssignmentRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Subject     string `json:"subject"`
	DueDate     string `json:"dueDate"`
	Status      string `json:"status"`
}

func (s *AssignmentService) Create(req AssignmentRequest) (*model.Assignment, error) {
	status := model.AssignmentStatus(req.Status)
	if status == "" {
		status = model.AssignmentPending
	}

	assignment := &model.Assignment{
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
		DueDate:     req.DueDate,
		Status:      status,
	}
	if err := s.Repo.Create(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *AssignmentService) List() ([]model.Assignment, error) {
	return s.Repo.List()
}
