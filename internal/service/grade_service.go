package service

import (
	"school_dashboard_backend/internal/model"
	"school_dashboard_backend/internal/repository"
)

type GradeService struct {
	Repo *repository.GradeRepository
}

func NewGradeService(repo *repository.GradeRepository) *GradeService {
	return &GradeService{Repo: repo}
}

type GradeRequest struct {
	StudentID    uint `json:"studentId" binding:"required"`
	AssignmentID uint `json:"assignmentId" binding:"required"`
	Score        int  `json:"score"`
}

// Save 同一 (student, assignment) 组合重复打分时覆盖旧分数
func (s *GradeService) Save(req GradeRequest) (*model.Grade, error) {
	grade := &model.Grade{
		StudentID:    req.StudentID,
		AssignmentID: req.AssignmentID,
		Score:        req.Score,
	}
	if err := s.Repo.Upsert(grade); err != nil {
		return nil, err
	}
	return s.Repo.FindByStudentAndAssignment(req.StudentID, req.AssignmentID)
}

func (s *GradeService) List() ([]model.Grade, error) {
	return s.Repo.List()
}
