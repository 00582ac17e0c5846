package service

import (
	"errors"
	"school_dashboard_backend/internal/model"
	"school_dashboard_backend/internal/repository"
	"school_dashboard_backend/internal/util"

	"gorm.io/gorm"
)

type StudentService struct {
	Repo *repository.StudentRepository
}

func NewStudentService(repo *repository.StudentRepository) *StudentService {
	return &StudentService{Repo: repo}
}

type StudentRequest struct {
	Name        string `json:"name" binding:"required"`
	ParentName  string `json:"parentName"`
	ParentEmail string `json:"parentEmail"`
	ParentPhone string `json:"parentPhone"`
}

func (s *StudentService) Create(req StudentRequest) (*model.Student, error) {
	student := &model.Student{
		Name:        req.Name,
		ParentName:  req.ParentName,
		ParentEmail: req.ParentEmail,
		ParentPhone: req.ParentPhone,
	}
	if err := s.Repo.Create(student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) List() ([]model.Student, error) {
	return s.Repo.List()
}

func (s *StudentService) Get(id uint) (*model.Student, error) {
	student, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrStudentNotFound
	}
	return student, err
}

func (s *StudentService) Update(id uint, req StudentRequest) (*model.Student, error) {
	student, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	student.Name = req.Name
	student.ParentName = req.ParentName
	student.ParentEmail = req.ParentEmail
	student.ParentPhone = req.ParentPhone

	if err := s.Repo.Update(student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func (s *StudentService) Count() (int64, error) {
	return s.Repo.Count()
}
