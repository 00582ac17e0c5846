package service

import (
	"errors"
	"school_dashboard_backend/internal/model"
	"school_dashboard_backend/internal/repository"

	"gorm.io/gorm"
)

type AttendanceService struct {
	Repo *repository.AttendanceRepository
}

func NewAttendanceService(repo *repository.AttendanceRepository) *AttendanceService {
	return &AttendanceService{Repo: repo}
}

// GetByDate 某日无记录时返回空名单而不是错误，前端按"尚未点名"处理
func (s *AttendanceService) GetByDate(date string) (*model.Attendance, error) {
	a, err := s.Repo.FindByDate(date)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.Attendance{Date: date, Records: model.AttendanceRecordList{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

type AttendanceRequest struct {
	Date    string                     `json:"date" binding:"required"`
	Records model.AttendanceRecordList `json:"records"`
}

func (s *AttendanceService) Save(req AttendanceRequest) (*model.Attendance, error) {
	a := &model.Attendance{
		Date:    req.Date,
		Records: req.Records,
	}
	if err := s.Repo.Upsert(a); err != nil {
		return nil, err
	}
	return s.GetByDate(req.Date)
}

func (s *AttendanceService) Summary(date string) (model.AttendanceSummary, error) {
	a, err := s.GetByDate(date)
	if err != nil {
		return model.AttendanceSummary{}, err
	}
	return a.Summary(), nil
}
