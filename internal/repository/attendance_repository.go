package repository

import (
	"school_dashboard_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRepository struct {
	DB *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

func (r *AttendanceRepository) FindByDate(date string) (*model.Attendance, error) {
	var a model.Attendance
	err := r.DB.Where("date = ?", date).First(&a).Error
	return &a, err
}

// Upsert 按日期覆盖整份出勤记录
func (r *AttendanceRepository) Upsert(a *model.Attendance) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"records", "updated_at"}),
	}).Create(a).Error
}
