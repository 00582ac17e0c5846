package repository

import (
	"school_dashboard_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GradeRepository struct {
	DB *gorm.DB
}

func NewGradeRepository(db *gorm.DB) *GradeRepository {
	return &GradeRepository{DB: db}
}

func (r *GradeRepository) List() ([]model.Grade, error) {
	var grades []model.Grade
	err := r.DB.Find(&grades).Error
	return grades, err
}

// Upsert 同一 (student, assignment) 组合只保留最新分数
func (r *GradeRepository) Upsert(grade *model.Grade) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "assignment_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(grade).Error
}

func (r *GradeRepository) FindByStudentAndAssignment(studentID, assignmentID uint) (*model.Grade, error) {
	var g model.Grade
	err := r.DB.Where("student_id = ? AND assignment_id = ?", studentID, assignmentID).First(&g).Error
	return &g, err
}

func (r *GradeRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Grade{}).Count(&count).Error
	return count, err
}
