package repository

import (
	"school_dashboard_backend/internal/model"

	"gorm.io/gorm"
)

type ExamRepository struct {
	DB *gorm.DB
}

func NewExamRepository(db *gorm.DB) *ExamRepository {
	return &ExamRepository{DB: db}
}

func (r *ExamRepository) CreateExam(exam *model.Exam) error {
	return r.DB.Create(exam).Error
}

func (r *ExamRepository) FindExamByID(id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.First(&exam, id).Error
	return &exam, err
}

func (r *ExamRepository) ListExams() ([]model.Exam, error) {
	var exams []model.Exam
	err := r.DB.Find(&exams).Error
	return exams, err
}

func (r *ExamRepository) UpdateExam(exam *model.Exam) error {
	return r.DB.Save(exam).Error
}

// DeleteExam 删除考试定义，历史答卷保留不级联
func (r *ExamRepository) DeleteExam(id uint) (bool, error) {
	result := r.DB.Delete(&model.Exam{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ExamRepository) CreateSubmission(s *model.ExamSubmission) error {
	return r.DB.Create(s).Error
}

func (r *ExamRepository) ListSubmissionsByStudent(studentID uint) ([]model.ExamSubmission, error) {
	var ss []model.ExamSubmission
	err := r.DB.Where("student_id = ?", studentID).Order("submitted_at desc").Find(&ss).Error
	return ss, err
}

func (r *ExamRepository) ListSubmissionsByExam(examID uint) ([]model.ExamSubmission, error) {
	var ss []model.ExamSubmission
	err := r.DB.Where("exam_id = ?", examID).Order("submitted_at desc").Find(&ss).Error
	return ss, err
}
