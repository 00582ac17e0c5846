package service

import (
	"errors"
	"fmt"
	"school_dashboard_backend/internal/model"
	"school_dashboard_backend/internal/util"
	"school_dashboard_backend/pkg/monitoring"
	"time"

	"gorm.io/gorm"
)

// ExamStore 考试及答卷的持久化接口，由 repository.ExamRepository 实现
type ExamStore interface {
	CreateExam(exam *model.Exam) error
	FindExamByID(id uint) (*model.Exam, error)
	ListExams() ([]model.Exam, error)
	UpdateExam(exam *model.Exam) error
	DeleteExam(id uint) (bool, error)
	CreateSubmission(s *model.ExamSubmission) error
	ListSubmissionsByStudent(studentID uint) ([]model.ExamSubmission, error)
	ListSubmissionsByExam(examID uint) ([]model.ExamSubmission, error)
}

type ExamService struct {
	Store ExamStore
}

func NewExamService(store ExamStore) *ExamService {
	return &ExamService{Store: store}
}

type ExamQuestionRequest struct {
	Question      string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required"`
	CorrectAnswer int      `json:"correctAnswer"`
	Marks         int      `json:"marks"`
}

// ExamRequest 创建/更新考试的请求体。客户端传来的 totalMarks 一律忽略，
// 总分始终由服务端按题目分值重算。
type ExamRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Questions   []ExamQuestionRequest `json:"questions"`
	Duration    int                   `json:"duration"`
	TotalMarks  int                   `json:"totalMarks"`
	AssignedTo  []uint                `json:"assignedTo"`
}

func (req *ExamRequest) validate() error {
	if req.Title == "" {
		return util.ErrExamTitleRequired
	}
	if len(req.Questions) == 0 {
		return util.ErrExamNoQuestions
	}
	for i, q := range req.Questions {
		if len(q.Options) < 2 {
			return fmt.Errorf("question %d needs at least 2 options", i+1)
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return fmt.Errorf("question %d has an out-of-range correct answer", i+1)
		}
	}
	return nil
}

func (req *ExamRequest) questions() model.ExamQuestionList {
	qs := make(model.ExamQuestionList, len(req.Questions))
	for i, q := range req.Questions {
		qs[i] = model.ExamQuestion{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Marks:         q.Marks,
		}
	}
	return qs
}

func (s *ExamService) CreateExam(req ExamRequest, createdBy string) (*model.Exam, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	questions := req.questions()
	exam := &model.Exam{
		Title:       req.Title,
		Description: req.Description,
		Questions:   questions,
		Duration:    req.Duration,
		TotalMarks:  questions.TotalMarks(),
		AssignedTo:  req.AssignedTo,
		CreatedBy:   createdBy,
	}

	if err := s.Store.CreateExam(exam); err != nil {
		return nil, err
	}
	return exam, nil
}

func (s *ExamService) ListExams() ([]model.Exam, error) {
	return s.Store.ListExams()
}

func (s *ExamService) GetExam(id uint) (*model.Exam, error) {
	exam, err := s.Store.FindExamByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrExamNotFound
	}
	return exam, err
}

func (s *ExamService) UpdateExam(id uint, req ExamRequest) (*model.Exam, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	exam, err := s.GetExam(id)
	if err != nil {
		return nil, err
	}

	questions := req.questions()
	exam.Title = req.Title
	exam.Description = req.Description
	exam.Questions = questions
	exam.Duration = req.Duration
	exam.TotalMarks = questions.TotalMarks()
	exam.AssignedTo = req.AssignedTo

	if err := s.Store.UpdateExam(exam); err != nil {
		return nil, err
	}
	return exam, nil
}

// DeleteExam 删除考试定义。历史答卷保留，展示时需容忍考试已不存在。
func (s *ExamService) DeleteExam(id uint) error {
	deleted, err := s.Store.DeleteExam(id)
	if err != nil {
		return err
	}
	if !deleted {
		return util.ErrExamNotFound
	}
	return nil
}

type ExamSubmissionRequest struct {
	StudentID uint             `json:"studentId" binding:"required"`
	Answers   model.AnswerList `json:"answers"`
	TimeTaken int              `json:"timeTaken"`
}

type ExamSubmissionResult struct {
	SubmissionID string  `json:"submissionId"`
	Score        int     `json:"score"`
	TotalMarks   int     `json:"totalMarks"`
	Percentage   float64 `json:"percentage"`
}

// ScoreAnswers 服务端判分：逐题比对答卷与答案下标，命中累加分值
// （未设置分值的题按1分计）。未作答、越界或缺失的答卷项一律计零分。
func ScoreAnswers(questions model.ExamQuestionList, answers model.AnswerList) int {
	score := 0
	for i, q := range questions {
		if i >= len(answers) || answers[i] == nil {
			continue
		}
		if *answers[i] != q.CorrectAnswer {
			continue
		}
		marks := q.Marks
		if marks <= 0 {
			marks = 1
		}
		score += marks
	}
	return score
}

// SubmitExam 判分并原子落盘一份不可变答卷记录。考试不存在时
// 不判分也不落盘。
func (s *ExamService) SubmitExam(examID uint, req ExamSubmissionRequest) (*ExamSubmissionResult, error) {
	exam, err := s.GetExam(examID)
	if err != nil {
		if errors.Is(err, util.ErrExamNotFound) {
			monitoring.ExamSubmissionCounter.WithLabelValues("not_found").Inc()
		}
		return nil, err
	}

	// 总分取自存储的考试定义，不信任客户端
	totalMarks := exam.Questions.TotalMarks()
	score := ScoreAnswers(exam.Questions, req.Answers)

	submission := &model.ExamSubmission{
		ExamID:      examID,
		StudentID:   req.StudentID,
		Answers:     req.Answers,
		Score:       score,
		TotalMarks:  totalMarks,
		TimeTaken:   req.TimeTaken,
		SubmittedAt: time.Now(),
	}

	if err := s.Store.CreateSubmission(submission); err != nil {
		monitoring.ExamSubmissionCounter.WithLabelValues("error").Inc()
		return nil, err
	}

	monitoring.ExamSubmissionCounter.WithLabelValues("scored").Inc()

	return &ExamSubmissionResult{
		SubmissionID: submission.ID,
		Score:        score,
		TotalMarks:   totalMarks,
		Percentage:   submission.Percentage(),
	}, nil
}

func (s *ExamService) GetStudentResults(studentID uint) ([]model.ExamSubmission, error) {
	return s.Store.ListSubmissionsByStudent(studentID)
}

func (s *ExamService) GetExamSubmissions(examID uint) ([]model.ExamSubmission, error) {
	return s.Store.ListSubmissionsByExam(examID)
}
