package service

import (
	"sync"
	"testing"

	"school_dashboard_backend/internal/model"
	"school_dashboard_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeExamStore 内存实现，行为与 repository.ExamRepository 对齐
type fakeExamStore struct {
	mu          sync.Mutex
	nextID      uint
	exams       map[uint]*model.Exam
	submissions []model.ExamSubmission
}

func newFakeExamStore() *fakeExamStore {
	return &fakeExamStore{exams: make(map[uint]*model.Exam)}
}

func (f *fakeExamStore) CreateExam(exam *model.Exam) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	exam.ID = f.nextID
	copied := *exam
	f.exams[exam.ID] = &copied
	return nil
}

func (f *fakeExamStore) FindExamByID(id uint) (*model.Exam, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	exam, ok := f.exams[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *exam
	return &copied, nil
}

func (f *fakeExamStore) ListExams() ([]model.Exam, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Exam, 0, len(f.exams))
	for _, exam := range f.exams {
		out = append(out, *exam)
	}
	return out, nil
}

func (f *fakeExamStore) UpdateExam(exam *model.Exam) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *exam
	f.exams[exam.ID] = &copied
	return nil
}

func (f *fakeExamStore) DeleteExam(id uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.exams[id]; !ok {
		return false, nil
	}
	delete(f.exams, id)
	return true, nil
}

func (f *fakeExamStore) CreateSubmission(s *model.ExamSubmission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s.ID == "" {
		s.ID = model.GenerateUUID()
	}
	f.submissions = append(f.submissions, *s)
	return nil
}

func (f *fakeExamStore) ListSubmissionsByStudent(studentID uint) ([]model.ExamSubmission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.ExamSubmission
	for _, s := range f.submissions {
		if s.StudentID == studentID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeExamStore) ListSubmissionsByExam(examID uint) ([]model.ExamSubmission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.ExamSubmission
	for _, s := range f.submissions {
		if s.ExamID == examID {
			out = append(out, s)
		}
	}
	return out, nil
}

func intp(v int) *int {
	return &v
}

func threeQuestionExam() ExamRequest {
	return ExamRequest{
		Title:    "Midterm",
		Duration: 30,
		Questions: []ExamQuestionRequest{
			{Question: "Q1", Options: []string{"a", "b", "c"}, CorrectAnswer: 0},
			{Question: "Q2", Options: []string{"a", "b", "c"}, CorrectAnswer: 1},
			{Question: "Q3", Options: []string{"a", "b", "c"}, CorrectAnswer: 2},
		},
	}
}

func TestScoreAnswers(t *testing.T) {
	questions := model.ExamQuestionList{
		{Question: "Q1", Options: []string{"a", "b", "c"}, CorrectAnswer: 0},
		{Question: "Q2", Options: []string{"a", "b", "c"}, CorrectAnswer: 1},
		{Question: "Q3", Options: []string{"a", "b", "c"}, CorrectAnswer: 2},
	}

	tests := []struct {
		name    string
		answers model.AnswerList
		want    int
	}{
		{"all correct", model.AnswerList{intp(0), intp(1), intp(2)}, 3},
		{"two correct", model.AnswerList{intp(0), intp(1), intp(0)}, 2},
		{"none correct", model.AnswerList{intp(1), intp(2), intp(0)}, 0},
		{"unanswered counts zero", model.AnswerList{intp(0), nil, intp(2)}, 2},
		{"all unanswered", model.AnswerList{nil, nil, nil}, 0},
		{"short answer vector", model.AnswerList{intp(0)}, 1},
		{"empty answer vector", model.AnswerList{}, 0},
		{"out of range never matches", model.AnswerList{intp(5), intp(-1), intp(2)}, 1},
		{"extra answers ignored", model.AnswerList{intp(0), intp(1), intp(2), intp(0)}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreAnswers(questions, tt.answers))
		})
	}
}

func TestScoreAnswersWeightedMarks(t *testing.T) {
	questions := model.ExamQuestionList{
		{Question: "Q1", Options: []string{"a", "b"}, CorrectAnswer: 0, Marks: 5},
		{Question: "Q2", Options: []string{"a", "b"}, CorrectAnswer: 1, Marks: 3},
		// 未设置分值的题按1分计
		{Question: "Q3", Options: []string{"a", "b"}, CorrectAnswer: 0},
	}

	assert.Equal(t, 9, ScoreAnswers(questions, model.AnswerList{intp(0), intp(1), intp(0)}))
	assert.Equal(t, 5, ScoreAnswers(questions, model.AnswerList{intp(0), intp(0), intp(1)}))
}

func TestCreateExamValidation(t *testing.T) {
	svc := NewExamService(newFakeExamStore())

	_, err := svc.CreateExam(ExamRequest{Questions: threeQuestionExam().Questions}, "t@school.com")
	assert.ErrorIs(t, err, util.ErrExamTitleRequired)

	_, err = svc.CreateExam(ExamRequest{Title: "Empty"}, "t@school.com")
	assert.ErrorIs(t, err, util.ErrExamNoQuestions)

	_, err = svc.CreateExam(ExamRequest{
		Title:     "One option",
		Questions: []ExamQuestionRequest{{Question: "Q1", Options: []string{"a"}, CorrectAnswer: 0}},
	}, "t@school.com")
	assert.Error(t, err)

	_, err = svc.CreateExam(ExamRequest{
		Title:     "Bad answer",
		Questions: []ExamQuestionRequest{{Question: "Q1", Options: []string{"a", "b"}, CorrectAnswer: 2}},
	}, "t@school.com")
	assert.Error(t, err)
}

func TestCreateExamRecomputesTotalMarks(t *testing.T) {
	svc := NewExamService(newFakeExamStore())

	req := threeQuestionExam()
	req.TotalMarks = 999

	exam, err := svc.CreateExam(req, "teacher@school.com")
	require.NoError(t, err)
	assert.Equal(t, 3, exam.TotalMarks)
	assert.Equal(t, "teacher@school.com", exam.CreatedBy)
}

func TestUpdateExam(t *testing.T) {
	store := newFakeExamStore()
	svc := NewExamService(store)

	exam, err := svc.CreateExam(threeQuestionExam(), "t@school.com")
	require.NoError(t, err)

	updated := ExamRequest{
		Title: "Midterm v2",
		Questions: []ExamQuestionRequest{
			{Question: "Q1", Options: []string{"a", "b"}, CorrectAnswer: 1, Marks: 10},
		},
		Duration: 45,
	}

	got, err := svc.UpdateExam(exam.ID, updated)
	require.NoError(t, err)
	assert.Equal(t, "Midterm v2", got.Title)
	assert.Equal(t, 10, got.TotalMarks)
	assert.Equal(t, 45, got.Duration)

	_, err = svc.UpdateExam(exam.ID+100, updated)
	assert.ErrorIs(t, err, util.ErrExamNotFound)
}

func TestDeleteExam(t *testing.T) {
	svc := NewExamService(newFakeExamStore())

	exam, err := svc.CreateExam(threeQuestionExam(), "t@school.com")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteExam(exam.ID))
	assert.ErrorIs(t, svc.DeleteExam(exam.ID), util.ErrExamNotFound)

	_, err = svc.GetExam(exam.ID)
	assert.ErrorIs(t, err, util.ErrExamNotFound)
}

func TestSubmitExam(t *testing.T) {
	store := newFakeExamStore()
	svc := NewExamService(store)

	exam, err := svc.CreateExam(threeQuestionExam(), "t@school.com")
	require.NoError(t, err)

	tests := []struct {
		name           string
		answers        model.AnswerList
		wantScore      int
		wantPercentage float64
	}{
		{"full marks", model.AnswerList{intp(0), intp(1), intp(2)}, 3, 100.00},
		{"partial", model.AnswerList{intp(0), intp(1), intp(0)}, 2, 66.67},
		{"zero", model.AnswerList{intp(1), intp(2), intp(0)}, 0, 0.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.SubmitExam(exam.ID, ExamSubmissionRequest{
				StudentID: 7,
				Answers:   tt.answers,
				TimeTaken: 120,
			})
			require.NoError(t, err)
			assert.NotEmpty(t, result.SubmissionID)
			assert.Equal(t, tt.wantScore, result.Score)
			assert.Equal(t, 3, result.TotalMarks)
			assert.Equal(t, tt.wantPercentage, result.Percentage)
		})
	}

	// 每次提交都追加一条新记录，允许重复作答
	submissions, err := svc.GetStudentResults(7)
	require.NoError(t, err)
	assert.Len(t, submissions, len(tests))
}

func TestSubmitExamNotFound(t *testing.T) {
	store := newFakeExamStore()
	svc := NewExamService(store)

	_, err := svc.SubmitExam(42, ExamSubmissionRequest{
		StudentID: 7,
		Answers:   model.AnswerList{intp(0)},
	})
	assert.ErrorIs(t, err, util.ErrExamNotFound)

	// 考试不存在时不判分也不落盘
	assert.Empty(t, store.submissions)
}

func TestSubmitExamSnapshotsTotalMarks(t *testing.T) {
	store := newFakeExamStore()
	svc := NewExamService(store)

	exam, err := svc.CreateExam(threeQuestionExam(), "t@school.com")
	require.NoError(t, err)

	result, err := svc.SubmitExam(exam.ID, ExamSubmissionRequest{
		StudentID: 3,
		Answers:   model.AnswerList{intp(0), intp(1), intp(2)},
	})
	require.NoError(t, err)
	require.Equal(t, 3, result.TotalMarks)

	// 之后调整考试分值不回溯已判分的答卷
	updated := threeQuestionExam()
	updated.Questions[0].Marks = 50
	_, err = svc.UpdateExam(exam.ID, updated)
	require.NoError(t, err)

	submissions, err := svc.GetStudentResults(3)
	require.NoError(t, err)
	require.Len(t, submissions, 1)
	assert.Equal(t, 3, submissions[0].TotalMarks)
	assert.Equal(t, 100.00, submissions[0].Percentage())
}

func TestGetExamSubmissions(t *testing.T) {
	store := newFakeExamStore()
	svc := NewExamService(store)

	exam, err := svc.CreateExam(threeQuestionExam(), "t@school.com")
	require.NoError(t, err)

	for studentID := uint(1); studentID <= 3; studentID++ {
		_, err := svc.SubmitExam(exam.ID, ExamSubmissionRequest{
			StudentID: studentID,
			Answers:   model.AnswerList{intp(0), nil, nil},
		})
		require.NoError(t, err)
	}

	submissions, err := svc.GetExamSubmissions(exam.ID)
	require.NoError(t, err)
	assert.Len(t, submissions, 3)
}
