package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamQuestionListTotalMarks(t *testing.T) {
	tests := []struct {
		name      string
		questions ExamQuestionList
		want      int
	}{
		{"empty", ExamQuestionList{}, 0},
		{"default one mark each", ExamQuestionList{{Marks: 0}, {Marks: 0}, {Marks: 0}}, 3},
		{"weighted", ExamQuestionList{{Marks: 5}, {Marks: 3}, {Marks: 0}}, 9},
		{"negative treated as one", ExamQuestionList{{Marks: -2}, {Marks: 4}}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.questions.TotalMarks())
		})
	}
}

func TestSubmissionPercentage(t *testing.T) {
	tests := []struct {
		name       string
		score      int
		totalMarks int
		want       float64
	}{
		{"full", 3, 3, 100.00},
		{"two thirds", 2, 3, 66.67},
		{"one third", 1, 3, 33.33},
		{"zero", 0, 3, 0.00},
		{"zero total guards division", 5, 0, 0.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ExamSubmission{Score: tt.score, TotalMarks: tt.totalMarks}
			assert.Equal(t, tt.want, s.Percentage())
		})
	}
}

func TestAnswerListJSONNull(t *testing.T) {
	var answers AnswerList
	require.NoError(t, json.Unmarshal([]byte(`[0,null,2]`), &answers))

	require.Len(t, answers, 3)
	require.NotNil(t, answers[0])
	assert.Equal(t, 0, *answers[0])
	assert.Nil(t, answers[1])
	require.NotNil(t, answers[2])
	assert.Equal(t, 2, *answers[2])

	out, err := json.Marshal(answers)
	require.NoError(t, err)
	assert.JSONEq(t, `[0,null,2]`, string(out))
}

func TestAnswerListScan(t *testing.T) {
	var answers AnswerList
	require.NoError(t, answers.Scan([]byte(`[1,null]`)))
	require.Len(t, answers, 2)
	assert.Equal(t, 1, *answers[0])
	assert.Nil(t, answers[1])

	var fromString AnswerList
	require.NoError(t, fromString.Scan(`[null,0]`))
	require.Len(t, fromString, 2)

	var empty AnswerList
	require.NoError(t, empty.Scan([]byte{}))
	assert.Nil(t, empty)

	assert.Error(t, empty.Scan(42))
}

func TestExamQuestionListRoundTrip(t *testing.T) {
	questions := ExamQuestionList{
		{Question: "Q1", Options: []string{"a", "b"}, CorrectAnswer: 1, Marks: 5},
	}

	value, err := questions.Value()
	require.NoError(t, err)

	var decoded ExamQuestionList
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, questions, decoded)
}

func TestAttendanceSummary(t *testing.T) {
	a := Attendance{
		Date: "2026-03-02",
		Records: AttendanceRecordList{
			{StudentID: 1, Status: Present},
			{StudentID: 2, Status: Present},
			{StudentID: 3, Status: Absent},
			{StudentID: 4, Status: Late},
		},
	}

	s := a.Summary()
	assert.Equal(t, 2, s.Present)
	assert.Equal(t, 1, s.Absent)
	assert.Equal(t, 1, s.Late)

	empty := Attendance{Date: "2026-03-03"}
	assert.Equal(t, AttendanceSummary{}, empty.Summary())
}
