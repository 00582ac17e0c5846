package service

import (
	"sync"
	"testing"
	"time"

	"school_dashboard_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionExam() *model.Exam {
	return &model.Exam{
		Title:    "Timed quiz",
		Duration: 1, // 1分钟 = 60秒
		Questions: model.ExamQuestionList{
			{Question: "Q1", Options: []string{"a", "b"}, CorrectAnswer: 0},
			{Question: "Q2", Options: []string{"a", "b", "c"}, CorrectAnswer: 2},
		},
	}
}

func TestExamSessionLifecycle(t *testing.T) {
	s := NewExamSession(sessionExam())
	assert.Equal(t, SessionNotStarted, s.State)

	// 未开始时不可作答、不可交卷
	_, err := s.SelectAnswer(0, 0)
	assert.ErrorIs(t, err, ErrSessionNotStarted)
	_, err = s.Submit()
	assert.ErrorIs(t, err, ErrSessionNotStarted)

	s, err = s.Start()
	require.NoError(t, err)
	assert.Equal(t, SessionInProgress, s.State)
	assert.Equal(t, 60, s.Remaining)

	// 重复开始报错
	_, err = s.Start()
	assert.ErrorIs(t, err, ErrSessionAlreadyStarted)

	s, err = s.SelectAnswer(1, 2)
	require.NoError(t, err)
	require.NotNil(t, s.Answers[1])
	assert.Equal(t, 2, *s.Answers[1])
	assert.Nil(t, s.Answers[0])

	// 改选覆盖之前的选择
	s, err = s.SelectAnswer(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, *s.Answers[1])

	s, err = s.Submit()
	require.NoError(t, err)
	assert.Equal(t, SessionSubmitted, s.State)

	// 终态后一切操作报错
	_, err = s.SelectAnswer(0, 0)
	assert.ErrorIs(t, err, ErrSessionSubmitted)
	_, err = s.Submit()
	assert.ErrorIs(t, err, ErrSessionSubmitted)
	_, err = s.Start()
	assert.ErrorIs(t, err, ErrSessionSubmitted)
}

func TestExamSessionIndexValidation(t *testing.T) {
	s, err := NewExamSession(sessionExam()).Start()
	require.NoError(t, err)

	_, err = s.SelectAnswer(-1, 0)
	assert.ErrorIs(t, err, ErrSessionQuestionIndex)
	_, err = s.SelectAnswer(2, 0)
	assert.ErrorIs(t, err, ErrSessionQuestionIndex)
	_, err = s.SelectAnswer(0, -1)
	assert.ErrorIs(t, err, ErrSessionOptionIndex)
	_, err = s.SelectAnswer(0, 2)
	assert.ErrorIs(t, err, ErrSessionOptionIndex)
}

func TestExamSessionTick(t *testing.T) {
	s, err := NewExamSession(sessionExam()).Start()
	require.NoError(t, err)

	for i := 0; i < 59; i++ {
		var expired bool
		s, expired = s.Tick()
		assert.False(t, expired)
	}
	assert.Equal(t, 1, s.Remaining)

	s, expired := s.Tick()
	assert.True(t, expired)
	assert.Equal(t, 0, s.Remaining)
	assert.Equal(t, 60, s.TimeTaken())

	// 耗尽后的tick不再起作用
	s, expired = s.Tick()
	assert.False(t, expired)
	assert.Equal(t, 0, s.Remaining)
}

func TestExamSessionTickBeforeStart(t *testing.T) {
	s := NewExamSession(sessionExam())
	s, expired := s.Tick()
	assert.False(t, expired)
	assert.Equal(t, SessionNotStarted, s.State)
}

func TestSessionRunnerAutoSubmit(t *testing.T) {
	exam := sessionExam()

	var mu sync.Mutex
	var submitted []ExamSession
	runner := NewSessionRunner(exam, func(s ExamSession) {
		mu.Lock()
		submitted = append(submitted, s)
		mu.Unlock()
	})
	runner.interval = time.Millisecond

	require.NoError(t, runner.Start())
	require.NoError(t, runner.SelectAnswer(0, 0))

	// 等待60个tick耗尽计时
	deadline := time.After(2 * time.Second)
	for {
		if runner.Snapshot().State == SessionSubmitted {
			break
		}
		select {
		case <-deadline:
			t.Fatal("session did not auto-submit in time")
		case <-time.After(5 * time.Millisecond):
		}
	}

	// 再等几个tick周期，确认交卷恰好触发一次、状态不再变化
	time.Sleep(20 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, submitted, 1)
	assert.Equal(t, SessionSubmitted, submitted[0].State)
	require.NotNil(t, submitted[0].Answers[0])
	assert.Equal(t, 0, *submitted[0].Answers[0])
	assert.Equal(t, 60, submitted[0].TimeTaken())
}

func TestSessionRunnerManualSubmit(t *testing.T) {
	var mu sync.Mutex
	var submitted []ExamSession
	runner := NewSessionRunner(sessionExam(), func(s ExamSession) {
		mu.Lock()
		submitted = append(submitted, s)
		mu.Unlock()
	})

	require.NoError(t, runner.Start())
	require.NoError(t, runner.SelectAnswer(1, 2))
	require.NoError(t, runner.Submit())

	// 重复交卷报错，回调只触发一次
	assert.ErrorIs(t, runner.Submit(), ErrSessionSubmitted)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, submitted, 1)
	assert.Equal(t, SessionSubmitted, submitted[0].State)
}

func TestSessionRunnerSubmitBeforeStart(t *testing.T) {
	runner := NewSessionRunner(sessionExam(), nil)
	assert.ErrorIs(t, runner.Submit(), ErrSessionNotStarted)
	assert.ErrorIs(t, runner.SelectAnswer(0, 0), ErrSessionNotStarted)
}

func TestSessionRunnerStopCancelsWithoutSubmit(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	runner := NewSessionRunner(sessionExam(), func(ExamSession) {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	runner.interval = time.Millisecond

	require.NoError(t, runner.Start())
	runner.Stop()

	time.Sleep(20 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 0, calls)
	assert.Equal(t, SessionInProgress, runner.Snapshot().State)
}
