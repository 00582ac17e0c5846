package service

import (
	"errors"
	"sync"
	"time"

	"school_dashboard_backend/internal/model"
)

// 考试会话状态机：NotStarted → InProgress → Submitted，Submitted 为终态。
const (
	SessionNotStarted = "not_started"
	SessionInProgress = "in_progress"
	SessionSubmitted  = "submitted"
)

var (
	ErrSessionNotStarted     = errors.New("exam session has not been started")
	ErrSessionAlreadyStarted = errors.New("exam session already started")
	ErrSessionSubmitted      = errors.New("exam session already submitted")
	ErrSessionQuestionIndex  = errors.New("question index out of range")
	ErrSessionOptionIndex    = errors.New("option index out of range")
)

// ExamSession 一次答题会话的状态值。所有转移函数返回新值而不是
// 原地修改，便于单独测试状态机。
type ExamSession struct {
	State     string
	Exam      *model.Exam
	Remaining int // 秒
	Answers   model.AnswerList
}

func NewExamSession(exam *model.Exam) ExamSession {
	return ExamSession{
		State:   SessionNotStarted,
		Exam:    exam,
		Answers: make(model.AnswerList, len(exam.Questions)),
	}
}

func (s ExamSession) Start() (ExamSession, error) {
	switch s.State {
	case SessionInProgress:
		return s, ErrSessionAlreadyStarted
	case SessionSubmitted:
		return s, ErrSessionSubmitted
	}
	s.State = SessionInProgress
	s.Remaining = s.Exam.Duration * 60
	return s, nil
}

// SelectAnswer 选择或改选某题的选项，题目可乱序作答
func (s ExamSession) SelectAnswer(question, option int) (ExamSession, error) {
	if s.State != SessionInProgress {
		if s.State == SessionSubmitted {
			return s, ErrSessionSubmitted
		}
		return s, ErrSessionNotStarted
	}
	if question < 0 || question >= len(s.Exam.Questions) {
		return s, ErrSessionQuestionIndex
	}
	if option < 0 || option >= len(s.Exam.Questions[question].Options) {
		return s, ErrSessionOptionIndex
	}

	answers := make(model.AnswerList, len(s.Answers))
	copy(answers, s.Answers)
	selected := option
	answers[question] = &selected
	s.Answers = answers
	return s, nil
}

// Tick 倒计时一秒。第二个返回值为真表示计时耗尽，应触发自动交卷。
func (s ExamSession) Tick() (ExamSession, bool) {
	if s.State != SessionInProgress || s.Remaining <= 0 {
		return s, false
	}
	s.Remaining--
	return s, s.Remaining == 0
}

// Submit 交卷，终态转移。自动交卷与手动交卷走同一条路径。
func (s ExamSession) Submit() (ExamSession, error) {
	switch s.State {
	case SessionNotStarted:
		return s, ErrSessionNotStarted
	case SessionSubmitted:
		return s, ErrSessionSubmitted
	}
	s.State = SessionSubmitted
	return s, nil
}

// TimeTaken 已耗时（秒）
func (s ExamSession) TimeTaken() int {
	return s.Exam.Duration*60 - s.Remaining
}

// SessionRunner 用可取消的秒级定时任务驱动会话倒计时。交卷转移
// 之后不再有任何 tick 被应用，保证自动交卷恰好触发一次。
type SessionRunner struct {
	mu       sync.Mutex
	session  ExamSession
	onSubmit func(ExamSession)
	done     chan struct{}
	interval time.Duration
	stopped  bool
}

func NewSessionRunner(exam *model.Exam, onSubmit func(ExamSession)) *SessionRunner {
	return &SessionRunner{
		session:  NewExamSession(exam),
		onSubmit: onSubmit,
		done:     make(chan struct{}),
		interval: time.Second,
	}
}

func (r *SessionRunner) Start() error {
	r.mu.Lock()
	next, err := r.session.Start()
	if err != nil {
		r.mu.Unlock()
		return err
	}
	r.session = next
	r.mu.Unlock()

	go r.run()
	return nil
}

func (r *SessionRunner) run() {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return
		case <-ticker.C:
			if r.tick() {
				return
			}
		}
	}
}

// tick 返回真表示会话已结束，定时循环应退出
func (r *SessionRunner) tick() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.session.State != SessionInProgress {
		return true
	}

	next, expired := r.session.Tick()
	r.session = next
	if !expired {
		return false
	}

	// 计时耗尽：带着当前已记录的答案自动交卷
	return r.submitLocked()
}

func (r *SessionRunner) submitLocked() bool {
	next, err := r.session.Submit()
	if err != nil {
		return true
	}
	r.session = next
	if !r.stopped {
		r.stopped = true
		close(r.done)
	}
	if r.onSubmit != nil {
		r.onSubmit(r.session)
	}
	return true
}

func (r *SessionRunner) SelectAnswer(question, option int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next, err := r.session.SelectAnswer(question, option)
	if err != nil {
		return err
	}
	r.session = next
	return nil
}

// Submit 手动交卷
func (r *SessionRunner) Submit() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session.State == SessionSubmitted {
		return ErrSessionSubmitted
	}
	if r.session.State == SessionNotStarted {
		return ErrSessionNotStarted
	}
	r.submitLocked()
	return nil
}

// Stop 取消会话（离开页面等场景），不触发交卷
func (r *SessionRunner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.stopped {
		r.stopped = true
		close(r.done)
	}
}

// Snapshot 当前会话状态的副本
func (r *SessionRunner) Snapshot() ExamSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session
}
