package util

import "errors"

var (
	ErrUserNotFound        = errors.New("用户不存在")
	ErrEmailRegistered     = errors.New("该邮箱已被注册")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrStudentNotFound     = errors.New("student not found")
	ErrExamNotFound        = errors.New("exam not found")
	ErrExamTitleRequired   = errors.New("exam title is required")
	ErrExamNoQuestions     = errors.New("exam requires at least one question")
	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrAnnouncementMissing = errors.New("announcement title and content are required")
)
