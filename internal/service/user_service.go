package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"school_dashboard_backend/internal/model"
	"school_dashboard_backend/internal/repository"
	"school_dashboard_backend/internal/util"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	Repo    *repository.UserRepository
	Storage *StorageService
}

func NewUserService(repo *repository.UserRepository, storage *StorageService) *UserService {
	return &UserService{Repo: repo, Storage: storage}
}

func (s *UserService) GetUser(id uint) (*model.User, error) {
	user, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

func (s *UserService) ListUsers(role, keyword string) ([]model.User, error) {
	return s.Repo.List(role, keyword)
}

type ProfileUpdateRequest struct {
	Name string `json:"name"`
}

func (s *UserService) UpdateProfile(userID uint, req ProfileUpdateRequest) (*model.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if err := s.Repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UploadAvatar 上传头像到配置的存储后端（本地或MinIO）
func (s *UserService) UploadAvatar(ctx context.Context, userID uint, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("avatars/%d_%d%s", userID, time.Now().Unix(), filepath.Ext(filename))
	url, err := s.Storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return "", err
	}

	user.Avatar = url
	if err := s.Repo.Update(user); err != nil {
		return "", err
	}
	return url, nil
}

func (s *UserService) ResetPassword(userID uint, newPassword string) error {
	user, err := s.GetUser(userID)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return s.Repo.Update(user)
}

func (s *UserService) SetDisabled(userID uint, disabled bool) error {
	if _, err := s.GetUser(userID); err != nil {
		return err
	}
	return s.Repo.SetDisabled(userID, disabled)
}
