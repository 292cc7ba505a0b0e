package user

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/prepwise/upsc-prep-lambda/internal/config"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type UserService interface {
	Register(ctx context.Context, email, password, displayName string) (*User, error)
	Authenticate(ctx context.Context, email, password string) (*User, error)
	GetProfile(ctx context.Context, userID string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*User, error)
}

type userService struct {
	repo UserRepository
}

func NewService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Register(ctx context.Context, email, password, displayName string) (*User, error) {
	log := config.WithContext(ctx)

	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
	}
	if err := s.repo.Create(u); err != nil {
		log.WithError(err).Error("failed to create user")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("user registered")
	return u, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*User, error) {
	return s.repo.GetByID(userID)
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*User, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}

	if update.DisplayName != nil {
		u.DisplayName = *update.DisplayName
	}
	if update.TargetExamDate != nil {
		u.TargetExamDate = update.TargetExamDate
	}
	if update.CurrentLevel != nil {
		u.CurrentLevel = *update.CurrentLevel
	}

	if err := s.repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}
