package service

import (
	"context"
	"errors"
	"fmt"

	"PokeGallery/internal/middleware"
	"PokeGallery/internal/model"
	"PokeGallery/internal/repo"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService — регистрация, вход и профиль. Выпускает bearer-токены сессии.
type UserService struct {
	repo       repo.UserRepository
	authSecret string
}

func NewUserService(r repo.UserRepository, authSecret string) *UserService {
	return &UserService{repo: r, authSecret: authSecret}
}

// ProfilePatch — частичное обновление профиля: nil-поле не трогаем.
type ProfilePatch struct {
	Name  *string
	Email *string
}

// Register создаёт пользователя и возвращает его вместе с токеном.
func (s *UserService) Register(ctx context.Context, email, password, name string) (*model.User, string, error) {
	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, &model.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: string(hash),
		Name:     name,
	})
	if err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := middleware.NewToken(user.ID, user.Email, s.authSecret)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login проверяет пару email/пароль и выпускает токен.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrBadCredentials
		}
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", ErrBadCredentials
	}

	token, err := middleware.NewToken(user.ID, user.Email, s.authSecret)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Profile возвращает пользователя по id из токена.
func (s *UserService) Profile(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// UpdateProfile применяет только присутствующие поля; смена email
// проверяется на занятость.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (*model.User, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil && *patch.Email != user.Email {
		existing, err := s.repo.GetUserByEmail(ctx, *patch.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check email: %w", err)
		}
		if existing != nil {
			return nil, ErrEmailTaken
		}
		user.Email = *patch.Email
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}

	if err := s.repo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

// ChangePassword требует текущий пароль.
func (s *UserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)) != nil {
		return ErrBadCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.Password = string(hash)

	if err := s.repo.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}
