package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"papertrack/internal/cache"
	apperrors "papertrack/internal/errors"
	"papertrack/internal/model"
	"papertrack/internal/repository"
)

const bcryptCost = 10

const userCacheTTL = 5 * time.Minute

// ErrInvalidCredentials is returned when identifier or password is incorrect.
var ErrInvalidCredentials = errors.New("invalid identifier or password")

// UserService exposes user domain operations.
type UserService interface {
	Create(ctx context.Context, id, nick, name, lastName, password string) (*model.User, error)
	Get(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, principal *model.User, id, nick, name, lastName string) (*model.User, error)
	Delete(ctx context.Context, principal *model.User, id string) error
	// Authenticate resolves Basic credentials to a user.
	Authenticate(ctx context.Context, id, password string) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) cacheKey(id string) string {
	return fmt.Sprintf("user:%s", id)
}

// Create registers a new user with a bcrypt-hashed password. The identifier
// must be a well-formed email address and must not already be taken.
func (s *userService) Create(ctx context.Context, id, nick, name, lastName, password string) (*model.User, error) {
	if !ValidEmail(id) {
		return nil, apperrors.ErrInvalidEmail
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateKey
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           id,
		Nick:         nick,
		Name:         name,
		LastName:     lastName,
		PasswordHash: string(hashed),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// Update overwrites nick, name and lastName. Only the user itself may update
// its record; the identifier is immutable.
func (s *userService) Update(ctx context.Context, principal *model.User, id, nick, name, lastName string) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	if principal == nil || principal.ID != user.ID {
		return nil, apperrors.ErrNotOwner
	}

	user.Nick = nick
	user.Name = name
	user.LastName = lastName
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return user, nil
}

// Delete removes a user. Only the user itself may delete its record.
func (s *userService) Delete(ctx context.Context, principal *model.User, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	if principal == nil || principal.ID != user.ID {
		return apperrors.ErrNotOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// Authenticate verifies a password against the stored hash. The credential
// lookup always hits the repository so revoked users fail immediately.
func (s *userService) Authenticate(ctx context.Context, id, password string) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
