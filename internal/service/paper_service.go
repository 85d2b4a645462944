package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"papertrack/internal/cache"
	apperrors "papertrack/internal/errors"
	"papertrack/internal/keys"
	"papertrack/internal/model"
	"papertrack/internal/repository"
)

const paperCacheTTL = 5 * time.Minute

// PaperService exposes paper domain operations. Papers are keyed by opaque
// keys and must reference an existing author by email.
type PaperService interface {
	Create(ctx context.Context, title, authorID string) (*model.Paper, string, error)
	Get(ctx context.Context, key string) (*model.Paper, error)
	List(ctx context.Context) ([]model.Paper, error)
	Delete(ctx context.Context, principal *model.User, key string) error
}

type paperService struct {
	repo   repository.PaperRepository
	author repository.AuthorRepository
	cache  *cache.Client
}

// NewPaperService builds a PaperService with repositories and cache.
func NewPaperService(repo repository.PaperRepository, author repository.AuthorRepository, cache *cache.Client) PaperService {
	return &paperService{repo: repo, author: author, cache: cache}
}

func (s *paperService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("paper:%s", id)
}

// Create inserts a new paper after verifying the author reference resolves.
func (s *paperService) Create(ctx context.Context, title, authorID string) (*model.Paper, string, error) {
	if _, err := s.author.FindByID(ctx, authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrDanglingReference
		}
		return nil, "", fmt.Errorf("resolve author reference: %w", err)
	}

	paper := &model.Paper{
		Title:    title,
		AuthorID: authorID,
	}
	if err := s.repo.Create(ctx, paper); err != nil {
		return nil, "", fmt.Errorf("create paper: %w", err)
	}
	return paper, keys.Encode(keys.KindPaper, paper.ID), nil
}

// Get resolves an opaque key. An undecodable key reads as not-found.
func (s *paperService) Get(ctx context.Context, key string) (*model.Paper, error) {
	id, err := keys.Decode(keys.KindPaper, key)
	if err != nil {
		return nil, apperrors.ErrPaperNotFound
	}

	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Paper
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	paper, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaperNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(paper); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, paperCacheTTL)
	}
	return paper, nil
}

func (s *paperService) List(ctx context.Context) ([]model.Paper, error) {
	return s.repo.List(ctx)
}

// Delete removes a paper. The authenticated user must be the paper's author:
// its identifier has to equal the paper's author reference.
func (s *paperService) Delete(ctx context.Context, principal *model.User, key string) error {
	id, err := keys.Decode(keys.KindPaper, key)
	if err != nil {
		return apperrors.ErrPaperNotFound
	}

	paper, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPaperNotFound
		}
		return err
	}
	if principal == nil || principal.ID != paper.AuthorID {
		return apperrors.ErrNotOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete paper: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
