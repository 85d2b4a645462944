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

const organismCacheTTL = 5 * time.Minute

// OrganismService exposes organism domain operations. Lookup keys are the
// opaque URL-safe strings handed out at creation time.
type OrganismService interface {
	Create(ctx context.Context, name, address, country string) (*model.Organism, string, error)
	Get(ctx context.Context, key string) (*model.Organism, error)
	List(ctx context.Context) ([]model.Organism, error)
	Delete(ctx context.Context, key string) error
}

type organismService struct {
	repo  repository.OrganismRepository
	cache *cache.Client
}

// NewOrganismService builds an OrganismService with repository and cache.
func NewOrganismService(repo repository.OrganismRepository, cache *cache.Client) OrganismService {
	return &organismService{repo: repo, cache: cache}
}

func (s *organismService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("organism:%s", id)
}

func (s *organismService) Create(ctx context.Context, name, address, country string) (*model.Organism, string, error) {
	organism := &model.Organism{
		Name:    name,
		Address: address,
		Country: country,
	}
	if err := s.repo.Create(ctx, organism); err != nil {
		return nil, "", fmt.Errorf("create organism: %w", err)
	}
	return organism, keys.Encode(keys.KindOrganism, organism.ID), nil
}

// Get resolves an opaque key. An undecodable key reads as not-found.
func (s *organismService) Get(ctx context.Context, key string) (*model.Organism, error) {
	id, err := keys.Decode(keys.KindOrganism, key)
	if err != nil {
		return nil, apperrors.ErrOrganismNotFound
	}

	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Organism
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	organism, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganismNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(organism); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, organismCacheTTL)
	}
	return organism, nil
}

func (s *organismService) List(ctx context.Context) ([]model.Organism, error) {
	return s.repo.List(ctx)
}

// Delete removes an organism unless authors still reference it.
func (s *organismService) Delete(ctx context.Context, key string) error {
	id, err := keys.Decode(keys.KindOrganism, key)
	if err != nil {
		return apperrors.ErrOrganismNotFound
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganismNotFound
		}
		return err
	}

	dependents, err := s.repo.CountAuthors(ctx, id)
	if err != nil {
		return fmt.Errorf("count dependent authors: %w", err)
	}
	if dependents > 0 {
		return apperrors.ErrHasDependents
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete organism: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
