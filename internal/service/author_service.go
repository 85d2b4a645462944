package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "papertrack/internal/errors"
	"papertrack/internal/keys"
	"papertrack/internal/model"
	"papertrack/internal/repository"
)

// AuthorService exposes author domain operations. Authors are keyed by email
// and must reference an existing organism by its opaque key.
type AuthorService interface {
	Create(ctx context.Context, id, name, lastName, organismKey string) (*model.Author, error)
	Get(ctx context.Context, id string) (*model.Author, error)
	List(ctx context.Context) ([]model.Author, error)
	Delete(ctx context.Context, id string) error
}

type authorService struct {
	repo     repository.AuthorRepository
	organism repository.OrganismRepository
}

// NewAuthorService builds an AuthorService.
func NewAuthorService(repo repository.AuthorRepository, organism repository.OrganismRepository) AuthorService {
	return &authorService{repo: repo, organism: organism}
}

// Create inserts a new author after verifying the identifier format, that the
// id is free, and that the organism reference resolves.
func (s *authorService) Create(ctx context.Context, id, name, lastName, organismKey string) (*model.Author, error) {
	if !ValidEmail(id) {
		return nil, apperrors.ErrInvalidEmail
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateKey
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check author existence: %w", err)
	}

	// An undecodable organism key is as dangling as an absent one.
	organismID, err := keys.Decode(keys.KindOrganism, organismKey)
	if err != nil {
		return nil, apperrors.ErrDanglingReference
	}
	organism, err := s.organism.FindByID(ctx, organismID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDanglingReference
		}
		return nil, fmt.Errorf("resolve organism reference: %w", err)
	}

	author := &model.Author{
		ID:         id,
		Name:       name,
		LastName:   lastName,
		OrganismID: organism.ID,
	}
	if err := s.repo.Create(ctx, author); err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}
	author.Organism = *organism
	return author, nil
}

func (s *authorService) Get(ctx context.Context, id string) (*model.Author, error) {
	author, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAuthorNotFound
		}
		return nil, err
	}
	return author, nil
}

func (s *authorService) List(ctx context.Context) ([]model.Author, error) {
	return s.repo.List(ctx)
}

// Delete removes an author unless papers still reference it.
func (s *authorService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAuthorNotFound
		}
		return err
	}

	dependents, err := s.repo.CountPapers(ctx, id)
	if err != nil {
		return fmt.Errorf("count dependent papers: %w", err)
	}
	if dependents > 0 {
		return apperrors.ErrHasDependents
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	return nil
}
