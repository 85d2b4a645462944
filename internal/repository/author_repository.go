package repository

import (
	"context"

	"gorm.io/gorm"

	"papertrack/internal/model"
)

// AuthorRepository defines author persistence operations.
type AuthorRepository interface {
	Create(ctx context.Context, author *model.Author) error
	// FindByID loads the author with its organism preloaded.
	FindByID(ctx context.Context, id string) (*model.Author, error)
	List(ctx context.Context) ([]model.Author, error)
	CountPapers(ctx context.Context, id string) (int64, error)
	Delete(ctx context.Context, id string) error
}

type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository builds a GORM-backed repository.
func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(ctx context.Context, author *model.Author) error {
	return r.db.WithContext(ctx).Create(author).Error
}

func (r *authorRepository) FindByID(ctx context.Context, id string) (*model.Author, error) {
	var author model.Author
	if err := r.db.WithContext(ctx).Preload("Organism").Where("id = ?", id).First(&author).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *authorRepository) List(ctx context.Context) ([]model.Author, error) {
	var authors []model.Author
	if err := r.db.WithContext(ctx).Preload("Organism").Order("id").Find(&authors).Error; err != nil {
		return nil, err
	}
	return authors, nil
}

// CountPapers reports how many papers still reference the author.
func (r *authorRepository) CountPapers(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Paper{}).Where("author_id = ?", id).Count(&count).Error
	return count, err
}

func (r *authorRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Author{}).Error
}
