package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"papertrack/internal/model"
)

// OrganismRepository defines organism persistence operations.
type OrganismRepository interface {
	Create(ctx context.Context, organism *model.Organism) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organism, error)
	List(ctx context.Context) ([]model.Organism, error)
	CountAuthors(ctx context.Context, id uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type organismRepository struct {
	db *gorm.DB
}

// NewOrganismRepository builds a GORM-backed repository.
func NewOrganismRepository(db *gorm.DB) OrganismRepository {
	return &organismRepository{db: db}
}

func (r *organismRepository) Create(ctx context.Context, organism *model.Organism) error {
	return r.db.WithContext(ctx).Create(organism).Error
}

func (r *organismRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organism, error) {
	var organism model.Organism
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&organism).Error; err != nil {
		return nil, err
	}
	return &organism, nil
}

func (r *organismRepository) List(ctx context.Context) ([]model.Organism, error) {
	var organisms []model.Organism
	if err := r.db.WithContext(ctx).Order("created_at").Find(&organisms).Error; err != nil {
		return nil, err
	}
	return organisms, nil
}

// CountAuthors reports how many authors still reference the organism.
func (r *organismRepository) CountAuthors(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Author{}).Where("organism_id = ?", id).Count(&count).Error
	return count, err
}

func (r *organismRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Organism{}).Error
}
