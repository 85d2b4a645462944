package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "papertrack/internal/errors"
	"papertrack/internal/keys"
	"papertrack/internal/model"
)

func TestAuthorService_Create(t *testing.T) {
	organismID := uuid.New()
	organismKey := keys.Encode(keys.KindOrganism, organismID)

	tests := []struct {
		name        string
		id          string
		organismKey string
		setupMocks  func(repo *MockAuthorRepository, organisms *MockOrganismRepository)
		wantErr     error
	}{
		{
			name:        "success",
			id:          "alice@example.com",
			organismKey: organismKey,
			setupMocks: func(repo *MockAuthorRepository, organisms *MockOrganismRepository) {
				repo.On("FindByID", mock.Anything, "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
				organisms.On("FindByID", mock.Anything, organismID).Return(&model.Organism{ID: organismID, Name: "FOO"}, nil)
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Author")).Return(nil)
			},
		},
		{
			name:        "invalid email",
			id:          "not-an-email",
			organismKey: organismKey,
			setupMocks:  func(repo *MockAuthorRepository, organisms *MockOrganismRepository) {},
			wantErr:     apperrors.ErrInvalidEmail,
		},
		{
			name:        "duplicate id",
			id:          "alice@example.com",
			organismKey: organismKey,
			setupMocks: func(repo *MockAuthorRepository, organisms *MockOrganismRepository) {
				repo.On("FindByID", mock.Anything, "alice@example.com").Return(&model.Author{ID: "alice@example.com"}, nil)
			},
			wantErr: apperrors.ErrDuplicateKey,
		},
		{
			name:        "undecodable organism key",
			id:          "alice@example.com",
			organismKey: "!!!not-a-key!!!",
			setupMocks: func(repo *MockAuthorRepository, organisms *MockOrganismRepository) {
				repo.On("FindByID", mock.Anything, "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: apperrors.ErrDanglingReference,
		},
		{
			name:        "absent organism",
			id:          "alice@example.com",
			organismKey: organismKey,
			setupMocks: func(repo *MockAuthorRepository, organisms *MockOrganismRepository) {
				repo.On("FindByID", mock.Anything, "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
				organisms.On("FindByID", mock.Anything, organismID).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: apperrors.ErrDanglingReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockAuthorRepository)
			organisms := new(MockOrganismRepository)
			tt.setupMocks(repo, organisms)
			svc := NewAuthorService(repo, organisms)

			author, err := svc.Create(context.Background(), tt.id, "Alice", "Smith", tt.organismKey)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, author)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, author.ID)
				assert.Equal(t, organismID, author.OrganismID)
				assert.Equal(t, "FOO", author.Organism.Name)
			}
			repo.AssertExpectations(t)
			organisms.AssertExpectations(t)
		})
	}
}

func TestAuthorService_Get_NotFound(t *testing.T) {
	repo := new(MockAuthorRepository)
	repo.On("FindByID", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)
	svc := NewAuthorService(repo, new(MockOrganismRepository))

	_, err := svc.Get(context.Background(), "ghost@example.com")

	assert.ErrorIs(t, err, apperrors.ErrAuthorNotFound)
}

func TestAuthorService_Delete(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(repo *MockAuthorRepository)
		wantErr    error
	}{
		{
			name: "success without papers",
			setupMocks: func(repo *MockAuthorRepository) {
				repo.On("FindByID", mock.Anything, "alice@example.com").Return(&model.Author{ID: "alice@example.com"}, nil)
				repo.On("CountPapers", mock.Anything, "alice@example.com").Return(int64(0), nil)
				repo.On("Delete", mock.Anything, "alice@example.com").Return(nil)
			},
		},
		{
			name: "refused while papers reference the author",
			setupMocks: func(repo *MockAuthorRepository) {
				repo.On("FindByID", mock.Anything, "alice@example.com").Return(&model.Author{ID: "alice@example.com"}, nil)
				repo.On("CountPapers", mock.Anything, "alice@example.com").Return(int64(2), nil)
			},
			wantErr: apperrors.ErrHasDependents,
		},
		{
			name: "absent author",
			setupMocks: func(repo *MockAuthorRepository) {
				repo.On("FindByID", mock.Anything, "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: apperrors.ErrAuthorNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockAuthorRepository)
			tt.setupMocks(repo)
			svc := NewAuthorService(repo, new(MockOrganismRepository))

			err := svc.Delete(context.Background(), "alice@example.com")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}
