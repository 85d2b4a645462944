package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "papertrack/internal/errors"
	"papertrack/internal/model"
)

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(repo *MockUserRepository)
		wantErr   error
	}{
		{
			name: "success",
			id:   "foo@bar.com",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByID", mock.Anything, "foo@bar.com").Return(nil, gorm.ErrRecordNotFound)
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:      "invalid email",
			id:        "not-an-email",
			setupMock: func(repo *MockUserRepository) {},
			wantErr:   apperrors.ErrInvalidEmail,
		},
		{
			name: "duplicate id",
			id:   "foo@bar.com",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByID", mock.Anything, "foo@bar.com").Return(&model.User{ID: "foo@bar.com"}, nil)
			},
			wantErr: apperrors.ErrDuplicateKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			svc := NewUserService(repo, nil)

			user, err := svc.Create(context.Background(), tt.id, "foo", "Foo", "Bar", "foobar")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, user.ID)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("foobar")))
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_Create_DuplicateDoesNotOverwrite(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, "foo@bar.com").Return(&model.User{ID: "foo@bar.com", Name: "Original"}, nil)
	svc := NewUserService(repo, nil)

	_, err := svc.Create(context.Background(), "foo@bar.com", "foo", "Foo", "Bar", "foobar")

	assert.ErrorIs(t, err, apperrors.ErrDuplicateKey)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Update(t *testing.T) {
	owner := &model.User{ID: "foo@bar.com"}
	stranger := &model.User{ID: "other@bar.com"}

	tests := []struct {
		name      string
		principal *model.User
		setupMock func(repo *MockUserRepository)
		wantErr   error
	}{
		{
			name:      "owner updates",
			principal: owner,
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByID", mock.Anything, "foo@bar.com").Return(&model.User{ID: "foo@bar.com", Name: "Foo"}, nil)
				repo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:      "foreign principal rejected",
			principal: stranger,
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByID", mock.Anything, "foo@bar.com").Return(&model.User{ID: "foo@bar.com"}, nil)
			},
			wantErr: apperrors.ErrNotOwner,
		},
		{
			name:      "absent user",
			principal: owner,
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByID", mock.Anything, "foo@bar.com").Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			svc := NewUserService(repo, nil)

			user, err := svc.Update(context.Background(), tt.principal, "foo@bar.com", "nick", "New", "Name")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "New", user.Name)
				assert.Equal(t, "Name", user.LastName)
				assert.Equal(t, "nick", user.Nick)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_Delete_ForeignPrincipal(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, "foo@bar.com").Return(&model.User{ID: "foo@bar.com"}, nil)
	svc := NewUserService(repo, nil)

	err := svc.Delete(context.Background(), &model.User{ID: "other@bar.com"}, "foo@bar.com")

	assert.ErrorIs(t, err, apperrors.ErrNotOwner)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUserService_Delete_Owner(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, "foo@bar.com").Return(&model.User{ID: "foo@bar.com"}, nil)
	repo.On("Delete", mock.Anything, "foo@bar.com").Return(nil)
	svc := NewUserService(repo, nil)

	err := svc.Delete(context.Background(), &model.User{ID: "foo@bar.com"}, "foo@bar.com")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUserService_Authenticate(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("foobar"), bcrypt.MinCost)
	assert.NoError(t, err)
	stored := &model.User{ID: "foo@bar.com", PasswordHash: string(hashed)}

	tests := []struct {
		name      string
		password  string
		setupMock func(repo *MockUserRepository)
		wantErr   error
	}{
		{
			name:     "valid credentials",
			password: "foobar",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByID", mock.Anything, "foo@bar.com").Return(stored, nil)
			},
		},
		{
			name:     "wrong password",
			password: "nope",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByID", mock.Anything, "foo@bar.com").Return(stored, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "unknown user",
			password: "foobar",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByID", mock.Anything, "foo@bar.com").Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			svc := NewUserService(repo, nil)

			user, err := svc.Authenticate(context.Background(), "foo@bar.com", tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "foo@bar.com", user.ID)
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"foo@bar.com", "a.b+c_d-e@host-name.co.uk"}
	invalid := []string{"", "foobar", "foo@", "@bar.com", "foo@bar", "foo bar@baz.com"}

	for _, s := range valid {
		assert.True(t, ValidEmail(s), s)
	}
	for _, s := range invalid {
		assert.False(t, ValidEmail(s), s)
	}
}
