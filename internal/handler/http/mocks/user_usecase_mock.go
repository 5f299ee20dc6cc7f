package mocks

import (
	"context"
	"errors"

	"github.com/innercircle/lessons-api/internal/domain/contract"
	"github.com/innercircle/lessons-api/internal/domain/entity"
	usecasecontract "github.com/innercircle/lessons-api/internal/usecase/contract"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserUsecase is a mock implementation of the user usecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister      bool
	ShouldFailGetByEmail    bool
	ShouldFailGetRole       bool
	ShouldFailUpdateProfile bool
	ShouldFailSetRole       bool
	ShouldFailSetPremium    bool
	ShouldFailListUsers     bool

	// RegisterExisting makes Register report the email as already taken.
	RegisterExisting bool

	// Return values
	MockUser entity.User
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	name := "Test User"
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:          primitive.NewObjectID(),
			Email:       "test@example.com",
			Role:        entity.UserRoleUser,
			DisplayName: &name,
		},
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, email string, displayName, photoURL *string) (*entity.User, bool, error) {
	if m.ShouldFailRegister {
		return nil, false, errors.New("registration failed")
	}
	if m.RegisterExisting {
		return &m.MockUser, false, nil
	}
	return &m.MockUser, true, nil
}

func (m *MockUserUsecase) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.ShouldFailGetByEmail {
		return nil, contract.ErrUserNotFound
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) GetRole(ctx context.Context, email string) (entity.UserRole, error) {
	if m.ShouldFailGetRole {
		return "", errors.New("role lookup failed")
	}
	return m.MockUser.Role, nil
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, email string, displayName, photoURL *string) (*entity.User, error) {
	if m.ShouldFailUpdateProfile {
		return nil, contract.ErrUserNotFound
	}
	user := m.MockUser
	user.DisplayName = displayName
	user.PhotoURL = photoURL
	return &user, nil
}

func (m *MockUserUsecase) SetRole(ctx context.Context, id string, role entity.UserRole) error {
	if m.ShouldFailSetRole {
		return contract.ErrUserNotFound
	}
	return nil
}

func (m *MockUserUsecase) SetPremium(ctx context.Context, id string, premium bool) error {
	if m.ShouldFailSetPremium {
		return contract.ErrUserNotFound
	}
	return nil
}

func (m *MockUserUsecase) ListWithLessonCounts(ctx context.Context) ([]entity.UserWithStats, error) {
	if m.ShouldFailListUsers {
		return nil, errors.New("listing users failed")
	}
	return []entity.UserWithStats{{User: m.MockUser, TotalLessons: 4}}, nil
}
