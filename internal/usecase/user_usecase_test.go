package usecase_test

import (
	"context"
	"testing"

	"github.com/innercircle/lessons-api/internal/domain/contract"
	"github.com/innercircle/lessons-api/internal/domain/entity"
	"github.com/innercircle/lessons-api/internal/usecase"
	usecasecontract "github.com/innercircle/lessons-api/internal/usecase/contract"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// noopLogger keeps usecase tests quiet.
type noopLogger struct{}

var _ usecasecontract.IAppLogger = (*noopLogger)(nil)

func (noopLogger) Debugf(format string, args ...interface{}) {}
func (noopLogger) Infof(format string, args ...interface{})  {}
func (noopLogger) Warnf(format string, args ...interface{})  {}
func (noopLogger) Errorf(format string, args ...interface{}) {}
func (noopLogger) Fatalf(format string, args ...interface{}) {}

// fakeUserRepo is an in-memory stand-in for the users collection.
type fakeUserRepo struct {
	users map[string]*entity.User // keyed by email
}

var _ contract.IUserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, contract.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, user := range r.users {
		if user.ID.Hex() == id {
			return user, nil
		}
	}
	return nil, contract.ErrUserNotFound
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, email string, displayName, photoURL *string) (*entity.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, contract.ErrUserNotFound
	}
	user.DisplayName = displayName
	user.PhotoURL = photoURL
	return user, nil
}

func (r *fakeUserRepo) SetRole(ctx context.Context, id string, role entity.UserRole) error {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	user.Role = role
	return nil
}

func (r *fakeUserRepo) SetPremium(ctx context.Context, id string, premium bool) error {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	user.IsPremium = premium
	return nil
}

func (r *fakeUserRepo) ListWithLessonCounts(ctx context.Context) ([]entity.UserWithStats, error) {
	out := make([]entity.UserWithStats, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, entity.UserWithStats{User: *user})
	}
	return out, nil
}

func TestRegister_NewUser(t *testing.T) {
	repo := newFakeUserRepo()
	u := usecase.NewUserUsecase(repo, noopLogger{})

	user, created, err := u.Register(context.Background(), "a@example.com", nil, nil)

	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "a@example.com", user.Email)
	assert.Equal(t, entity.UserRoleUser, user.Role)
	assert.False(t, user.IsPremium)
	assert.False(t, user.ID.IsZero())
	assert.Len(t, repo.users, 1)
}

func TestRegister_ExistingEmailReturnsStoredUser(t *testing.T) {
	repo := newFakeUserRepo()
	u := usecase.NewUserUsecase(repo, noopLogger{})

	first, created, err := u.Register(context.Background(), "a@example.com", nil, nil)
	assert.NoError(t, err)
	assert.True(t, created)

	name := "Someone Else"
	second, created, err := u.Register(context.Background(), "a@example.com", &name, nil)
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	// the second payload never touches the stored document
	assert.Nil(t, second.DisplayName)
	assert.Len(t, repo.users, 1)
}

func TestGetRole_UnknownEmailDefaults(t *testing.T) {
	repo := newFakeUserRepo()
	u := usecase.NewUserUsecase(repo, noopLogger{})

	role, err := u.GetRole(context.Background(), "nobody@example.com")

	assert.NoError(t, err)
	assert.Equal(t, entity.DefaultRole(), role)
}

func TestGetRole_KnownEmail(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["admin@example.com"] = &entity.User{
		ID:    primitive.NewObjectID(),
		Email: "admin@example.com",
		Role:  entity.UserRoleAdmin,
	}
	u := usecase.NewUserUsecase(repo, noopLogger{})

	role, err := u.GetRole(context.Background(), "admin@example.com")

	assert.NoError(t, err)
	assert.Equal(t, entity.UserRoleAdmin, role)
}

func TestSetPremium_UnknownID(t *testing.T) {
	repo := newFakeUserRepo()
	u := usecase.NewUserUsecase(repo, noopLogger{})

	err := u.SetPremium(context.Background(), primitive.NewObjectID().Hex(), true)

	assert.ErrorIs(t, err, contract.ErrUserNotFound)
}
