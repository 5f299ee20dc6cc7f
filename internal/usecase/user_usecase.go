package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/innercircle/lessons-api/internal/domain/contract"
	"github.com/innercircle/lessons-api/internal/domain/entity"
	usecasecontract "github.com/innercircle/lessons-api/internal/usecase/contract"
)

// UserUsecase handles registration and user mutations.
type UserUsecase struct {
	userRepo contract.IUserRepository
	logger   usecasecontract.IAppLogger
}

var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// NewUserUsecase creates and returns a new UserUsecase instance.
func NewUserUsecase(userRepo contract.IUserRepository, logger usecasecontract.IAppLogger) *UserUsecase {
	return &UserUsecase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register stores a new user with the default role and no premium flag.
// Registering an email that already exists returns the stored document with
// created=false rather than an error. The existence pre-check and the insert
// are separate store operations, so two concurrent registrations of the same
// email can still race; the store is the arbiter of which insert lands.
func (u *UserUsecase) Register(ctx context.Context, email string, displayName, photoURL *string) (*entity.User, bool, error) {
	existing, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, contract.ErrUserNotFound) {
		return nil, false, fmt.Errorf("failed to check for existing user: %w", err)
	}

	user := &entity.User{
		Email:       email,
		Role:        entity.DefaultRole(),
		IsPremium:   false,
		DisplayName: displayName,
		PhotoURL:    photoURL,
		CreatedAt:   time.Now(),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, false, fmt.Errorf("failed to register user: %w", err)
	}
	u.logger.Infof("registered user %s", email)
	return user, true, nil
}

// GetByEmail returns the user for the given email.
func (u *UserUsecase) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return u.userRepo.GetByEmail(ctx, email)
}

// GetRole returns the stored role, or the default role when the email is
// unknown.
func (u *UserUsecase) GetRole(ctx context.Context, email string) (entity.UserRole, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return entity.DefaultRole(), nil
		}
		return "", err
	}
	return user.Role, nil
}

// UpdateProfile overwrites the display name and photo URL unconditionally.
func (u *UserUsecase) UpdateProfile(ctx context.Context, email string, displayName, photoURL *string) (*entity.User, error) {
	return u.userRepo.UpdateProfile(ctx, email, displayName, photoURL)
}

// SetRole overwrites the role. The value is stored as given; role membership
// is not validated here.
func (u *UserUsecase) SetRole(ctx context.Context, id string, role entity.UserRole) error {
	return u.userRepo.SetRole(ctx, id, role)
}

// SetPremium overwrites the premium flag. Used by the payment-confirmation
// flow and by admin tooling.
func (u *UserUsecase) SetPremium(ctx context.Context, id string, premium bool) error {
	return u.userRepo.SetPremium(ctx, id, premium)
}

// ListWithLessonCounts returns every user annotated with how many lessons
// they created.
func (u *UserUsecase) ListWithLessonCounts(ctx context.Context) ([]entity.UserWithStats, error) {
	return u.userRepo.ListWithLessonCounts(ctx)
}
