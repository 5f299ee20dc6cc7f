package contract

import (
	"context"

	"github.com/innercircle/lessons-api/internal/domain/entity"
)

// IUserUseCase drives registration and user mutations.
//
// Register is idempotent per email: registering an existing email returns the
// stored user with created=false instead of an error.
type IUserUseCase interface {
	Register(ctx context.Context, email string, displayName, photoURL *string) (user *entity.User, created bool, err error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetRole(ctx context.Context, email string) (entity.UserRole, error)
	UpdateProfile(ctx context.Context, email string, displayName, photoURL *string) (*entity.User, error)
	SetRole(ctx context.Context, id string, role entity.UserRole) error
	SetPremium(ctx context.Context, id string, premium bool) error
	ListWithLessonCounts(ctx context.Context) ([]entity.UserWithStats, error)
}
