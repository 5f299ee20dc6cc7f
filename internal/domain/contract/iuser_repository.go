package contract

import (
	"context"

	"github.com/innercircle/lessons-api/internal/domain/entity"
)

// IUserRepository encapsulates access to the users collection.
type IUserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	UpdateProfile(ctx context.Context, email string, displayName, photoURL *string) (*entity.User, error)
	SetRole(ctx context.Context, id string, role entity.UserRole) error
	SetPremium(ctx context.Context, id string, premium bool) error
	ListWithLessonCounts(ctx context.Context) ([]entity.UserWithStats, error)
}
