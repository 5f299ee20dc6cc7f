package contract

import (
	"context"

	"github.com/innercircle/lessons-api/internal/domain/contract"
	"github.com/innercircle/lessons-api/internal/domain/entity"
)

// Sort keys accepted by the public listing.
const (
	SortMostSaved = "mostSaved"
	SortNewest    = "newest"
)

// ILessonUseCase drives lesson CRUD, browse, toggles and moderation flags.
type ILessonUseCase interface {
	Create(ctx context.Context, lesson *entity.Lesson) (*entity.Lesson, error)
	ListPublic(ctx context.Context, filter contract.LessonFilter, sortKey string) ([]entity.Lesson, error)
	ListMine(ctx context.Context, creatorEmail string) ([]entity.Lesson, error)
	GetByID(ctx context.Context, id string) (*entity.Lesson, error)
	Update(ctx context.Context, id string, fields contract.LessonUpdate) (*entity.Lesson, error)
	Delete(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, id, userID string) (*entity.Lesson, error)
	ToggleFavorite(ctx context.Context, id, userID string) (*entity.Lesson, error)
	AddComment(ctx context.Context, id string, comment entity.Comment) (*entity.Lesson, error)
	ListRelated(ctx context.Context, id string, limit int64) ([]entity.Lesson, error)
	SetFeatured(ctx context.Context, id string, featured bool) error
	SetReviewed(ctx context.Context, id string) error
}
