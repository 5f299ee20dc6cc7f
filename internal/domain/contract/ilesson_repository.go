package contract

import (
	"context"

	"github.com/innercircle/lessons-api/internal/domain/entity"
)

// LessonFilter narrows the public listing. Search is a case-insensitive
// substring match on the title; Category and Tone are exact matches.
type LessonFilter struct {
	Search   string
	Category string
	Tone     string
}

// LessonUpdate is the fixed field subset an edit may touch. Anything outside
// it is dropped by the handler before the repository ever sees it.
type LessonUpdate struct {
	Title       string
	Description string
	Category    string
	Tone        string
	Image       string
	Privacy     string
	AccessLevel string
}

// ILessonRepository encapsulates access to the lessons collection.
//
// The Add/Remove pairs for likes and favorites apply the set mutation and the
// paired counter change in a single document update; deciding which of the
// pair to call (the membership check) is the caller's job.
type ILessonRepository interface {
	Create(ctx context.Context, lesson *entity.Lesson) error
	ListPublic(ctx context.Context, filter LessonFilter) ([]entity.Lesson, error)
	ListByCreator(ctx context.Context, creatorEmail string) ([]entity.Lesson, error)
	GetByID(ctx context.Context, id string) (*entity.Lesson, error)
	Update(ctx context.Context, id string, fields LessonUpdate) (*entity.Lesson, error)
	Delete(ctx context.Context, id string) error

	AddLike(ctx context.Context, id, userID string) (*entity.Lesson, error)
	RemoveLike(ctx context.Context, id, userID string) (*entity.Lesson, error)
	AddFavorite(ctx context.Context, id, userID string) (*entity.Lesson, error)
	RemoveFavorite(ctx context.Context, id, userID string) (*entity.Lesson, error)

	AddComment(ctx context.Context, id string, comment entity.Comment) (*entity.Lesson, error)
	ListRelated(ctx context.Context, id, category, tone string, limit int64) ([]entity.Lesson, error)
	SetFeatured(ctx context.Context, id string, featured bool) error
	SetReviewed(ctx context.Context, id string) error
}
