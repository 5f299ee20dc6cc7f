package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/innercircle/lessons-api/internal/domain/contract"
	"github.com/innercircle/lessons-api/internal/domain/entity"
	usecasecontract "github.com/innercircle/lessons-api/internal/usecase/contract"
)

const defaultRelatedLimit = 6

// LessonUsecase handles the business logic around lessons: browse sorting,
// the like/favorite toggles, comments and moderation flags.
type LessonUsecase struct {
	lessonRepo contract.ILessonRepository
	logger     usecasecontract.IAppLogger
}

var _ usecasecontract.ILessonUseCase = (*LessonUsecase)(nil)

// NewLessonUsecase creates and returns a new LessonUsecase instance.
func NewLessonUsecase(lessonRepo contract.ILessonRepository, logger usecasecontract.IAppLogger) *LessonUsecase {
	return &LessonUsecase{
		lessonRepo: lessonRepo,
		logger:     logger,
	}
}

// Create stores a new lesson. Submissions always start unfeatured and
// unreviewed with empty like/favorite sets, whatever the caller sent.
func (u *LessonUsecase) Create(ctx context.Context, lesson *entity.Lesson) (*entity.Lesson, error) {
	lesson.IsFeatured = false
	lesson.Reviewed = false
	lesson.Likes = []string{}
	lesson.LikesCount = 0
	lesson.Favorites = []string{}
	lesson.FavoritesCount = 0
	if lesson.Comments == nil {
		lesson.Comments = []entity.Comment{}
	}
	if err := u.lessonRepo.Create(ctx, lesson); err != nil {
		return nil, fmt.Errorf("failed to create lesson: %w", err)
	}
	return lesson, nil
}

// ListPublic returns public lessons matching the filter. Sorting happens here
// after retrieval: "mostSaved" orders by favorites count descending, anything
// else by creation time descending.
func (u *LessonUsecase) ListPublic(ctx context.Context, filter contract.LessonFilter, sortKey string) ([]entity.Lesson, error) {
	lessons, err := u.lessonRepo.ListPublic(ctx, filter)
	if err != nil {
		return nil, err
	}
	if sortKey == usecasecontract.SortMostSaved {
		sort.SliceStable(lessons, func(i, j int) bool {
			return lessons[i].FavoritesCount > lessons[j].FavoritesCount
		})
	} else {
		sort.SliceStable(lessons, func(i, j int) bool {
			return lessons[i].CreatedAt.After(lessons[j].CreatedAt)
		})
	}
	return lessons, nil
}

// ListMine returns lessons newest first, optionally narrowed to one creator.
func (u *LessonUsecase) ListMine(ctx context.Context, creatorEmail string) ([]entity.Lesson, error) {
	return u.lessonRepo.ListByCreator(ctx, creatorEmail)
}

// GetByID returns a single lesson.
func (u *LessonUsecase) GetByID(ctx context.Context, id string) (*entity.Lesson, error) {
	return u.lessonRepo.GetByID(ctx, id)
}

// Update replaces the editable field subset and stamps updatedAt.
func (u *LessonUsecase) Update(ctx context.Context, id string, fields contract.LessonUpdate) (*entity.Lesson, error) {
	return u.lessonRepo.Update(ctx, id, fields)
}

// Delete removes a lesson. Reports filed against it are left in place for
// the moderation queue to clear explicitly.
func (u *LessonUsecase) Delete(ctx context.Context, id string) error {
	return u.lessonRepo.Delete(ctx, id)
}

// ToggleLike adds userID to the lesson's likes when absent and removes it
// when present, keeping likesCount equal to the set size. Membership is
// checked before mutating so repeated toggles never skew the counter.
func (u *LessonUsecase) ToggleLike(ctx context.Context, id, userID string) (*entity.Lesson, error) {
	lesson, err := u.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lesson.HasLike(userID) {
		return u.lessonRepo.RemoveLike(ctx, id, userID)
	}
	return u.lessonRepo.AddLike(ctx, id, userID)
}

// ToggleFavorite mirrors ToggleLike for the favorites set and its counter.
func (u *LessonUsecase) ToggleFavorite(ctx context.Context, id, userID string) (*entity.Lesson, error) {
	lesson, err := u.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lesson.HasFavorite(userID) {
		return u.lessonRepo.RemoveFavorite(ctx, id, userID)
	}
	return u.lessonRepo.AddFavorite(ctx, id, userID)
}

// AddComment appends to the lesson's ordered comment sequence.
func (u *LessonUsecase) AddComment(ctx context.Context, id string, comment entity.Comment) (*entity.Lesson, error) {
	return u.lessonRepo.AddComment(ctx, id, comment)
}

// ListRelated returns up to limit public lessons sharing the lesson's
// category or tone, excluding the lesson itself.
func (u *LessonUsecase) ListRelated(ctx context.Context, id string, limit int64) ([]entity.Lesson, error) {
	if limit <= 0 {
		limit = defaultRelatedLimit
	}
	lesson, err := u.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.lessonRepo.ListRelated(ctx, id, lesson.Category, lesson.Tone, limit)
}

// SetFeatured overwrites the featured flag.
func (u *LessonUsecase) SetFeatured(ctx context.Context, id string, featured bool) error {
	return u.lessonRepo.SetFeatured(ctx, id, featured)
}

// SetReviewed marks the lesson as reviewed by moderation.
func (u *LessonUsecase) SetReviewed(ctx context.Context, id string) error {
	return u.lessonRepo.SetReviewed(ctx, id)
}
