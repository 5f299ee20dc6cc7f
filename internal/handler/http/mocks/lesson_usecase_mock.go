package mocks

import (
	"context"
	"errors"

	"github.com/innercircle/lessons-api/internal/domain/contract"
	"github.com/innercircle/lessons-api/internal/domain/entity"
	usecasecontract "github.com/innercircle/lessons-api/internal/usecase/contract"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockLessonUsecase is a mock implementation of the lesson usecase interface
type MockLessonUsecase struct {
	// Control mock behavior
	ShouldFailCreate      bool
	ShouldFailListPublic  bool
	ShouldFailListMine    bool
	ShouldFailGetByID     bool
	ShouldFailUpdate      bool
	ShouldFailDelete      bool
	ShouldFailToggle      bool
	ShouldFailAddComment  bool
	ShouldFailListRelated bool
	ShouldFailSetFeatured bool
	ShouldFailSetReviewed bool

	// Return values
	MockLesson entity.Lesson

	// Captured arguments
	LastSortKey string
	LastFilter  contract.LessonFilter
	LastLimit   int64
}

// Ensure MockLessonUsecase implements the correct interface for handler.NewLessonHandler
var _ usecasecontract.ILessonUseCase = (*MockLessonUsecase)(nil)

func NewMockLessonUsecase() *MockLessonUsecase {
	return &MockLessonUsecase{
		MockLesson: entity.Lesson{
			ID:           primitive.NewObjectID(),
			Title:        "Patience pays",
			Description:  "A lesson about waiting",
			Category:     "Growth",
			Tone:         "Hopeful",
			Privacy:      entity.PrivacyPublic,
			CreatorEmail: "author@example.com",
			Likes:        []string{},
			Favorites:    []string{},
			Comments:     []entity.Comment{},
		},
	}
}

func (m *MockLessonUsecase) Create(ctx context.Context, lesson *entity.Lesson) (*entity.Lesson, error) {
	if m.ShouldFailCreate {
		return nil, errors.New("lesson creation failed")
	}
	return &m.MockLesson, nil
}

func (m *MockLessonUsecase) ListPublic(ctx context.Context, filter contract.LessonFilter, sortKey string) ([]entity.Lesson, error) {
	if m.ShouldFailListPublic {
		return nil, errors.New("listing lessons failed")
	}
	m.LastFilter = filter
	m.LastSortKey = sortKey
	return []entity.Lesson{m.MockLesson}, nil
}

func (m *MockLessonUsecase) ListMine(ctx context.Context, creatorEmail string) ([]entity.Lesson, error) {
	if m.ShouldFailListMine {
		return nil, errors.New("listing lessons failed")
	}
	return []entity.Lesson{m.MockLesson}, nil
}

func (m *MockLessonUsecase) GetByID(ctx context.Context, id string) (*entity.Lesson, error) {
	if m.ShouldFailGetByID {
		return nil, contract.ErrLessonNotFound
	}
	return &m.MockLesson, nil
}

func (m *MockLessonUsecase) Update(ctx context.Context, id string, fields contract.LessonUpdate) (*entity.Lesson, error) {
	if m.ShouldFailUpdate {
		return nil, contract.ErrLessonNotFound
	}
	lesson := m.MockLesson
	lesson.Title = fields.Title
	return &lesson, nil
}

func (m *MockLessonUsecase) Delete(ctx context.Context, id string) error {
	if m.ShouldFailDelete {
		return contract.ErrLessonNotFound
	}
	return nil
}

func (m *MockLessonUsecase) ToggleLike(ctx context.Context, id, userID string) (*entity.Lesson, error) {
	if m.ShouldFailToggle {
		return nil, contract.ErrLessonNotFound
	}
	lesson := m.MockLesson
	lesson.Likes = []string{userID}
	lesson.LikesCount = 1
	return &lesson, nil
}

func (m *MockLessonUsecase) ToggleFavorite(ctx context.Context, id, userID string) (*entity.Lesson, error) {
	if m.ShouldFailToggle {
		return nil, contract.ErrLessonNotFound
	}
	lesson := m.MockLesson
	lesson.Favorites = []string{userID}
	lesson.FavoritesCount = 1
	return &lesson, nil
}

func (m *MockLessonUsecase) AddComment(ctx context.Context, id string, comment entity.Comment) (*entity.Lesson, error) {
	if m.ShouldFailAddComment {
		return nil, contract.ErrLessonNotFound
	}
	lesson := m.MockLesson
	lesson.Comments = append(lesson.Comments, comment)
	return &lesson, nil
}

func (m *MockLessonUsecase) ListRelated(ctx context.Context, id string, limit int64) ([]entity.Lesson, error) {
	if m.ShouldFailListRelated {
		return nil, contract.ErrLessonNotFound
	}
	m.LastLimit = limit
	return []entity.Lesson{m.MockLesson}, nil
}

func (m *MockLessonUsecase) SetFeatured(ctx context.Context, id string, featured bool) error {
	if m.ShouldFailSetFeatured {
		return contract.ErrLessonNotFound
	}
	return nil
}

func (m *MockLessonUsecase) SetReviewed(ctx context.Context, id string) error {
	if m.ShouldFailSetReviewed {
		return contract.ErrLessonNotFound
	}
	return nil
}
