package mocks

import (
	"context"

	"github.com/innercircle/lessons-api/internal/domain/contract"
	"github.com/innercircle/lessons-api/internal/domain/entity"
	usecasecontract "github.com/innercircle/lessons-api/internal/usecase/contract"
)

// MockSummaryUsecase is a mock implementation of the summary usecase interface
type MockSummaryUsecase struct {
	// Control mock behavior
	ShouldFailUserSummary   bool
	ShouldFailUserAnalytics bool
	ShouldFailAdminSummary  bool
}

// Ensure MockSummaryUsecase implements the correct interface for handler.NewSummaryHandler
var _ usecasecontract.ISummaryUseCase = (*MockSummaryUsecase)(nil)

func NewMockSummaryUsecase() *MockSummaryUsecase {
	return &MockSummaryUsecase{}
}

func (m *MockSummaryUsecase) UserSummary(ctx context.Context, email string) (*entity.UserSummary, error) {
	if m.ShouldFailUserSummary {
		return nil, contract.ErrUserNotFound
	}
	return &entity.UserSummary{
		TotalLessons:   5,
		TotalFavorites: 2,
		RecentLessons:  []entity.Lesson{},
	}, nil
}

func (m *MockSummaryUsecase) UserAnalytics(ctx context.Context, email string) ([]entity.CategoryToneCount, error) {
	if m.ShouldFailUserAnalytics {
		return nil, contract.ErrUserNotFound
	}
	return []entity.CategoryToneCount{
		{Month: "2025-06", Category: "Growth", Tone: "Hopeful", Count: 3},
	}, nil
}

func (m *MockSummaryUsecase) AdminSummary(ctx context.Context) (*entity.AdminSummary, error) {
	if m.ShouldFailAdminSummary {
		return nil, contract.ErrUserNotFound
	}
	return &entity.AdminSummary{
		TotalUsers:      10,
		TotalLessons:    42,
		TotalReports:    3,
		TopContributors: []entity.Contributor{{Email: "author@example.com", TotalLessons: 7}},
		LessonsToday:    1,
		LessonsPerMonth: []entity.MonthlyCount{{Month: "2025-06", Count: 8}},
		UsersPerMonth:   []entity.MonthlyCount{{Month: "2025-06", Count: 4}},
	}, nil
}
