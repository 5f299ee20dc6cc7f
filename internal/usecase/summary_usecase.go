package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/innercircle/lessons-api/internal/domain/contract"
	"github.com/innercircle/lessons-api/internal/domain/entity"
	usecasecontract "github.com/innercircle/lessons-api/internal/usecase/contract"
)

const recentLessonLimit = 3
const topContributorLimit = 3

// SummaryUsecase computes the dashboard snapshots. Every call re-scans the
// relevant collections through the summary repository; nothing is cached.
type SummaryUsecase struct {
	userRepo    contract.IUserRepository
	summaryRepo contract.ISummaryRepository
}

var _ usecasecontract.ISummaryUseCase = (*SummaryUsecase)(nil)

// NewSummaryUsecase creates and returns a new SummaryUsecase instance.
func NewSummaryUsecase(userRepo contract.IUserRepository, summaryRepo contract.ISummaryRepository) *SummaryUsecase {
	return &SummaryUsecase{
		userRepo:    userRepo,
		summaryRepo: summaryRepo,
	}
}

// UserSummary returns the per-user dashboard: how many lessons the user
// created, how many lessons carry their email in the favorites set, and
// their three most recent lessons.
func (u *SummaryUsecase) UserSummary(ctx context.Context, email string) (*entity.UserSummary, error) {
	if _, err := u.userRepo.GetByEmail(ctx, email); err != nil {
		return nil, err
	}

	totalLessons, err := u.summaryRepo.CountLessonsByCreator(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to count lessons: %w", err)
	}
	totalFavorites, err := u.summaryRepo.CountFavoritedBy(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to count favorites: %w", err)
	}
	recent, err := u.summaryRepo.RecentLessonsByCreator(ctx, email, recentLessonLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent lessons: %w", err)
	}

	return &entity.UserSummary{
		TotalLessons:   int(totalLessons),
		TotalFavorites: int(totalFavorites),
		RecentLessons:  recent,
	}, nil
}

// UserAnalytics groups the user's lessons by (month, category, tone) with a
// count per group, months ascending. Lessons without a creation date are
// excluded by the pipeline.
func (u *SummaryUsecase) UserAnalytics(ctx context.Context, email string) ([]entity.CategoryToneCount, error) {
	if _, err := u.userRepo.GetByEmail(ctx, email); err != nil {
		return nil, err
	}
	return u.summaryRepo.CreatorAnalytics(ctx, email)
}

// AdminSummary returns the platform-wide dashboard. "Today" starts at local
// midnight of the server's timezone.
func (u *SummaryUsecase) AdminSummary(ctx context.Context) (*entity.AdminSummary, error) {
	totalUsers, err := u.summaryRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	totalLessons, err := u.summaryRepo.CountPublicLessons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count public lessons: %w", err)
	}
	totalReports, err := u.summaryRepo.CountReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count reports: %w", err)
	}
	top, err := u.summaryRepo.TopContributors(ctx, topContributorLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load top contributors: %w", err)
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	lessonsToday, err := u.summaryRepo.CountLessonsSince(ctx, midnight)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's lessons: %w", err)
	}

	lessonSeries, err := u.summaryRepo.LessonsPerMonth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load lesson series: %w", err)
	}
	userSeries, err := u.summaryRepo.UsersPerMonth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user series: %w", err)
	}

	return &entity.AdminSummary{
		TotalUsers:      totalUsers,
		TotalLessons:    totalLessons,
		TotalReports:    totalReports,
		TopContributors: top,
		LessonsToday:    lessonsToday,
		LessonsPerMonth: lessonSeries,
		UsersPerMonth:   userSeries,
	}, nil
}
