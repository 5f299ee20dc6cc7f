package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/innercircle/lessons-api/internal/domain/contract"
	"github.com/innercircle/lessons-api/internal/domain/entity"
	"github.com/innercircle/lessons-api/internal/usecase"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeSummaryRepo returns canned aggregation results.
type fakeSummaryRepo struct {
	lessonsByCreator int64
	favoritedBy      int64
	recent           []entity.Lesson
	analytics        []entity.CategoryToneCount

	users        int64
	lessons      int64
	reports      int64
	contributors []entity.Contributor
	since        int64
	lessonSeries []entity.MonthlyCount
	userSeries   []entity.MonthlyCount

	lastSince time.Time
}

var _ contract.ISummaryRepository = (*fakeSummaryRepo)(nil)

func (r *fakeSummaryRepo) CountLessonsByCreator(ctx context.Context, email string) (int64, error) {
	return r.lessonsByCreator, nil
}

func (r *fakeSummaryRepo) CountFavoritedBy(ctx context.Context, email string) (int64, error) {
	return r.favoritedBy, nil
}

func (r *fakeSummaryRepo) RecentLessonsByCreator(ctx context.Context, email string, limit int64) ([]entity.Lesson, error) {
	if int64(len(r.recent)) > limit {
		return r.recent[:limit], nil
	}
	return r.recent, nil
}

func (r *fakeSummaryRepo) CreatorAnalytics(ctx context.Context, email string) ([]entity.CategoryToneCount, error) {
	return r.analytics, nil
}

func (r *fakeSummaryRepo) CountUsers(ctx context.Context) (int64, error)         { return r.users, nil }
func (r *fakeSummaryRepo) CountPublicLessons(ctx context.Context) (int64, error) { return r.lessons, nil }
func (r *fakeSummaryRepo) CountReports(ctx context.Context) (int64, error)       { return r.reports, nil }

func (r *fakeSummaryRepo) TopContributors(ctx context.Context, limit int64) ([]entity.Contributor, error) {
	return r.contributors, nil
}

func (r *fakeSummaryRepo) CountLessonsSince(ctx context.Context, since time.Time) (int64, error) {
	r.lastSince = since
	return r.since, nil
}

func (r *fakeSummaryRepo) LessonsPerMonth(ctx context.Context) ([]entity.MonthlyCount, error) {
	return r.lessonSeries, nil
}

func (r *fakeSummaryRepo) UsersPerMonth(ctx context.Context) ([]entity.MonthlyCount, error) {
	return r.userSeries, nil
}

func registeredUserRepo(email string) *fakeUserRepo {
	repo := newFakeUserRepo()
	repo.users[email] = &entity.User{ID: primitive.NewObjectID(), Email: email, Role: entity.UserRoleUser}
	return repo
}

func TestUserSummary_ComposesCounts(t *testing.T) {
	summaryRepo := &fakeSummaryRepo{
		lessonsByCreator: 7,
		favoritedBy:      3,
		recent: []entity.Lesson{
			{Title: "one"}, {Title: "two"}, {Title: "three"}, {Title: "four"},
		},
	}
	u := usecase.NewSummaryUsecase(registeredUserRepo("a@example.com"), summaryRepo)

	summary, err := u.UserSummary(context.Background(), "a@example.com")

	assert.NoError(t, err)
	assert.Equal(t, 7, summary.TotalLessons)
	assert.Equal(t, 3, summary.TotalFavorites)
	// recent lessons are capped at three
	assert.Len(t, summary.RecentLessons, 3)
}

func TestUserSummary_UnknownUser(t *testing.T) {
	u := usecase.NewSummaryUsecase(newFakeUserRepo(), &fakeSummaryRepo{})

	_, err := u.UserSummary(context.Background(), "nobody@example.com")

	assert.ErrorIs(t, err, contract.ErrUserNotFound)
}

func TestUserAnalytics_UnknownUser(t *testing.T) {
	u := usecase.NewSummaryUsecase(newFakeUserRepo(), &fakeSummaryRepo{})

	_, err := u.UserAnalytics(context.Background(), "nobody@example.com")

	assert.ErrorIs(t, err, contract.ErrUserNotFound)
}

func TestUserAnalytics_PassesRowsThrough(t *testing.T) {
	summaryRepo := &fakeSummaryRepo{
		analytics: []entity.CategoryToneCount{
			{Month: "2025-05", Category: "Growth", Tone: "Hopeful", Count: 2},
			{Month: "2025-06", Category: "Career", Tone: "Sad", Count: 1},
		},
	}
	u := usecase.NewSummaryUsecase(registeredUserRepo("a@example.com"), summaryRepo)

	rows, err := u.UserAnalytics(context.Background(), "a@example.com")

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "2025-05", rows[0].Month)
}

func TestAdminSummary_TodayStartsAtLocalMidnight(t *testing.T) {
	summaryRepo := &fakeSummaryRepo{
		users:        10,
		lessons:      42,
		reports:      3,
		contributors: []entity.Contributor{{Email: "a@example.com", TotalLessons: 7}},
		since:        2,
		lessonSeries: []entity.MonthlyCount{{Month: "2025-06", Count: 8}},
		userSeries:   []entity.MonthlyCount{{Month: "2025-06", Count: 4}},
	}
	u := usecase.NewSummaryUsecase(newFakeUserRepo(), summaryRepo)

	summary, err := u.AdminSummary(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(10), summary.TotalUsers)
	assert.Equal(t, int64(42), summary.TotalLessons)
	assert.Equal(t, int64(3), summary.TotalReports)
	assert.Equal(t, int64(2), summary.LessonsToday)
	assert.Len(t, summary.TopContributors, 1)

	now := time.Now()
	wantMidnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	assert.Equal(t, wantMidnight, summaryRepo.lastSince)
}
