package contract

import (
	"context"
	"time"

	"github.com/innercircle/lessons-api/internal/domain/entity"
)

// ISummaryRepository runs the read-only aggregation pipelines behind the
// dashboards. Every call is a point-in-time scan; nothing is cached.
type ISummaryRepository interface {
	CountLessonsByCreator(ctx context.Context, email string) (int64, error)
	CountFavoritedBy(ctx context.Context, email string) (int64, error)
	RecentLessonsByCreator(ctx context.Context, email string, limit int64) ([]entity.Lesson, error)
	CreatorAnalytics(ctx context.Context, email string) ([]entity.CategoryToneCount, error)

	CountUsers(ctx context.Context) (int64, error)
	CountPublicLessons(ctx context.Context) (int64, error)
	CountReports(ctx context.Context) (int64, error)
	TopContributors(ctx context.Context, limit int64) ([]entity.Contributor, error)
	CountLessonsSince(ctx context.Context, since time.Time) (int64, error)
	LessonsPerMonth(ctx context.Context) ([]entity.MonthlyCount, error)
	UsersPerMonth(ctx context.Context) ([]entity.MonthlyCount, error)
}
