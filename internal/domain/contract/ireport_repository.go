package contract

import (
	"context"

	"github.com/innercircle/lessons-api/internal/domain/entity"
)

// IReportRepository encapsulates access to the lesson_reports collection.
// Reports are never cascaded from lesson deletion; moderation clears them
// explicitly per lesson.
type IReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	ListGroupedByLesson(ctx context.Context) ([]entity.ReportedLesson, error)
	DeleteByLesson(ctx context.Context, lessonID string) (int64, error)
}
