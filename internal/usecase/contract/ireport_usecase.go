package contract

import (
	"context"

	"github.com/innercircle/lessons-api/internal/domain/entity"
)

// IReportUseCase drives abuse reporting and the moderation queue.
type IReportUseCase interface {
	File(ctx context.Context, lessonID, reporterEmail, reason, title string) (*entity.Report, error)
	ListGroupedByLesson(ctx context.Context) ([]entity.ReportedLesson, error)
	ClearForLesson(ctx context.Context, lessonID string) (int64, error)
}
