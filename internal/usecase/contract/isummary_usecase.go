package contract

import (
	"context"

	"github.com/innercircle/lessons-api/internal/domain/entity"
)

// ISummaryUseCase computes the point-in-time dashboard snapshots.
type ISummaryUseCase interface {
	UserSummary(ctx context.Context, email string) (*entity.UserSummary, error)
	UserAnalytics(ctx context.Context, email string) ([]entity.CategoryToneCount, error)
	AdminSummary(ctx context.Context) (*entity.AdminSummary, error)
}
