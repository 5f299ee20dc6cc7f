package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/innercircle/lessons-api/internal/domain/contract"
	"github.com/innercircle/lessons-api/internal/domain/entity"
	usecasecontract "github.com/innercircle/lessons-api/internal/usecase/contract"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportUsecase handles abuse reports and the grouped moderation queue.
type ReportUsecase struct {
	reportRepo contract.IReportRepository
	lessonRepo contract.ILessonRepository
	logger     usecasecontract.IAppLogger
}

var _ usecasecontract.IReportUseCase = (*ReportUsecase)(nil)

// NewReportUsecase creates and returns a new ReportUsecase instance.
func NewReportUsecase(reportRepo contract.IReportRepository, lessonRepo contract.ILessonRepository, logger usecasecontract.IAppLogger) *ReportUsecase {
	return &ReportUsecase{
		reportRepo: reportRepo,
		lessonRepo: lessonRepo,
		logger:     logger,
	}
}

// File stores a report against a lesson. The same reporter may report the
// same lesson more than once. The category snapshot is filled from the
// lesson when it still exists; a report against a vanished lesson keeps
// whatever title the caller sent.
func (u *ReportUsecase) File(ctx context.Context, lessonID, reporterEmail, reason, title string) (*entity.Report, error) {
	oid, err := primitive.ObjectIDFromHex(lessonID)
	if err != nil {
		return nil, contract.ErrLessonNotFound
	}

	report := &entity.Report{
		LessonID:      oid,
		Title:         title,
		ReporterEmail: reporterEmail,
		Reason:        reason,
		Timestamp:     time.Now(),
	}
	if lesson, err := u.lessonRepo.GetByID(ctx, lessonID); err == nil {
		report.Category = lesson.Category
		if report.Title == "" {
			report.Title = lesson.Title
		}
	}

	if err := u.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to file report: %w", err)
	}
	return report, nil
}

// ListGroupedByLesson returns one row per reported lesson, most reported
// first.
func (u *ReportUsecase) ListGroupedByLesson(ctx context.Context) ([]entity.ReportedLesson, error) {
	return u.reportRepo.ListGroupedByLesson(ctx)
}

// ClearForLesson bulk-deletes every report filed against the lesson and
// returns how many were removed.
func (u *ReportUsecase) ClearForLesson(ctx context.Context, lessonID string) (int64, error) {
	deleted, err := u.reportRepo.DeleteByLesson(ctx, lessonID)
	if err != nil {
		return 0, err
	}
	u.logger.Infof("cleared %d reports for lesson %s", deleted, lessonID)
	return deleted, nil
}
