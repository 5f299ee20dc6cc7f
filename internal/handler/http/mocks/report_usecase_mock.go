package mocks

import (
	"context"
	"time"

	"github.com/innercircle/lessons-api/internal/domain/contract"
	"github.com/innercircle/lessons-api/internal/domain/entity"
	usecasecontract "github.com/innercircle/lessons-api/internal/usecase/contract"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockReportUsecase is a mock implementation of the report usecase interface
type MockReportUsecase struct {
	// Control mock behavior
	ShouldFailFile  bool
	ShouldFailList  bool
	ShouldFailClear bool

	// Return values
	MockReport       entity.Report
	MockDeletedCount int64
}

// Ensure MockReportUsecase implements the correct interface for handler.NewReportHandler
var _ usecasecontract.IReportUseCase = (*MockReportUsecase)(nil)

func NewMockReportUsecase() *MockReportUsecase {
	return &MockReportUsecase{
		MockReport: entity.Report{
			ID:            primitive.NewObjectID(),
			LessonID:      primitive.NewObjectID(),
			Title:         "Patience pays",
			Category:      "Growth",
			ReporterEmail: "reporter@example.com",
			Reason:        "spam",
			Timestamp:     time.Now(),
		},
		MockDeletedCount: 2,
	}
}

func (m *MockReportUsecase) File(ctx context.Context, lessonID, reporterEmail, reason, title string) (*entity.Report, error) {
	if m.ShouldFailFile {
		return nil, contract.ErrLessonNotFound
	}
	return &m.MockReport, nil
}

func (m *MockReportUsecase) ListGroupedByLesson(ctx context.Context) ([]entity.ReportedLesson, error) {
	if m.ShouldFailList {
		return nil, contract.ErrLessonNotFound
	}
	return []entity.ReportedLesson{{
		LessonID: m.MockReport.LessonID,
		Title:    m.MockReport.Title,
		Category: m.MockReport.Category,
		Reports: []entity.ReportEntry{{
			Reason:        m.MockReport.Reason,
			ReporterEmail: m.MockReport.ReporterEmail,
			Timestamp:     m.MockReport.Timestamp,
		}},
		ReportCount: 1,
	}}, nil
}

func (m *MockReportUsecase) ClearForLesson(ctx context.Context, lessonID string) (int64, error) {
	if m.ShouldFailClear {
		return 0, contract.ErrLessonNotFound
	}
	return m.MockDeletedCount, nil
}
