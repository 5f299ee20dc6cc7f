package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innercircle/lessons-api/internal/handler/http/dto"
	"github.com/innercircle/lessons-api/internal/infrastructure/metrics"
	usecasecontract "github.com/innercircle/lessons-api/internal/usecase/contract"
)

// ReportHandlerInterface defines the methods for the report handler to allow
// interface-based dependency injection (for testing/mocking)
type ReportHandlerInterface interface {
	FileReport(*gin.Context)
	ListReportedLessons(*gin.Context)
	ClearReports(*gin.Context)
}

// Ensure ReportHandler implements ReportHandlerInterface
var _ ReportHandlerInterface = (*ReportHandler)(nil)

type ReportHandler struct {
	reportUsecase usecasecontract.IReportUseCase
	logger        usecasecontract.IAppLogger
}

func NewReportHandler(reportUsecase usecasecontract.IReportUseCase, logger usecasecontract.IAppLogger) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
		logger:        logger,
	}
}

// FileReport stores an abuse report against a lesson.
func (h *ReportHandler) FileReport(c *gin.Context) {
	var req dto.FileReportRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	report, err := h.reportUsecase.File(c.Request.Context(), req.LessonID, req.ReporterEmail, req.Reason, req.Title)
	if err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	metrics.ReportsFiledTotal.Inc()
	SuccessHandler(c, http.StatusCreated, report)
}

// ListReportedLessons returns the moderation queue, most reported first.
func (h *ReportHandler) ListReportedLessons(c *gin.Context) {
	grouped, err := h.reportUsecase.ListGroupedByLesson(c.Request.Context())
	if err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, grouped)
}

// ClearReports bulk-deletes every report for a lesson once moderation
// resolves it.
func (h *ReportHandler) ClearReports(c *gin.Context) {
	deleted, err := h.reportUsecase.ClearForLesson(c.Request.Context(), c.Param("lessonId"))
	if err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.DeletedResponse{DeletedCount: deleted})
}
