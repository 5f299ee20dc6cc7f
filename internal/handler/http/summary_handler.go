package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	usecasecontract "github.com/innercircle/lessons-api/internal/usecase/contract"
)

// SummaryHandlerInterface defines the methods for the summary handler to
// allow interface-based dependency injection (for testing/mocking)
type SummaryHandlerInterface interface {
	UserSummary(*gin.Context)
	UserAnalytics(*gin.Context)
	AdminSummary(*gin.Context)
}

// Ensure SummaryHandler implements SummaryHandlerInterface
var _ SummaryHandlerInterface = (*SummaryHandler)(nil)

type SummaryHandler struct {
	summaryUsecase usecasecontract.ISummaryUseCase
	logger         usecasecontract.IAppLogger
}

func NewSummaryHandler(summaryUsecase usecasecontract.ISummaryUseCase, logger usecasecontract.IAppLogger) *SummaryHandler {
	return &SummaryHandler{
		summaryUsecase: summaryUsecase,
		logger:         logger,
	}
}

// UserSummary returns the per-user dashboard snapshot.
func (h *SummaryHandler) UserSummary(c *gin.Context) {
	summary, err := h.summaryUsecase.UserSummary(c.Request.Context(), c.Param("email"))
	if err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, summary)
}

// UserAnalytics returns the user's monthly category/tone breakdown.
func (h *SummaryHandler) UserAnalytics(c *gin.Context) {
	rows, err := h.summaryUsecase.UserAnalytics(c.Request.Context(), c.Param("email"))
	if err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, rows)
}

// AdminSummary returns the platform-wide dashboard snapshot.
func (h *SummaryHandler) AdminSummary(c *gin.Context) {
	summary, err := h.summaryUsecase.AdminSummary(c.Request.Context())
	if err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, summary)
}
