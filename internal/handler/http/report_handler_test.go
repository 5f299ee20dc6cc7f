package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	handler "github.com/innercircle/lessons-api/internal/handler/http"
	dto "github.com/innercircle/lessons-api/internal/handler/http/dto"
	mocks "github.com/innercircle/lessons-api/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
)

func setupReportRouter(h handler.ReportHandlerInterface) *gin.Engine {
	r := gin.New()
	r.POST("/reports", h.FileReport)
	r.GET("/reports", h.ListReportedLessons)
	r.DELETE("/reports/lesson/:lessonId", h.ClearReports)
	return r
}

func TestFileReport(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	h := handler.NewReportHandler(mockUsecase, mocks.NewMockLogger())
	r := setupReportRouter(h)

	w := postJSON(r, "POST", "/reports", dto.FileReportRequest{
		LessonID:      mockUsecase.MockReport.LessonID.Hex(),
		ReporterEmail: "reporter@example.com",
		Reason:        "spam",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "spam")
}

func TestFileReport_MissingReason(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	h := handler.NewReportHandler(mockUsecase, mocks.NewMockLogger())
	r := setupReportRouter(h)

	w := postJSON(r, "POST", "/reports", dto.FileReportRequest{
		LessonID:      mockUsecase.MockReport.LessonID.Hex(),
		ReporterEmail: "reporter@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field validation for 'Reason' failed on the 'required' tag")
}

func TestFileReport_UnknownLesson(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	mockUsecase.ShouldFailFile = true
	h := handler.NewReportHandler(mockUsecase, mocks.NewMockLogger())
	r := setupReportRouter(h)

	w := postJSON(r, "POST", "/reports", dto.FileReportRequest{
		LessonID:      mockUsecase.MockReport.LessonID.Hex(),
		ReporterEmail: "reporter@example.com",
		Reason:        "spam",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Lesson not found")
}

func TestFileReport_MalformedLessonID(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	h := handler.NewReportHandler(mockUsecase, mocks.NewMockLogger())
	r := setupReportRouter(h)

	w := postJSON(r, "POST", "/reports", dto.FileReportRequest{
		LessonID:      "not-a-hex-id",
		ReporterEmail: "reporter@example.com",
		Reason:        "spam",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field validation for 'LessonID' failed on the 'objectid' tag")
}

func TestListReportedLessons(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	h := handler.NewReportHandler(mockUsecase, mocks.NewMockLogger())
	r := setupReportRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/reports", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"reportCount":1`)
	assert.Contains(t, w.Body.String(), "reporter@example.com")
}

func TestClearReports(t *testing.T) {
	mockUsecase := mocks.NewMockReportUsecase()
	h := handler.NewReportHandler(mockUsecase, mocks.NewMockLogger())
	r := setupReportRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/reports/lesson/"+mockUsecase.MockReport.LessonID.Hex(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deletedCount":2`)
}
