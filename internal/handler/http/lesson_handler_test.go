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

func setupLessonRouter(h handler.LessonHandlerInterface) *gin.Engine {
	r := gin.New()
	r.POST("/lessons", h.CreateLesson)
	r.GET("/lessons", h.ListPublicLessons)
	r.GET("/lessons/mine", h.ListMyLessons)
	r.GET("/lessons/:id", h.GetLesson)
	r.PUT("/lessons/:id", h.UpdateLesson)
	r.DELETE("/lessons/:id", h.DeleteLesson)
	r.POST("/lessons/:id/like", h.ToggleLike)
	r.POST("/lessons/:id/favorite", h.ToggleFavorite)
	r.POST("/lessons/:id/comments", h.AddComment)
	r.GET("/lessons/:id/related", h.ListRelated)
	r.PATCH("/lessons/:id/featured", h.SetFeatured)
	r.PATCH("/lessons/:id/reviewed", h.SetReviewed)
	return r
}

func TestCreateLesson(t *testing.T) {
	mockUsecase := mocks.NewMockLessonUsecase()
	h := handler.NewLessonHandler(mockUsecase, mocks.NewMockLogger())
	r := setupLessonRouter(h)

	w := postJSON(r, "POST", "/lessons", dto.CreateLessonRequest{
		Title:        "Patience pays",
		CreatorEmail: "author@example.com",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Patience pays")
}

func TestCreateLesson_EmptyPayload(t *testing.T) {
	mockUsecase := mocks.NewMockLessonUsecase()
	h := handler.NewLessonHandler(mockUsecase, mocks.NewMockLogger())
	r := setupLessonRouter(h)

	// submissions have no required fields
	w := postJSON(r, "POST", "/lessons", map[string]interface{}{})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestListPublicLessons_DefaultSort(t *testing.T) {
	mockUsecase := mocks.NewMockLessonUsecase()
	h := handler.NewLessonHandler(mockUsecase, mocks.NewMockLogger())
	r := setupLessonRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/lessons?search=patience&category=Growth", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "newest", mockUsecase.LastSortKey)
	assert.Equal(t, "patience", mockUsecase.LastFilter.Search)
	assert.Equal(t, "Growth", mockUsecase.LastFilter.Category)
}

func TestListPublicLessons_MostSaved(t *testing.T) {
	mockUsecase := mocks.NewMockLessonUsecase()
	h := handler.NewLessonHandler(mockUsecase, mocks.NewMockLogger())
	r := setupLessonRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/lessons?sort=mostSaved", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "mostSaved", mockUsecase.LastSortKey)
}

func TestGetLesson_NotFound(t *testing.T) {
	mockUsecase := mocks.NewMockLessonUsecase()
	mockUsecase.ShouldFailGetByID = true
	h := handler.NewLessonHandler(mockUsecase, mocks.NewMockLogger())
	r := setupLessonRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/lessons/deadbeef", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Lesson not found")
}

func TestUpdateLesson(t *testing.T) {
	mockUsecase := mocks.NewMockLessonUsecase()
	h := handler.NewLessonHandler(mockUsecase, mocks.NewMockLogger())
	r := setupLessonRouter(h)

	w := postJSON(r, "PUT", "/lessons/abc", dto.UpdateLessonRequest{Title: "Renamed"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Renamed")
}

func TestDeleteLesson(t *testing.T) {
	mockUsecase := mocks.NewMockLessonUsecase()
	h := handler.NewLessonHandler(mockUsecase, mocks.NewMockLogger())
	r := setupLessonRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/lessons/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Lesson deleted")
}

func TestToggleLike(t *testing.T) {
	mockUsecase := mocks.NewMockLessonUsecase()
	h := handler.NewLessonHandler(mockUsecase, mocks.NewMockLogger())
	r := setupLessonRouter(h)

	w := postJSON(r, "POST", "/lessons/abc/like", dto.ToggleRequest{UserID: "user-1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"likesCount":1`)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestToggleLike_MissingUser(t *testing.T) {
	mockUsecase := mocks.NewMockLessonUsecase()
	h := handler.NewLessonHandler(mockUsecase, mocks.NewMockLogger())
	r := setupLessonRouter(h)

	w := postJSON(r, "POST", "/lessons/abc/like", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field validation for 'UserID' failed on the 'required' tag")
}

func TestToggleFavorite(t *testing.T) {
	mockUsecase := mocks.NewMockLessonUsecase()
	h := handler.NewLessonHandler(mockUsecase, mocks.NewMockLogger())
	r := setupLessonRouter(h)

	w := postJSON(r, "POST", "/lessons/abc/favorite", dto.ToggleRequest{UserID: "user-2"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"favoritesCount":1`)
}

func TestAddComment(t *testing.T) {
	mockUsecase := mocks.NewMockLessonUsecase()
	h := handler.NewLessonHandler(mockUsecase, mocks.NewMockLogger())
	r := setupLessonRouter(h)

	w := postJSON(r, "POST", "/lessons/abc/comments", dto.AddCommentRequest{
		UserID: "user-1",
		Text:   "Well said",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Well said")
}

func TestAddComment_MissingText(t *testing.T) {
	mockUsecase := mocks.NewMockLessonUsecase()
	h := handler.NewLessonHandler(mockUsecase, mocks.NewMockLogger())
	r := setupLessonRouter(h)

	w := postJSON(r, "POST", "/lessons/abc/comments", dto.AddCommentRequest{UserID: "user-1"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field validation for 'Text' failed on the 'required' tag")
}

func TestListRelated_DefaultLimit(t *testing.T) {
	mockUsecase := mocks.NewMockLessonUsecase()
	h := handler.NewLessonHandler(mockUsecase, mocks.NewMockLogger())
	r := setupLessonRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/lessons/abc/related", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(6), mockUsecase.LastLimit)
}

func TestSetFeatured(t *testing.T) {
	mockUsecase := mocks.NewMockLessonUsecase()
	h := handler.NewLessonHandler(mockUsecase, mocks.NewMockLogger())
	r := setupLessonRouter(h)

	featured := true
	w := postJSON(r, "PATCH", "/lessons/abc/featured", dto.SetFeaturedRequest{IsFeatured: &featured})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Featured flag updated")
}

func TestSetReviewed(t *testing.T) {
	mockUsecase := mocks.NewMockLessonUsecase()
	h := handler.NewLessonHandler(mockUsecase, mocks.NewMockLogger())
	r := setupLessonRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PATCH", "/lessons/abc/reviewed", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Lesson marked reviewed")
}
