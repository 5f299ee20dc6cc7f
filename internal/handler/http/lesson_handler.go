package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/innercircle/lessons-api/internal/domain/contract"
	"github.com/innercircle/lessons-api/internal/domain/entity"
	"github.com/innercircle/lessons-api/internal/handler/http/dto"
	"github.com/innercircle/lessons-api/internal/infrastructure/metrics"
	usecasecontract "github.com/innercircle/lessons-api/internal/usecase/contract"
)

// LessonHandlerInterface defines the methods for the lesson handler to allow
// interface-based dependency injection (for testing/mocking)
type LessonHandlerInterface interface {
	CreateLesson(*gin.Context)
	ListPublicLessons(*gin.Context)
	ListMyLessons(*gin.Context)
	GetLesson(*gin.Context)
	UpdateLesson(*gin.Context)
	DeleteLesson(*gin.Context)
	ToggleLike(*gin.Context)
	ToggleFavorite(*gin.Context)
	AddComment(*gin.Context)
	ListRelated(*gin.Context)
	SetFeatured(*gin.Context)
	SetReviewed(*gin.Context)
}

// Ensure LessonHandler implements LessonHandlerInterface
var _ LessonHandlerInterface = (*LessonHandler)(nil)

type LessonHandler struct {
	lessonUsecase usecasecontract.ILessonUseCase
	logger        usecasecontract.IAppLogger
}

func NewLessonHandler(lessonUsecase usecasecontract.ILessonUseCase, logger usecasecontract.IAppLogger) *LessonHandler {
	return &LessonHandler{
		lessonUsecase: lessonUsecase,
		logger:        logger,
	}
}

// CreateLesson stores a submission. Any lesson shape is accepted.
func (h *LessonHandler) CreateLesson(c *gin.Context) {
	var req dto.CreateLessonRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	lesson := req.ToEntity()
	created, err := h.lessonUsecase.Create(c.Request.Context(), &lesson)
	if err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	metrics.LessonsCreatedTotal.Inc()
	SuccessHandler(c, http.StatusCreated, created)
}

// ListPublicLessons returns public lessons filtered by search/category/tone
// and sorted by the requested key.
func (h *LessonHandler) ListPublicLessons(c *gin.Context) {
	filter := contract.LessonFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Tone:     c.Query("tone"),
	}
	sortKey := c.DefaultQuery("sort", usecasecontract.SortNewest)

	lessons, err := h.lessonUsecase.ListPublic(c.Request.Context(), filter, sortKey)
	if err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, lessons)
}

// ListMyLessons returns lessons newest first, optionally narrowed to one
// creator via ?email=.
func (h *LessonHandler) ListMyLessons(c *gin.Context) {
	lessons, err := h.lessonUsecase.ListMine(c.Request.Context(), c.Query("email"))
	if err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, lessons)
}

// GetLesson returns a single lesson by id.
func (h *LessonHandler) GetLesson(c *gin.Context) {
	lesson, err := h.lessonUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, lesson)
}

// UpdateLesson replaces the editable field subset. Extra fields in the
// payload are dropped, not stored.
func (h *LessonHandler) UpdateLesson(c *gin.Context) {
	var req dto.UpdateLessonRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	lesson, err := h.lessonUsecase.Update(c.Request.Context(), c.Param("id"), contract.LessonUpdate{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tone:        req.Tone,
		Image:       req.Image,
		Privacy:     req.Privacy,
		AccessLevel: req.AccessLevel,
	})
	if err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, lesson)
}

// DeleteLesson removes a lesson. Its reports stay until moderation clears
// them.
func (h *LessonHandler) DeleteLesson(c *gin.Context) {
	if err := h.lessonUsecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Lesson deleted")
}

// ToggleLike flips the caller's membership in the likes set and returns the
// post-toggle lesson.
func (h *LessonHandler) ToggleLike(c *gin.Context) {
	h.toggle(c, "like", h.lessonUsecase.ToggleLike)
}

// ToggleFavorite flips the caller's membership in the favorites set and
// returns the post-toggle lesson.
func (h *LessonHandler) ToggleFavorite(c *gin.Context) {
	h.toggle(c, "favorite", h.lessonUsecase.ToggleFavorite)
}

func (h *LessonHandler) toggle(c *gin.Context, kind string, fn func(ctx context.Context, id, userID string) (*entity.Lesson, error)) {
	var req dto.ToggleRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	lesson, err := fn(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	metrics.TogglesTotal.WithLabelValues(kind).Inc()
	SuccessHandler(c, http.StatusOK, lesson)
}

// AddComment appends a comment and returns the updated lesson.
func (h *LessonHandler) AddComment(c *gin.Context) {
	var req dto.AddCommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	lesson, err := h.lessonUsecase.AddComment(c.Request.Context(), c.Param("id"), entity.Comment{
		UserID:    req.UserID,
		UserName:  req.UserName,
		UserPhoto: req.UserPhoto,
		Text:      req.Text,
		Time:      time.Now(),
	})
	if err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, lesson)
}

// ListRelated returns public lessons sharing the lesson's category or tone.
func (h *LessonHandler) ListRelated(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "6"), 10, 64)

	lessons, err := h.lessonUsecase.ListRelated(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, lessons)
}

// SetFeatured overwrites the featured moderation flag.
func (h *LessonHandler) SetFeatured(c *gin.Context) {
	var req dto.SetFeaturedRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.lessonUsecase.SetFeatured(c.Request.Context(), c.Param("id"), *req.IsFeatured); err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Featured flag updated")
}

// SetReviewed marks a lesson as reviewed by moderation.
func (h *LessonHandler) SetReviewed(c *gin.Context) {
	if err := h.lessonUsecase.SetReviewed(c.Request.Context(), c.Param("id")); err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Lesson marked reviewed")
}
