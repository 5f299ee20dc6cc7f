package dto

import "github.com/innercircle/lessons-api/internal/domain/entity"

// CreateLessonRequest is the submission payload. Any lesson shape is
// accepted; there is no required-field validation on submissions.
type CreateLessonRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Tone         string `json:"tone"`
	Image        string `json:"image"`
	Privacy      string `json:"privacy"`
	AccessLevel  string `json:"accessLevel"`
	CreatorEmail string `json:"creatorEmail"`
	CreatorName  string `json:"creatorName"`
	CreatorPhoto string `json:"creatorPhoto"`
}

// ToEntity maps the submission onto a lesson document.
func (r CreateLessonRequest) ToEntity() entity.Lesson {
	return entity.Lesson{
		Title:        r.Title,
		Description:  r.Description,
		Category:     r.Category,
		Tone:         r.Tone,
		Image:        r.Image,
		Privacy:      r.Privacy,
		AccessLevel:  r.AccessLevel,
		CreatorEmail: r.CreatorEmail,
		CreatorName:  r.CreatorName,
		CreatorPhoto: r.CreatorPhoto,
	}
}

// UpdateLessonRequest is the editable field subset. Fields outside it are
// silently dropped by JSON decoding before the repository ever sees them.
type UpdateLessonRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Tone        string `json:"tone"`
	Image       string `json:"image"`
	Privacy     string `json:"privacy"`
	AccessLevel string `json:"accessLevel"`
}

// ToggleRequest identifies the user flipping a like or favorite.
type ToggleRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// AddCommentRequest appends one comment to a lesson.
type AddCommentRequest struct {
	UserID    string `json:"userId" binding:"required"`
	UserName  string `json:"userName"`
	UserPhoto string `json:"userPhoto"`
	Text      string `json:"text" binding:"required"`
}

// SetFeaturedRequest overwrites the featured moderation flag.
type SetFeaturedRequest struct {
	IsFeatured *bool `json:"isFeatured" binding:"required"`
}
