package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innercircle/lessons-api/internal/domain/entity"
	"github.com/innercircle/lessons-api/internal/handler/http/dto"
	"github.com/innercircle/lessons-api/internal/infrastructure/metrics"
	usecasecontract "github.com/innercircle/lessons-api/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for the user handler to allow
// interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	Register(*gin.Context)
	GetUser(*gin.Context)
	GetRole(*gin.Context)
	UpdateProfile(*gin.Context)
	SetRole(*gin.Context)
	SetPremium(*gin.Context)
	ListUsers(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
	logger      usecasecontract.IAppLogger
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase, logger usecasecontract.IAppLogger) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		logger:      logger,
	}
}

// Register creates a user, or returns the existing document when the email
// was already registered.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, created, err := h.userUsecase.Register(c.Request.Context(), req.Email, req.DisplayName, req.PhotoURL)
	if err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	if !created {
		SuccessHandler(c, http.StatusOK, dto.RegisterResponse{Message: "User already exists", User: user})
		return
	}
	metrics.RegistrationsTotal.Inc()
	SuccessHandler(c, http.StatusCreated, dto.RegisterResponse{User: user})
}

// GetUser returns the user for the email path parameter.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUsecase.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, user)
}

// GetRole returns the user's role, defaulting to "user" for unknown emails.
func (h *UserHandler) GetRole(c *gin.Context) {
	role, err := h.userUsecase.GetRole(c.Request.Context(), c.Param("email"))
	if err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.RoleResponse{Role: role})
}

// UpdateProfile overwrites the display name and photo URL.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.UpdateProfile(c.Request.Context(), c.Param("email"), req.DisplayName, req.PhotoURL)
	if err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, user)
}

// SetRole overwrites the role of the user with the given id.
func (h *UserHandler) SetRole(c *gin.Context) {
	var req dto.SetRoleRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.userUsecase.SetRole(c.Request.Context(), c.Param("id"), entity.UserRole(req.Role)); err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Role updated")
}

// SetPremium overwrites the premium flag of the user with the given id.
func (h *UserHandler) SetPremium(c *gin.Context) {
	var req dto.SetPremiumRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.userUsecase.SetPremium(c.Request.Context(), c.Param("id"), *req.IsPremium); err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Premium flag updated")
}

// ListUsers returns every user annotated with their lesson count.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUsecase.ListWithLessonCounts(c.Request.Context())
	if err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, users)
}
