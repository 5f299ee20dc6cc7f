package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/innercircle/lessons-api/internal/handler/http/dto"
	"github.com/innercircle/lessons-api/internal/infrastructure/metrics"
	usecasecontract "github.com/innercircle/lessons-api/internal/usecase/contract"
)

// BillingHandlerInterface defines the methods for the billing handler to
// allow interface-based dependency injection (for testing/mocking)
type BillingHandlerInterface interface {
	CreateCheckout(*gin.Context)
	ConfirmCheckout(*gin.Context)
}

// Ensure BillingHandler implements BillingHandlerInterface
var _ BillingHandlerInterface = (*BillingHandler)(nil)

type BillingHandler struct {
	billingUsecase usecasecontract.IBillingUseCase
	logger         usecasecontract.IAppLogger
}

func NewBillingHandler(billingUsecase usecasecontract.IBillingUseCase, logger usecasecontract.IAppLogger) *BillingHandler {
	return &BillingHandler{
		billingUsecase: billingUsecase,
		logger:         logger,
	}
}

// CreateCheckout starts a premium checkout and returns the provider URL to
// redirect the client to.
func (h *BillingHandler) CreateCheckout(c *gin.Context) {
	var req dto.CreateCheckoutRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	url, err := h.billingUsecase.CreateCheckout(c.Request.Context(), req.Email)
	if err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CheckoutResponse{URL: url})
}

// ConfirmCheckout reports whether the session was paid. The premium flag is
// flipped inside the usecase only on a paid result.
func (h *BillingHandler) ConfirmCheckout(c *gin.Context) {
	var req dto.ConfirmCheckoutRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	paid, err := h.billingUsecase.ConfirmCheckout(c.Request.Context(), req.SessionID)
	if err != nil {
		RespondRepoError(c, h.logger, err)
		return
	}
	if paid {
		metrics.PremiumActivationsTotal.Inc()
	}
	SuccessHandler(c, http.StatusOK, dto.ConfirmResponse{Paid: paid})
}
