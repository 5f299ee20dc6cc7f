package http_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	handler "github.com/innercircle/lessons-api/internal/handler/http"
	dto "github.com/innercircle/lessons-api/internal/handler/http/dto"
	mocks "github.com/innercircle/lessons-api/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
)

func setupBillingRouter(h handler.BillingHandlerInterface) *gin.Engine {
	r := gin.New()
	r.POST("/payments/checkout", h.CreateCheckout)
	r.POST("/payments/confirm", h.ConfirmCheckout)
	return r
}

func TestCreateCheckout(t *testing.T) {
	mockUsecase := mocks.NewMockBillingUsecase()
	h := handler.NewBillingHandler(mockUsecase, mocks.NewMockLogger())
	r := setupBillingRouter(h)

	w := postJSON(r, "POST", "/payments/checkout", dto.CreateCheckoutRequest{Email: "test@example.com"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/checkout/cs_mock")
}

func TestCreateCheckout_UnknownUser(t *testing.T) {
	mockUsecase := mocks.NewMockBillingUsecase()
	mockUsecase.ShouldFailCreateCheckout = true
	h := handler.NewBillingHandler(mockUsecase, mocks.NewMockLogger())
	r := setupBillingRouter(h)

	w := postJSON(r, "POST", "/payments/checkout", dto.CreateCheckoutRequest{Email: "missing@example.com"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestConfirmCheckout_Paid(t *testing.T) {
	mockUsecase := mocks.NewMockBillingUsecase()
	h := handler.NewBillingHandler(mockUsecase, mocks.NewMockLogger())
	r := setupBillingRouter(h)

	w := postJSON(r, "POST", "/payments/confirm", dto.ConfirmCheckoutRequest{SessionID: "cs_mock"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"paid":true`)
}

func TestConfirmCheckout_Unpaid(t *testing.T) {
	mockUsecase := mocks.NewMockBillingUsecase()
	mockUsecase.ConfirmUnpaid = true
	h := handler.NewBillingHandler(mockUsecase, mocks.NewMockLogger())
	r := setupBillingRouter(h)

	w := postJSON(r, "POST", "/payments/confirm", dto.ConfirmCheckoutRequest{SessionID: "cs_gone"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"paid":false`)
}

func TestConfirmCheckout_MissingSession(t *testing.T) {
	mockUsecase := mocks.NewMockBillingUsecase()
	h := handler.NewBillingHandler(mockUsecase, mocks.NewMockLogger())
	r := setupBillingRouter(h)

	w := postJSON(r, "POST", "/payments/confirm", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field validation for 'SessionID' failed on the 'required' tag")
}
