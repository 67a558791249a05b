package handlers

import (
	"errors"
	"log"
	"net/http"

	request "payment-gateway/internal/adapter/http/dto/request"
	response "payment-gateway/internal/adapter/http/dto/response"
	"payment-gateway/internal/domain/entities"
	"payment-gateway/internal/usecase"
	"payment-gateway/internal/usecase/interfaces"
	"payment-gateway/internal/validation"
	"payment-gateway/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// User-facing messages for bank failures. Stable and deliberately vague:
// internal transport detail is logged, never sent to the client.
const (
	msgBankUnreachable = "We couldn't reach the bank to process your payment. Please check your connection or try again later."
	msgBankClientError = "There was an issue with your payment details. Please review and try again."
	msgBankServerError = "We're currently experiencing issues processing your payment. Please try again later."
)

// PaymentHandler handles HTTP requests for payment submission and lookup.

type PaymentHandler struct {
	usecase usecase.IPaymentGatewayUseCase
}

func NewPaymentHandler(uc usecase.IPaymentGatewayUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// PostPayment submits a payment for processing and answers with the
// recorded outcome: 202 Authorized, 422 Declined, 400 Rejected, 502 when
// the bank could not process the request.
func (h *PaymentHandler) PostPayment(c *gin.Context) {
	var payload request.PostPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid request body err=%v", err)
		appErr := pkg.NewDomainErrorSimple(string(entities.StatusRejected), "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	p, err := h.usecase.ProcessPayment(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[payment][handler] submit failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] submit success payment_id=%s status=%s", p.ID, p.Status)

	c.JSON(mapPaymentStatusToHTTPStatus(p.Status), response.FromPayment(p))
}

// GetPaymentByID retrieves a previously recorded payment.
func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
	id := c.Param("id")

	if err := uuid.Validate(id); err != nil {
		log.Printf("[payment][handler] get rejected, malformed id=%q err=%v", id, err)
		appErr := pkg.NewDomainErrorSimple(string(entities.StatusRejected), "Invalid payment id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	p, err := h.usecase.GetPaymentByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] get failed payment_id=%s err=%v", id, err)
		if errors.Is(err, usecase.ErrPaymentNotFound) {
			appErr := pkg.NewDomainErrorSimple("Not Found", "Payment not found with ID: "+id, http.StatusNotFound)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] get success payment_id=%s status=%s", p.ID, p.Status)

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// mapPaymentError translates pipeline errors into client-facing AppErrors.
// Validation and expiry rejections keep the aggregated field messages; bank
// failures surface as 502 with a stage-specific message.
func mapPaymentError(err error) *pkg.AppError {
	var validationErr *validation.RequestValidationError
	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple(string(entities.StatusRejected), validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidExpiryDate):
		return pkg.NewDomainErrorSimple(string(entities.StatusRejected), "Invalid Expiration Date", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrBankUnreachable):
		return pkg.NewDomainErrorSimple(string(entities.StatusRejected), msgBankUnreachable, http.StatusBadGateway)
	case errors.Is(err, interfaces.ErrBankClientError):
		return pkg.NewDomainErrorSimple(string(entities.StatusRejected), msgBankClientError, http.StatusBadGateway)
	case errors.Is(err, interfaces.ErrBankServerError):
		return pkg.NewDomainErrorSimple(string(entities.StatusRejected), msgBankServerError, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("Internal Server Error", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mapPaymentStatusToHTTPStatus is the boundary lookup from payment status
// to response code.
func mapPaymentStatusToHTTPStatus(status entities.PaymentStatus) int {
	switch status {
	case entities.StatusAuthorized:
		return http.StatusAccepted
	case entities.StatusDeclined:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
