package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"

	response "espaco_eventos/internal/adapter/http/dto/response"
	"espaco_eventos/internal/usecase"
	"espaco_eventos/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// QuotePaymentHandler handles deposit payments for submitted quotes.
type QuotePaymentHandler struct {
	usecase usecase.IQuotePaymentUseCase
	log     zerolog.Logger
}

func NewQuotePaymentHandler(uc usecase.IQuotePaymentUseCase, log zerolog.Logger) *QuotePaymentHandler {
	return &QuotePaymentHandler{usecase: uc, log: log}
}

// CreateDepositByQuoteID creates and processes a deposit using quote_id in
// path. The charged amount is derived server-side from the stored quote.
func (h *QuotePaymentHandler) CreateDepositByQuoteID(c *gin.Context) {
	quoteID := c.Param("quote_id")
	mockMode := isPaymentGatewayMockEnabled()

	providerPayload, err := readProviderPayload(c)
	if err != nil {
		if mockMode {
			h.log.Debug().Err(err).Str("quote_id", quoteID).Msg("payload invalid in mock mode, using empty payload")
			providerPayload = json.RawMessage("{}")
		} else {
			h.log.Warn().Err(err).Str("quote_id", quoteID).Msg("invalid deposit payload")
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateDeposit(c.Request.Context(), quoteID, providerPayload)
	if err != nil {
		h.log.Error().Err(err).Str("quote_id", quoteID).Msg("deposit creation failed")
		appErr := mapQuotePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotePayment(created))
}

// GetPaymentByQuoteID returns the latest deposit payment for a quote.
func (h *QuotePaymentHandler) GetPaymentByQuoteID(c *gin.Context) {
	quoteID := c.Param("quote_id")

	payments, err := h.usecase.ListByQuoteID(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapQuotePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromQuotePayment(latest))
}

func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapQuotePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentQuoteID), errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotSubmitted):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_SUBMITTED", "Quote not submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotePaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
