package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"espaco_eventos/internal/domain/catalog"
	"espaco_eventos/internal/domain/entities"
	"espaco_eventos/internal/domain/pricing"
	"espaco_eventos/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

var (
	ErrQuotePaymentNotFound       = errors.New("quote payment not found")
	ErrInvalidPaymentQuoteID      = errors.New("invalid quote_id")
	ErrInvalidProviderPayload     = errors.New("invalid payment provider payload")
	ErrQuoteNotFound              = errors.New("quote not found")
	ErrQuoteNotSubmitted          = errors.New("quote not submitted")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IQuotePaymentUseCase encapsulates deposit collection for submitted quotes.
//
// The charged amount is never taken from the caller: it is derived from the
// stored document by the pricing engine, the single source of truth for
// totals.
type IQuotePaymentUseCase interface {
	CreateDeposit(ctx context.Context, quoteID string, providerPayload json.RawMessage) (entities.QuotePayment, error)
	GetByID(ctx context.Context, id string) (entities.QuotePayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error)
}

type QuotePaymentUseCase struct {
	repo    interfaces.IQuotePaymentRepository
	quotes  interfaces.IQuoteRepository
	catalog *catalog.Store
	gateway interfaces.IPaymentGateway
	log     zerolog.Logger
}

var _ IQuotePaymentUseCase = (*QuotePaymentUseCase)(nil)

func NewQuotePaymentUseCase(
	repo interfaces.IQuotePaymentRepository,
	quotes interfaces.IQuoteRepository,
	cat *catalog.Store,
	gateway interfaces.IPaymentGateway,
	log zerolog.Logger,
) *QuotePaymentUseCase {
	return &QuotePaymentUseCase{repo: repo, quotes: quotes, catalog: cat, gateway: gateway, log: log}
}

func (u *QuotePaymentUseCase) CreateDeposit(ctx context.Context, quoteID string, providerPayload json.RawMessage) (entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.QuotePayment{}, ErrInvalidPaymentQuoteID
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		return entities.QuotePayment{}, ErrInvalidProviderPayload
	}
	if u.gateway == nil {
		return entities.QuotePayment{}, errors.New("payment gateway not configured")
	}

	doc, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		u.log.Error().Err(err).Str("quote_id", quoteID).Msg("loading quote for deposit failed")
		return entities.QuotePayment{}, err
	}
	if doc == nil {
		return entities.QuotePayment{}, ErrQuoteNotFound
	}
	if doc.Status != entities.QuoteStatusSubmitted {
		return entities.QuotePayment{}, ErrQuoteNotSubmitted
	}

	// Amount comes from a fresh pricing pass over the stored document, never
	// from cached fields or the caller's payload.
	amount := pricing.ComputeTotals(doc, u.catalog, entities.RoleAdmin).GrandTotal

	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil {
		return entities.QuotePayment{}, ErrInvalidProviderPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = quoteID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Sinal do orçamento %s", quoteID)
	}
	reqMap["transaction_amount"] = amount
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.QuotePayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		u.log.Error().Err(err).Str("quote_id", quoteID).Msg("payment gateway failed")
		switch {
		case isGatewayUnauthorized(err):
			return entities.QuotePayment{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return entities.QuotePayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.QuotePayment{}, err
	}
	u.log.Info().
		Str("quote_id", quoteID).
		Str("provider_payment_id", providerPaymentID).
		Str("provider_status", providerStatus).
		Float64("amount", amount).
		Msg("deposit payment created")

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.log.Warn().Err(err).Str("quote_id", quoteID).Msg("provider response unmarshal failed")
	}

	p := entities.QuotePayment{
		ID:                 providerPaymentID,
		QuoteID:            quoteID,
		Amount:             amount,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusAprovado,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	return u.repo.Create(ctx, p)
}

func (u *QuotePaymentUseCase) GetByID(ctx context.Context, id string) (entities.QuotePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuotePayment{}, errors.New("invalid payment id")
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if p.ID == "" {
		return entities.QuotePayment{}, ErrQuotePaymentNotFound
	}
	return p, nil
}

func (u *QuotePaymentUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidPaymentQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
