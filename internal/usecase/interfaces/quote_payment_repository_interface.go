package interfaces

import (
	"context"

	"espaco_eventos/internal/domain/entities"
)

// IQuotePaymentRepository abstracts persistence of deposit payments.
type IQuotePaymentRepository interface {
	Create(ctx context.Context, p entities.QuotePayment) (entities.QuotePayment, error)
	GetByID(ctx context.Context, id string) (entities.QuotePayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error)
}
