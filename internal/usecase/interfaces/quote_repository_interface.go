package interfaces

import (
	"context"

	"espaco_eventos/internal/domain/entities"
)

// IQuoteRepository abstracts quote document persistence.
//
// The store is append/update only: there is no delete. GetByID returns nil
// when no document exists under the id. Insert assigns nothing; the caller
// provides the identity.
type IQuoteRepository interface {
	GetByID(ctx context.Context, id string) (*entities.QuoteDocument, error)
	Insert(ctx context.Context, doc *entities.QuoteDocument) (*entities.QuoteDocument, error)
	Update(ctx context.Context, doc *entities.QuoteDocument) (*entities.QuoteDocument, error)
}
