package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"espaco_eventos/internal/domain/entities"
	"espaco_eventos/internal/usecase/interfaces"
)

const defaultSlotPath = "quote_slot.json"

// QuoteLocalSlotRepository is the local-only persistence variant: a single
// named slot on disk, full-fidelity round-trip, no role redaction applied on
// top of what the caller hands in. It backs single-user deployments without
// a DynamoDB endpoint.
type QuoteLocalSlotRepository struct {
	path string
	mu   sync.Mutex
}

var _ interfaces.IQuoteRepository = (*QuoteLocalSlotRepository)(nil)

func NewQuoteLocalSlotRepository() *QuoteLocalSlotRepository {
	return &QuoteLocalSlotRepository{
		path: getenvDefault("QUOTE_SLOT_PATH", defaultSlotPath),
	}
}

func (r *QuoteLocalSlotRepository) GetByID(ctx context.Context, id string) (*entities.QuoteDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.read()
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.ID != id {
		return nil, nil
	}
	return doc, nil
}

func (r *QuoteLocalSlotRepository) Insert(ctx context.Context, doc *entities.QuoteDocument) (*entities.QuoteDocument, error) {
	return r.write(doc)
}

func (r *QuoteLocalSlotRepository) Update(ctx context.Context, doc *entities.QuoteDocument) (*entities.QuoteDocument, error) {
	r.mu.Lock()
	existing, err := r.read()
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.ID != doc.ID {
		return nil, errors.New("no quote stored under this id")
	}
	return r.write(doc)
}

func (r *QuoteLocalSlotRepository) read() (*entities.QuoteDocument, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var doc entities.QuoteDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *QuoteLocalSlotRepository) write(doc *entities.QuoteDocument) (*entities.QuoteDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return nil, err
	}
	return doc.Clone(), nil
}
