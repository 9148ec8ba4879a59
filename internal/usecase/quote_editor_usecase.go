package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"espaco_eventos/internal/domain/catalog"
	"espaco_eventos/internal/domain/entities"
	"espaco_eventos/internal/domain/pricing"
	"espaco_eventos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrSessionNotFound = errors.New("editor session not found")
	ErrDateNotFound    = errors.New("event date not found")
	ErrItemNotFound    = errors.New("line item not found")
	ErrSaveInFlight    = errors.New("a save is already in flight for this session")
)

// GeneralPatch carries partial updates for the document-level block. Nil
// fields are left untouched.
type GeneralPatch struct {
	ClientName      *string
	ClientCnpj      *string
	ClientEmail     *string
	ClientPhone     *string
	GuestCount      *int
	PriceTableID    *string
	GeneralDiscount *float64
}

// SessionState is the snapshot returned by every editor operation: the
// document and the totals derived from it on this very call. Totals always
// reflect the mutation before the operation returns; nothing is deferred.
type SessionState struct {
	SessionID    string
	Role         entities.Role
	Document     entities.QuoteDocument
	Totals       pricing.TotalsResult
	Dirty        bool
	Notice       string
	SavedQuoteID string
}

// IQuoteEditorUseCase exposes the quote editing operations.
//
// Each session owns exactly one quote document. All mutations are
// synchronous and re-run the pricing engine in full before returning; the
// persistence boundary (Open with an id, Save) is the only asynchronous part.
type IQuoteEditorUseCase interface {
	Open(ctx context.Context, quoteID string, role entities.Role) (SessionState, error)
	Get(sessionID string) (SessionState, error)
	AddDate(sessionID string, d entities.EventDate) (SessionState, error)
	UpdateDate(sessionID string, index int, p entities.DatePatch) (SessionState, error)
	RemoveDate(sessionID string, index int) (SessionState, error)
	AddItems(sessionID string, serviceIDs []string, assignedDate string) (SessionState, error)
	UpdateItem(sessionID string, index int, p entities.ItemPatch) (SessionState, error)
	DuplicateItem(sessionID string, index int) (SessionState, error)
	RemoveItem(sessionID string, index int) (SessionState, error)
	UpdateGeneral(sessionID string, p GeneralPatch) (SessionState, error)
	Save(ctx context.Context, sessionID string) (SessionState, error)
}

type editorSession struct {
	id     string
	role   entities.Role
	doc    *entities.QuoteDocument
	totals pricing.TotalsResult

	mu     sync.Mutex
	saving bool
}

type QuoteEditorUseCase struct {
	catalog *catalog.Store
	quotes  interfaces.IQuoteRepository
	log     zerolog.Logger

	mu       sync.RWMutex
	sessions map[string]*editorSession
}

var _ IQuoteEditorUseCase = (*QuoteEditorUseCase)(nil)

func NewQuoteEditorUseCase(cat *catalog.Store, quotes interfaces.IQuoteRepository, log zerolog.Logger) *QuoteEditorUseCase {
	return &QuoteEditorUseCase{
		catalog:  cat,
		quotes:   quotes,
		log:      log,
		sessions: make(map[string]*editorSession),
	}
}

// Open creates an editor session. With a quote id the document is hydrated
// from the store; a failed or empty load falls back to a fresh default
// document, drops the id reference and reports a non-blocking notice.
func (u *QuoteEditorUseCase) Open(ctx context.Context, quoteID string, role entities.Role) (SessionState, error) {
	quoteID = strings.TrimSpace(quoteID)

	doc := entities.NewQuoteDocument()
	notice := ""
	if quoteID != "" {
		loaded, err := u.quotes.GetByID(ctx, quoteID)
		switch {
		case err != nil:
			u.log.Warn().Err(err).Str("quote_id", quoteID).Msg("quote load failed, starting fresh document")
			notice = "quote could not be loaded; starting a new one"
		case loaded == nil:
			u.log.Warn().Str("quote_id", quoteID).Msg("quote not found, starting fresh document")
			notice = "quote not found; starting a new one"
		default:
			doc = loaded
			doc.Dirty = false
		}
	}

	s := &editorSession{
		id:   uuid.NewString(),
		role: role,
		doc:  doc,
	}
	s.recompute(u.catalog)

	u.mu.Lock()
	u.sessions[s.id] = s
	u.mu.Unlock()

	state := s.snapshot()
	state.Notice = notice
	return state, nil
}

func (u *QuoteEditorUseCase) Get(sessionID string) (SessionState, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return SessionState{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(), nil
}

func (u *QuoteEditorUseCase) AddDate(sessionID string, d entities.EventDate) (SessionState, error) {
	return u.mutate(sessionID, func(s *editorSession) error {
		s.doc.AddDate(d)
		return nil
	})
}

func (u *QuoteEditorUseCase) UpdateDate(sessionID string, index int, p entities.DatePatch) (SessionState, error) {
	return u.mutate(sessionID, func(s *editorSession) error {
		if !s.doc.UpdateDate(index, p) {
			return ErrDateNotFound
		}
		return nil
	})
}

func (u *QuoteEditorUseCase) RemoveDate(sessionID string, index int) (SessionState, error) {
	return u.mutate(sessionID, func(s *editorSession) error {
		if !s.doc.RemoveDate(index) {
			return ErrDateNotFound
		}
		return nil
	})
}

// AddItems appends one line item per known service id, skipping ids that no
// longer resolve in the catalog and service+date pairs already present. An
// empty assigned date falls back to the document's first event date.
func (u *QuoteEditorUseCase) AddItems(sessionID string, serviceIDs []string, assignedDate string) (SessionState, error) {
	return u.mutate(sessionID, func(s *editorSession) error {
		if assignedDate == "" {
			assignedDate = s.doc.DefaultAssignDate()
		}
		services := make([]entities.Service, 0, len(serviceIDs))
		for _, id := range serviceIDs {
			svc, ok := u.catalog.ServiceByID(strings.TrimSpace(id))
			if !ok {
				u.log.Debug().Str("service_id", id).Msg("skipping unknown service on add")
				continue
			}
			services = append(services, svc)
		}
		s.doc.AddItems(services, assignedDate)
		return nil
	})
}

func (u *QuoteEditorUseCase) UpdateItem(sessionID string, index int, p entities.ItemPatch) (SessionState, error) {
	return u.mutate(sessionID, func(s *editorSession) error {
		if !s.doc.UpdateItem(index, p) {
			return ErrItemNotFound
		}
		return nil
	})
}

func (u *QuoteEditorUseCase) DuplicateItem(sessionID string, index int) (SessionState, error) {
	return u.mutate(sessionID, func(s *editorSession) error {
		if !s.doc.DuplicateItem(index) {
			return ErrItemNotFound
		}
		return nil
	})
}

func (u *QuoteEditorUseCase) RemoveItem(sessionID string, index int) (SessionState, error) {
	return u.mutate(sessionID, func(s *editorSession) error {
		if !s.doc.RemoveItem(index) {
			return ErrItemNotFound
		}
		return nil
	})
}

func (u *QuoteEditorUseCase) UpdateGeneral(sessionID string, p GeneralPatch) (SessionState, error) {
	return u.mutate(sessionID, func(s *editorSession) error {
		g := &s.doc.General
		if p.ClientName != nil {
			g.ClientName = *p.ClientName
		}
		if p.ClientCnpj != nil {
			g.ClientCnpj = *p.ClientCnpj
		}
		if p.ClientEmail != nil {
			g.ClientEmail = *p.ClientEmail
		}
		if p.ClientPhone != nil {
			g.ClientPhone = *p.ClientPhone
		}
		if p.GuestCount != nil {
			s.doc.SetGuestCount(*p.GuestCount)
		}
		if p.PriceTableID != nil {
			s.doc.SetPriceTable(*p.PriceTableID)
		}
		if p.GeneralDiscount != nil {
			s.doc.SetGeneralDiscount(*p.GeneralDiscount)
		}
		s.doc.Dirty = true
		return nil
	})
}

// Save persists the session's document. An admin inserts on first save and
// updates afterwards. A client submission always inserts a fresh identity
// with every pricing field redacted; the session never adopts the created id,
// so a later save cannot turn into an update. At most one save may be in
// flight per session; a second concurrent save is rejected. A failed save
// leaves the document dirty and unchanged.
func (u *QuoteEditorUseCase) Save(ctx context.Context, sessionID string) (SessionState, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return SessionState{}, err
	}

	s.mu.Lock()
	if s.saving {
		s.mu.Unlock()
		return SessionState{}, ErrSaveInFlight
	}
	s.saving = true
	role := s.role
	snapshot := s.doc.Redacted(role)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.saving = false
		s.mu.Unlock()
	}()

	var saved *entities.QuoteDocument
	if !role.PricingVisible() {
		snapshot.ID = uuid.NewString()
		snapshot.Status = entities.QuoteStatusSubmitted
		saved, err = u.quotes.Insert(ctx, snapshot)
	} else if snapshot.ID == "" {
		snapshot.ID = uuid.NewString()
		saved, err = u.quotes.Insert(ctx, snapshot)
	} else {
		saved, err = u.quotes.Update(ctx, snapshot)
	}
	if err != nil {
		u.log.Error().Err(err).Str("session_id", sessionID).Msg("quote save failed")
		return SessionState{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if role.PricingVisible() {
		s.doc.ID = saved.ID
	}
	s.doc.Dirty = false
	state := s.snapshot()
	state.SavedQuoteID = saved.ID
	u.log.Info().Str("quote_id", saved.ID).Str("session_id", sessionID).Msg("quote saved")
	return state, nil
}

func (u *QuoteEditorUseCase) session(id string) (*editorSession, error) {
	u.mu.RLock()
	s, ok := u.sessions[strings.TrimSpace(id)]
	u.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// mutate runs one document operation under the session lock and recomputes
// totals before the snapshot is taken.
func (u *QuoteEditorUseCase) mutate(sessionID string, fn func(*editorSession) error) (SessionState, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return SessionState{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s); err != nil {
		return SessionState{}, err
	}
	s.recompute(u.catalog)
	return s.snapshot(), nil
}

func (s *editorSession) recompute(cat *catalog.Store) {
	s.totals = pricing.ComputeTotals(s.doc, cat, s.role)
	s.totals.Apply(s.doc)
}

func (s *editorSession) snapshot() SessionState {
	return SessionState{
		SessionID: s.id,
		Role:      s.role,
		Document:  *s.doc.Clone(),
		Totals:    s.totals,
		Dirty:     s.doc.Dirty,
	}
}
