package response

import (
	"espaco_eventos/internal/domain/entities"
	"espaco_eventos/internal/domain/pricing"
	"espaco_eventos/internal/usecase"
)

// SessionStateResponse is the snapshot every editor route returns: the
// document plus the totals recomputed on that very call.
type SessionStateResponse struct {
	SessionID    string                 `json:"session_id"`
	Role         string                 `json:"role"`
	Document     entities.QuoteDocument `json:"document"`
	Totals       pricing.TotalsResult   `json:"totals"`
	Dirty        bool                   `json:"dirty"`
	Notice       string                 `json:"notice,omitempty"`
	SavedQuoteID string                 `json:"saved_quote_id,omitempty"`
}

func FromSessionState(s usecase.SessionState) SessionStateResponse {
	return SessionStateResponse{
		SessionID:    s.SessionID,
		Role:         string(s.Role),
		Document:     s.Document,
		Totals:       s.Totals,
		Dirty:        s.Dirty,
		Notice:       s.Notice,
		SavedQuoteID: s.SavedQuoteID,
	}
}
