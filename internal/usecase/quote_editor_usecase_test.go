package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"espaco_eventos/internal/domain/catalog"
	"espaco_eventos/internal/domain/entities"
	mock_interfaces "espaco_eventos/internal/usecase/interfaces/mocks"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func ptr(v float64) *float64 { return &v }

func editorCatalog() *catalog.Store {
	return catalog.New(
		[]entities.Service{
			{ID: "svc-salao", Name: "Salão", Category: entities.CategoryEspaco, Unit: entities.UnitPerUnit, BasePrice: 1000},
			{ID: "svc-jantar", Name: "Jantar", Category: entities.CategoryGastronomia, Unit: entities.UnitPerGuest, BasePrice: 90},
		},
		[]entities.PriceTable{{ID: "tbl", Name: "Padrão", Modifier: ptr(1.0), ConsumableCredit: 100}},
		nil,
	)
}

func newEditor(repo *mock_interfaces.MockIQuoteRepository) *QuoteEditorUseCase {
	return NewQuoteEditorUseCase(editorCatalog(), repo, zerolog.Nop())
}

func TestQuoteEditorUseCase_Open(t *testing.T) {
	t.Run("fresh session without id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newEditor(repo)

		state, err := uc.Open(context.Background(), "", entities.RoleAdmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.SessionID == "" {
			t.Fatalf("expected a session id")
		}
		if state.Document.General.GuestCount != 100 {
			t.Fatalf("expected default document, got %+v", state.Document.General)
		}
		if state.Dirty {
			t.Fatalf("fresh session must not be dirty")
		}
	})

	t.Run("load failure falls back to fresh document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newEditor(repo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(nil, errors.New("db down"))

		state, err := uc.Open(context.Background(), "q-1", entities.RoleAdmin)
		if err != nil {
			t.Fatalf("open must not fail on load error, got %v", err)
		}
		if state.Notice == "" {
			t.Fatalf("expected a notice about the failed load")
		}
		if state.Document.ID != "" {
			t.Fatalf("fallback document must not carry the requested id")
		}
	})

	t.Run("missing quote falls back with notice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newEditor(repo)

		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(nil, nil)

		state, err := uc.Open(context.Background(), "q-1", entities.RoleAdmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.Notice == "" {
			t.Fatalf("expected a notice for the missing quote")
		}
	})

	t.Run("hydrates stored quote and recomputes totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newEditor(repo)

		stored := &entities.QuoteDocument{
			ID: "q-1",
			General: entities.GeneralInfo{
				GuestCount:   50,
				PriceTableID: "tbl",
				Dates:        []entities.EventDate{{Date: "2026-09-01"}},
			},
			Items:  []entities.LineItem{{ServiceID: "svc-jantar", Quantity: 1}},
			Status: entities.QuoteStatusDraft,
		}
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(stored, nil)

		state, err := uc.Open(context.Background(), "q-1", entities.RoleAdmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.Document.ID != "q-1" {
			t.Fatalf("expected adopted id, got %q", state.Document.ID)
		}
		// 90 * 50 guests = 4500, minus the 100 consumable credit.
		if state.Totals.GrandTotal != 4400 {
			t.Fatalf("expected recomputed grand total 4400, got %v", state.Totals.GrandTotal)
		}
		if state.Dirty {
			t.Fatalf("hydrated session must start clean")
		}
	})
}

func TestQuoteEditorUseCase_MutationsRecomputeTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := newEditor(repo)

	opened, err := uc.Open(context.Background(), "", entities.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sid := opened.SessionID

	if _, err := uc.UpdateGeneral(sid, GeneralPatch{PriceTableID: strPtr("tbl")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state, err := uc.AddItems(sid, []string{"svc-salao", "svc-fantasma"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state.Document.Items) != 1 {
		t.Fatalf("unknown service must be skipped, got %d items", len(state.Document.Items))
	}
	if state.Totals.GrandTotal != 1000 {
		t.Fatalf("expected totals recomputed to 1000, got %v", state.Totals.GrandTotal)
	}
	if !state.Dirty {
		t.Fatalf("mutation must mark the session dirty")
	}
	// Item assigned to the first event date by default.
	if state.Document.Items[0].AssignedDate != state.Document.General.Dates[0].Date {
		t.Fatalf("expected default date assignment, got %q", state.Document.Items[0].AssignedDate)
	}

	state, err = uc.UpdateItem(sid, 0, entities.ItemPatch{DiscountPercent: ptr(50)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Totals.GrandTotal != 500 {
		t.Fatalf("expected 500 after 50%% discount, got %v", state.Totals.GrandTotal)
	}

	state, err = uc.DuplicateItem(sid, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state.Document.Items) != 2 || state.Totals.GrandTotal != 1000 {
		t.Fatalf("expected duplicate to double the total, got %v with %d items", state.Totals.GrandTotal, len(state.Document.Items))
	}

	if _, err := uc.RemoveItem(sid, 5); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if _, err := uc.UpdateDate(sid, 9, entities.DatePatch{}); !errors.Is(err, ErrDateNotFound) {
		t.Fatalf("expected ErrDateNotFound, got %v", err)
	}
}

func TestQuoteEditorUseCase_UnknownSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := newEditor(repo)

	if _, err := uc.Get("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := uc.Save(context.Background(), "nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestQuoteEditorUseCase_SaveAdminInsertThenUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := newEditor(repo)

	opened, _ := uc.Open(context.Background(), "", entities.RoleAdmin)
	sid := opened.SessionID
	if _, err := uc.UpdateGeneral(sid, GeneralPatch{ClientName: strPtr("Acme")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, doc *entities.QuoteDocument) (*entities.QuoteDocument, error) {
			if doc.ID == "" {
				t.Fatalf("expected an assigned id on insert")
			}
			return doc, nil
		},
	)

	state, err := uc.Save(context.Background(), sid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.SavedQuoteID == "" {
		t.Fatalf("expected saved quote id")
	}
	if state.Dirty {
		t.Fatalf("saved session must be clean")
	}
	if state.Document.ID != state.SavedQuoteID {
		t.Fatalf("admin session must adopt the saved id")
	}

	// Second save goes through Update with the adopted id.
	if _, err := uc.UpdateGeneral(sid, GeneralPatch{ClientName: strPtr("Acme Ltda")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, doc *entities.QuoteDocument) (*entities.QuoteDocument, error) {
			if doc.ID != state.SavedQuoteID {
				t.Fatalf("expected update under id %q, got %q", state.SavedQuoteID, doc.ID)
			}
			return doc, nil
		},
	)
	if _, err := uc.Save(context.Background(), sid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQuoteEditorUseCase_SaveClientAlwaysInsertsRedacted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := newEditor(repo)

	opened, _ := uc.Open(context.Background(), "", entities.RoleClient)
	sid := opened.SessionID
	if _, err := uc.UpdateGeneral(sid, GeneralPatch{
		ClientName:      strPtr("Maria"),
		PriceTableID:    strPtr("tbl"),
		GeneralDiscount: ptr(200),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.AddItems(sid, []string{"svc-salao"}, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var inserted *entities.QuoteDocument
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, doc *entities.QuoteDocument) (*entities.QuoteDocument, error) {
			inserted = doc
			return doc, nil
		},
	).Times(2)

	state, err := uc.Save(context.Background(), sid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inserted.Status != entities.QuoteStatusSubmitted {
		t.Fatalf("client save must submit, got %s", inserted.Status)
	}
	if inserted.General.PriceTableID != "" || inserted.General.GeneralDiscount != 0 {
		t.Fatalf("expected pricing redacted, got %+v", inserted.General)
	}
	if state.Document.ID != "" {
		t.Fatalf("client session must not adopt the saved id")
	}
	firstID := state.SavedQuoteID

	// A second save creates a brand new quote, never an update.
	if _, err := uc.UpdateGeneral(sid, GeneralPatch{ClientName: strPtr("Maria Silva")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state, err = uc.Save(context.Background(), sid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.SavedQuoteID == firstID {
		t.Fatalf("second client save must create a fresh identity")
	}
}

func TestQuoteEditorUseCase_SaveFailureKeepsDirty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := newEditor(repo)

	opened, _ := uc.Open(context.Background(), "", entities.RoleAdmin)
	sid := opened.SessionID
	if _, err := uc.UpdateGeneral(sid, GeneralPatch{ClientName: strPtr("Acme")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil, errors.New("dynamo down"))

	if _, err := uc.Save(context.Background(), sid); err == nil {
		t.Fatalf("expected save failure")
	}
	state, err := uc.Get(sid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !state.Dirty {
		t.Fatalf("failed save must leave the document dirty")
	}
	if state.Document.ID != "" {
		t.Fatalf("failed save must not adopt an id")
	}
}

func TestQuoteEditorUseCase_SaveSingleFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := newEditor(repo)

	opened, _ := uc.Open(context.Background(), "", entities.RoleAdmin)
	sid := opened.SessionID

	entered := make(chan struct{})
	release := make(chan struct{})
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, doc *entities.QuoteDocument) (*entities.QuoteDocument, error) {
			close(entered)
			<-release
			return doc, nil
		},
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := uc.Save(context.Background(), sid); err != nil {
			t.Errorf("first save failed: %v", err)
		}
	}()

	<-entered
	if _, err := uc.Save(context.Background(), sid); !errors.Is(err, ErrSaveInFlight) {
		t.Fatalf("expected ErrSaveInFlight, got %v", err)
	}
	close(release)
	wg.Wait()

	// The flag is released after completion; a later save works again.
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, doc *entities.QuoteDocument) (*entities.QuoteDocument, error) {
			return doc, nil
		},
	)
	if _, err := uc.Save(context.Background(), sid); err != nil {
		t.Fatalf("unexpected error after release: %v", err)
	}
}

func strPtr(s string) *string { return &s }
