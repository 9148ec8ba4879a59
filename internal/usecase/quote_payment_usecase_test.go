package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"espaco_eventos/internal/domain/entities"
	mock_interfaces "espaco_eventos/internal/usecase/interfaces/mocks"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func submittedQuote() *entities.QuoteDocument {
	return &entities.QuoteDocument{
		ID: "q-1",
		General: entities.GeneralInfo{
			GuestCount:   50,
			PriceTableID: "tbl",
			Dates:        []entities.EventDate{{Date: "2026-09-01"}},
		},
		Items:  []entities.LineItem{{ServiceID: "svc-jantar", Quantity: 1}},
		Status: entities.QuoteStatusSubmitted,
	}
}

func newPaymentUC(t *testing.T, ctrl *gomock.Controller) (
	*QuotePaymentUseCase,
	*mock_interfaces.MockIQuotePaymentRepository,
	*mock_interfaces.MockIQuoteRepository,
	*mock_interfaces.MockIPaymentGateway,
) {
	t.Helper()
	repo := mock_interfaces.NewMockIQuotePaymentRepository(ctrl)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewQuotePaymentUseCase(repo, quotes, editorCatalog(), gateway, zerolog.Nop())
	return uc, repo, quotes, gateway
}

func TestQuotePaymentUseCase_CreateDeposit(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"a@b.c"}}`)

	t.Run("invalid quote id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newPaymentUC(t, ctrl)

		_, err := uc.CreateDeposit(context.Background(), "   ", payload)
		if !errors.Is(err, ErrInvalidPaymentQuoteID) {
			t.Fatalf("expected ErrInvalidPaymentQuoteID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newPaymentUC(t, ctrl)

		_, err := uc.CreateDeposit(context.Background(), "q-1", json.RawMessage("{"))
		if !errors.Is(err, ErrInvalidProviderPayload) {
			t.Fatalf("expected ErrInvalidProviderPayload, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, quotes, _ := newPaymentUC(t, ctrl)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(nil, nil)

		_, err := uc.CreateDeposit(context.Background(), "q-1", payload)
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("quote still draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, quotes, _ := newPaymentUC(t, ctrl)

		doc := submittedQuote()
		doc.Status = entities.QuoteStatusDraft
		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(doc, nil)

		_, err := uc.CreateDeposit(context.Background(), "q-1", payload)
		if !errors.Is(err, ErrQuoteNotSubmitted) {
			t.Fatalf("expected ErrQuoteNotSubmitted, got %v", err)
		}
	})

	t.Run("amount derived from stored quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, quotes, gateway := newPaymentUC(t, ctrl)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(submittedQuote(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(req, &m); err != nil {
					t.Fatalf("enriched payload is not json: %v", err)
				}
				// 90 * 50 guests = 4500 minus the 100 credit.
				if m["transaction_amount"] != 4400.0 {
					t.Fatalf("expected derived amount 4400, got %v", m["transaction_amount"])
				}
				if m["external_reference"] != "q-1" {
					t.Fatalf("expected external_reference q-1, got %v", m["external_reference"])
				}
				if m["payment_method_id"] != "pix" {
					t.Fatalf("caller payload fields must survive, got %v", m)
				}
				return "789", "approved", json.RawMessage(`{"id":789,"status":"approved"}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.QuotePayment{})).DoAndReturn(
			func(_ context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
				if p.ID != "789" || p.QuoteID != "q-1" || p.Amount != 4400 {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if p.Status != entities.PaymentStatusAprovado {
					t.Fatalf("expected aprovado, got %s", p.Status)
				}
				return p, nil
			},
		)

		created, err := uc.CreateDeposit(context.Background(), "q-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Amount != 4400 {
			t.Fatalf("expected 4400, got %v", created.Amount)
		}
	})

	t.Run("gateway unauthorized is mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, quotes, gateway := newPaymentUC(t, ctrl)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(submittedQuote(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		_, err := uc.CreateDeposit(context.Background(), "q-1", payload)
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("gateway bad request is mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, quotes, gateway := newPaymentUC(t, ctrl)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(submittedQuote(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`{"error":"bad_request","status":400}`))

		_, err := uc.CreateDeposit(context.Background(), "q-1", payload)
		if !errors.Is(err, ErrPaymentGatewayBadRequest) {
			t.Fatalf("expected ErrPaymentGatewayBadRequest, got %v", err)
		}
	})
}

func TestQuotePaymentUseCase_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo, _, _ := newPaymentUC(t, ctrl)

	repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.QuotePayment{}, nil)
	if _, err := uc.GetByID(context.Background(), "p-1"); !errors.Is(err, ErrQuotePaymentNotFound) {
		t.Fatalf("expected ErrQuotePaymentNotFound, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "p-2").Return(entities.QuotePayment{ID: "p-2"}, nil)
	p, err := uc.GetByID(context.Background(), "p-2")
	if err != nil || p.ID != "p-2" {
		t.Fatalf("expected payment, got %+v err=%v", p, err)
	}
}

func TestQuotePaymentUseCase_ListByQuoteID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo, _, _ := newPaymentUC(t, ctrl)

	if _, err := uc.ListByQuoteID(context.Background(), " "); !errors.Is(err, ErrInvalidPaymentQuoteID) {
		t.Fatalf("expected ErrInvalidPaymentQuoteID, got %v", err)
	}

	repo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.QuotePayment{{ID: "p-1"}}, nil)
	list, err := uc.ListByQuoteID(context.Background(), "q-1")
	if err != nil || len(list) != 1 {
		t.Fatalf("expected one payment, got %v err=%v", list, err)
	}
}
