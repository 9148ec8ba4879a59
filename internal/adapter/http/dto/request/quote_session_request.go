package request

import (
	"strings"

	"espaco_eventos/internal/domain/entities"
	"espaco_eventos/internal/usecase"
)

// OpenSessionRequest starts an editor session. An empty quote_id opens a
// fresh default document.
type OpenSessionRequest struct {
	QuoteID string `json:"quote_id"`
}

type AddDateRequest struct {
	Date         string `json:"date" binding:"required"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Observations string `json:"observations"`
}

func (r AddDateRequest) ToEventDate() entities.EventDate {
	return entities.EventDate{
		Date:         strings.TrimSpace(r.Date),
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Observations: r.Observations,
	}
}

type UpdateDateRequest struct {
	Date         *string `json:"date"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	Observations *string `json:"observations"`
}

func (r UpdateDateRequest) ToPatch() entities.DatePatch {
	return entities.DatePatch{
		Date:         r.Date,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Observations: r.Observations,
	}
}

type AddItemsRequest struct {
	ServiceIDs   []string `json:"service_ids" binding:"required"`
	AssignedDate string   `json:"assigned_date"`
}

// UpdateItemRequest carries partial line-item updates. The discount percent
// is bounded to 0–100 here, at the input surface; the document itself only
// guarantees non-negativity.
type UpdateItemRequest struct {
	Quantity        *float64 `json:"quantity"`
	DiscountPercent *float64 `json:"discount_percent"`
	AssignedDate    *string  `json:"assigned_date"`
	Observations    *string  `json:"observations"`
}

func (r UpdateItemRequest) ToPatch() entities.ItemPatch {
	discount := r.DiscountPercent
	if discount != nil {
		d := clampPercent(*discount)
		discount = &d
	}
	return entities.ItemPatch{
		Quantity:        r.Quantity,
		DiscountPercent: discount,
		AssignedDate:    r.AssignedDate,
		Observations:    r.Observations,
	}
}

type UpdateGeneralRequest struct {
	ClientName      *string  `json:"client_name"`
	ClientCnpj      *string  `json:"client_cnpj"`
	ClientEmail     *string  `json:"client_email"`
	ClientPhone     *string  `json:"client_phone"`
	GuestCount      *int     `json:"guest_count"`
	PriceTableID    *string  `json:"price_table_id"`
	GeneralDiscount *float64 `json:"general_discount"`
}

func (r UpdateGeneralRequest) ToPatch() usecase.GeneralPatch {
	return usecase.GeneralPatch{
		ClientName:      r.ClientName,
		ClientCnpj:      r.ClientCnpj,
		ClientEmail:     r.ClientEmail,
		ClientPhone:     r.ClientPhone,
		GuestCount:      r.GuestCount,
		PriceTableID:    r.PriceTableID,
		GeneralDiscount: r.GeneralDiscount,
	}
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
