package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	request "espaco_eventos/internal/adapter/http/dto/request"
	response "espaco_eventos/internal/adapter/http/dto/response"
	"espaco_eventos/internal/adapter/http/middleware"
	"espaco_eventos/internal/domain/entities"
	"espaco_eventos/internal/domain/pricing"
	"espaco_eventos/internal/usecase"
	"espaco_eventos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSessionPayload = pkg.NewDomainErrorSimple("INVALID_SESSION_INPUT", "Invalid session payload", http.StatusBadRequest)
	errInvalidIndex          = pkg.NewDomainErrorSimple("INVALID_INDEX", "Invalid index", http.StatusBadRequest)
)

// ProposalRenderer renders the printable proposal for a session snapshot.
// Satisfied by export.ProposalGenerator.
type ProposalRenderer interface {
	Generate(doc *entities.QuoteDocument, totals pricing.TotalsResult) ([]byte, error)
}

// QuoteSessionHandler exposes the quote editor over HTTP. Every mutating
// route answers with the full recomputed session state; the caller never has
// to follow up with a read to see fresh totals.
type QuoteSessionHandler struct {
	usecase usecase.IQuoteEditorUseCase
	pdf     ProposalRenderer
}

func NewQuoteSessionHandler(uc usecase.IQuoteEditorUseCase, pdf ProposalRenderer) *QuoteSessionHandler {
	return &QuoteSessionHandler{usecase: uc, pdf: pdf}
}

// OpenSession creates an editor session, hydrating from a stored quote when
// an id is given.
func (h *QuoteSessionHandler) OpenSession(c *gin.Context) {
	var payload request.OpenSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil && c.Request.ContentLength > 0 {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	state, err := h.usecase.Open(c.Request.Context(), payload.QuoteID, middleware.RoleFrom(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSessionState(state))
}

func (h *QuoteSessionHandler) GetSession(c *gin.Context) {
	state, err := h.usecase.Get(c.Param("session_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSessionState(state))
}

func (h *QuoteSessionHandler) AddDate(c *gin.Context) {
	var payload request.AddDateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}
	state, err := h.usecase.AddDate(c.Param("session_id"), payload.ToEventDate())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSessionState(state))
}

func (h *QuoteSessionHandler) UpdateDate(c *gin.Context) {
	index, ok := pathIndex(c)
	if !ok {
		return
	}
	var payload request.UpdateDateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}
	state, err := h.usecase.UpdateDate(c.Param("session_id"), index, payload.ToPatch())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSessionState(state))
}

func (h *QuoteSessionHandler) RemoveDate(c *gin.Context) {
	index, ok := pathIndex(c)
	if !ok {
		return
	}
	state, err := h.usecase.RemoveDate(c.Param("session_id"), index)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSessionState(state))
}

func (h *QuoteSessionHandler) AddItems(c *gin.Context) {
	var payload request.AddItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}
	state, err := h.usecase.AddItems(c.Param("session_id"), payload.ServiceIDs, payload.AssignedDate)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSessionState(state))
}

func (h *QuoteSessionHandler) UpdateItem(c *gin.Context) {
	index, ok := pathIndex(c)
	if !ok {
		return
	}
	var payload request.UpdateItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}
	state, err := h.usecase.UpdateItem(c.Param("session_id"), index, payload.ToPatch())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSessionState(state))
}

func (h *QuoteSessionHandler) DuplicateItem(c *gin.Context) {
	index, ok := pathIndex(c)
	if !ok {
		return
	}
	state, err := h.usecase.DuplicateItem(c.Param("session_id"), index)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSessionState(state))
}

func (h *QuoteSessionHandler) RemoveItem(c *gin.Context) {
	index, ok := pathIndex(c)
	if !ok {
		return
	}
	state, err := h.usecase.RemoveItem(c.Param("session_id"), index)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSessionState(state))
}

func (h *QuoteSessionHandler) UpdateGeneral(c *gin.Context) {
	var payload request.UpdateGeneralRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}
	state, err := h.usecase.UpdateGeneral(c.Param("session_id"), payload.ToPatch())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSessionState(state))
}

// SaveSession persists the session's document. At most one save per session
// may be in flight; a concurrent second save answers 409.
func (h *QuoteSessionHandler) SaveSession(c *gin.Context) {
	state, err := h.usecase.Save(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSessionState(state))
}

// ExportProposal renders the printable proposal PDF from the session's
// current state.
func (h *QuoteSessionHandler) ExportProposal(c *gin.Context) {
	state, err := h.usecase.Get(c.Param("session_id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	pdfBytes, err := h.pdf.Generate(&state.Document, state.Totals)
	if err != nil {
		appErr := pkg.NewDomainError("PROPOSAL_RENDER_FAILED", "Proposal could not be rendered", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "proposta.pdf"))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (h *QuoteSessionHandler) fail(c *gin.Context, err error) {
	appErr := mapQuoteSessionError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func pathIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(errInvalidIndex.HTTPStatus, errInvalidIndex.ToHTTPError())
		return 0, false
	}
	return index, true
}

func mapQuoteSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Editor session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDateNotFound):
		return pkg.NewDomainErrorSimple("DATE_NOT_FOUND", "Event date not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSaveInFlight):
		return pkg.NewDomainErrorSimple("SAVE_IN_FLIGHT", "A save is already in progress for this session", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
