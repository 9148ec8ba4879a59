package routes

import (
	"espaco_eventos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog  = "/catalog"
	PathSessions = "/sessions"
	PathPayments = "/payments"
)

func addQuoteRoutes(
	rg *gin.RouterGroup,
	catalogHandler *handlers.CatalogHandler,
	sessionHandler *handlers.QuoteSessionHandler,
	paymentHandler *handlers.QuotePaymentHandler,
) {
	rg.GET(PathCatalog, catalogHandler.GetCatalog)

	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", sessionHandler.OpenSession)
		sessions.GET("/:session_id", sessionHandler.GetSession)
		sessions.POST("/:session_id/dates", sessionHandler.AddDate)
		sessions.PATCH("/:session_id/dates/:index", sessionHandler.UpdateDate)
		sessions.DELETE("/:session_id/dates/:index", sessionHandler.RemoveDate)
		sessions.POST("/:session_id/items", sessionHandler.AddItems)
		sessions.PATCH("/:session_id/items/:index", sessionHandler.UpdateItem)
		sessions.POST("/:session_id/items/:index/duplicate", sessionHandler.DuplicateItem)
		sessions.DELETE("/:session_id/items/:index", sessionHandler.RemoveItem)
		sessions.PATCH("/:session_id/general", sessionHandler.UpdateGeneral)
		sessions.POST("/:session_id/save", sessionHandler.SaveSession)
		sessions.GET("/:session_id/pdf", sessionHandler.ExportProposal)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:quote_id", paymentHandler.CreateDepositByQuoteID)
		payments.GET("/:quote_id", paymentHandler.GetPaymentByQuoteID)
	}
}
