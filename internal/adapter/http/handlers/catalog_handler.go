package handlers

import (
	"net/http"

	"espaco_eventos/internal/adapter/http/dto/response"
	"espaco_eventos/internal/adapter/http/middleware"
	"espaco_eventos/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the reference data the editor works against. The
// catalog is loaded once at startup and is immutable for the process
// lifetime.
type CatalogHandler struct {
	catalog *catalog.Store
}

func NewCatalogHandler(cat *catalog.Store) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// GetCatalog lists services by category plus, for pricing-visible roles, the
// price tables.
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	role := middleware.RoleFrom(c)
	c.JSON(http.StatusOK, response.FromCatalog(h.catalog, role))
}
