package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tripvault/tripvault/internal/authz"
	portssvc "github.com/tripvault/tripvault/internal/core/ports/services"
	"github.com/tripvault/tripvault/internal/dto"
	"github.com/tripvault/tripvault/internal/middleware"
)

// catalogHandler serves the mock travel catalog.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newCatalogHandler(cs portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: cs}
}

// registerCatalogRoutes registers the flight and hotel catalog routes.
func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newCatalogHandler(catalogService)

	catalog := rg.Group("/catalog", middleware.RequireOperation(authz.OpViewCatalog))
	{
		catalog.GET("/flights", h.listFlights)
		catalog.GET("/hotels", h.listHotels)
	}
}

// listFlights godoc
// @Summary List bookable flights
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.MockFlightResponse
// @Security BearerAuth
// @Router /catalog/flights [get]
func (h *catalogHandler) listFlights(c *gin.Context) {
	flights, err := h.catalogService.ListFlights(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMockFlightResponseSlice(flights))
}

// listHotels godoc
// @Summary List bookable hotels
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.MockHotelResponse
// @Security BearerAuth
// @Router /catalog/hotels [get]
func (h *catalogHandler) listHotels(c *gin.Context) {
	hotels, err := h.catalogService.ListHotels(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMockHotelResponseSlice(hotels))
}
