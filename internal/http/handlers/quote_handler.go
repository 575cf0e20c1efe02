// README: Quote handler; fee/earnings preview before checkout, with
// optional address geocoding.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pedelogo/internal/maps"
	"pedelogo/internal/modules/settlement"
	"pedelogo/internal/types"
)

type QuoteHandler struct {
	settlement *settlement.Service
	geocoder   *maps.Geocoder
}

// NewQuoteHandler wires the quote endpoint. geocoder may be nil; quotes
// then require coordinates in the request.
func NewQuoteHandler(svc *settlement.Service, geocoder *maps.Geocoder) *QuoteHandler {
	return &QuoteHandler{settlement: svc, geocoder: geocoder}
}

type quoteRequest struct {
	settleRequest
	RestaurantAddress string `json:"restaurant_address"`
	CustomerAddress   string `json:"customer_address"`
}

func (h *QuoteHandler) Quote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	if req.RestaurantLocation.IsZero() && req.RestaurantAddress != "" {
		p, ok := h.geocode(c, req.RestaurantAddress)
		if !ok {
			return
		}
		req.RestaurantLocation = p
	}
	if req.CustomerLocation.IsZero() && req.CustomerAddress != "" {
		p, ok := h.geocode(c, req.CustomerAddress)
		if !ok {
			return
		}
		req.CustomerLocation = p
	}

	st, err := h.settlement.Quote(c.Request.Context(), req.command())
	if err != nil {
		writeSettlementError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *QuoteHandler) geocode(c *gin.Context, address string) (types.Point, bool) {
	if h.geocoder == nil {
		writeError(c, http.StatusBadRequest, "geocoding not configured; send coordinates")
		return types.Point{}, false
	}
	p, err := h.geocoder.Geocode(c.Request.Context(), address)
	if err != nil {
		writeError(c, http.StatusBadGateway, "geocoding failed")
		return types.Point{}, false
	}
	return p, true
}
