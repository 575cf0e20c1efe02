// README: Settlement handlers; invoked by the payment-confirmation side
// after a charge succeeds.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pedelogo/internal/modules/settlement"
	"pedelogo/internal/types"
)

type SettlementHandler struct {
	settlement *settlement.Service
}

func NewSettlementHandler(svc *settlement.Service) *SettlementHandler {
	return &SettlementHandler{settlement: svc}
}

type settleRequest struct {
	OrderID                string      `json:"order_id"`
	Region                 string      `json:"region"`
	RestaurantLocation     types.Point `json:"restaurant_location"`
	CustomerLocation       types.Point `json:"customer_location"`
	OrderSubtotal          float64     `json:"order_subtotal"`
	VehicleType            string      `json:"vehicle_type"`
	TrafficFactor          float64     `json:"traffic_factor"`
	WeatherCondition       string      `json:"weather_condition"`
	TipAmount              float64     `json:"tip_amount"`
	PromoCode              string      `json:"promo_code"`
	CommissionRateOverride float64     `json:"commission_rate_override"`
	IsPeakHours            bool        `json:"is_peak_hours"`
	DeliveriesCompleted    int         `json:"deliveries_completed"`
}

func (r settleRequest) command() settlement.Command {
	return settlement.Command{
		OrderID:                types.ID(r.OrderID),
		Region:                 r.Region,
		RestaurantLocation:     r.RestaurantLocation,
		CustomerLocation:       r.CustomerLocation,
		OrderSubtotal:          r.OrderSubtotal,
		VehicleType:            r.VehicleType,
		TrafficFactor:          r.TrafficFactor,
		WeatherCondition:       r.WeatherCondition,
		TipAmount:              r.TipAmount,
		PromoCode:              r.PromoCode,
		CommissionRateOverride: r.CommissionRateOverride,
		IsPeakHours:            r.IsPeakHours,
		DeliveriesCompleted:    r.DeliveriesCompleted,
	}
}

func (h *SettlementHandler) Settle(c *gin.Context) {
	var req settleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.OrderID == "" {
		writeError(c, http.StatusBadRequest, "missing order_id")
		return
	}
	st, err := h.settlement.Settle(c.Request.Context(), req.command())
	if err != nil {
		writeSettlementError(c, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

func (h *SettlementHandler) Get(c *gin.Context) {
	id := c.Param("order_id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing order id")
		return
	}
	st, err := h.settlement.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeSettlementError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}
