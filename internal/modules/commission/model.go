// README: Commission breakdown value object.
package commission

import "pedelogo/internal/types"

// Commission is the platform's cut of an order plus the card-processing
// cost deducted from the restaurant side.
type Commission struct {
	OrderSubtotal types.Money `json:"order_subtotal"`
	Rate          float64     `json:"platform_commission_rate"`
	Amount        types.Money `json:"platform_commission_amount"`
	ProcessingFee types.Money `json:"payment_processing_fee"`
	// RestaurantNet carries no floor: a very small order can leave the
	// restaurant net negative. Whether the platform absorbs that or blocks
	// such orders upstream is an open product decision; the calculator
	// reports the raw number.
	RestaurantNet types.Money `json:"restaurant_net_amount"`
}
