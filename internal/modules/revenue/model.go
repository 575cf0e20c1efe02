// README: Platform revenue reconciliation value object.
package revenue

import "pedelogo/internal/types"

// PlatformRevenue reconciles one settled order: what was collected, what
// flows out to the restaurant and courier, and what the platform keeps.
type PlatformRevenue struct {
	TotalCollected     types.Money `json:"total_collected"`
	RestaurantPayout   types.Money `json:"restaurant_payout"`
	DeliveryPayout     types.Money `json:"delivery_payout"`
	PlatformCommission types.Money `json:"platform_commission"`
	ServiceFees        types.Money `json:"service_fees"`
	ProcessingCosts    types.Money `json:"payment_processing_costs"`
	// DeliveryFeeRetained is what remains of the delivery fee after paying
	// the courier (tip excluded from both sides). Negative when courier
	// pay outran the fee; the net formula clamps it at zero, so guarantee
	// shortfalls are absorbed rather than booked as negative revenue.
	DeliveryFeeRetained types.Money `json:"delivery_fee_retained"`
	NetPlatformRevenue  types.Money `json:"net_platform_revenue"`
}
