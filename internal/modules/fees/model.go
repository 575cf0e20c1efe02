// README: Delivery fee breakdown value object.
package fees

import "pedelogo/internal/types"

const MethodDistanceBased = "distance_based"

// DeliveryFee is the customer-facing fee breakdown. When a free-delivery
// promo applies, Total is forced to zero but the component fields keep
// their computed values so the ledger stays auditable.
type DeliveryFee struct {
	BaseFee     types.Money `json:"base_fee"`
	DistanceFee types.Money `json:"distance_fee"`
	ServiceFee  types.Money `json:"service_fee"`
	SurgeFee    types.Money `json:"surge_fee"`
	WeatherFee  types.Money `json:"weather_fee"`
	Total       types.Money `json:"total_delivery_fee"`

	CalculationMethod string `json:"calculation_method"`
	PromoApplied      bool   `json:"promo_applied"`
}
