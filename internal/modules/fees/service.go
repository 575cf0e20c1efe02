// README: Delivery fee calculator; pure function of route output, order
// value and the tariff.
package fees

import (
	"pedelogo/internal/modules/route"
	"pedelogo/internal/tariff"
	"pedelogo/internal/types"
)

// Compute builds the delivery fee for an order. The surge fee is the extra
// charged on base + distance by the surge multiplier; the weather fee is
// charged on the pre-surge base + distance. The service fee is a share of
// the order value and is never surged.
func Compute(r route.Estimate, orderSubtotal types.Money, promoCode string, t tariff.Tariff) DeliveryFee {
	cur := t.Currency

	base := types.FromFloat(t.BaseDeliveryFee, cur)
	distance := types.FromFloat(r.DistanceKm*t.PerKmFee, cur)
	service := orderSubtotal.MulRate(t.ServiceFeeRate)

	fee := DeliveryFee{
		BaseFee:           base,
		DistanceFee:       distance,
		ServiceFee:        service,
		SurgeFee:          types.ZeroMoney(cur),
		WeatherFee:        types.ZeroMoney(cur),
		CalculationMethod: MethodDistanceBased,
	}

	if r.Surged() {
		fee.SurgeFee = base.Add(distance).MulRate(r.SurgeMultiplier - 1)
	}
	if r.WeatherFactor > 1.0 {
		fee.WeatherFee = base.Add(distance).MulRate(r.WeatherFactor - 1)
	}

	fee.Total = base.Add(distance).Add(service).Add(fee.SurgeFee).Add(fee.WeatherFee)

	// Full override, not a discount: components above keep their computed
	// values for audit.
	if promoCode != "" && promoCode == t.FreeDeliveryPromoCode {
		fee.Total = types.ZeroMoney(cur)
		fee.PromoApplied = true
	}
	return fee
}
