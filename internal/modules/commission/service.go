// README: Commission calculator; commission is charged on the food
// subtotal only, never on the delivery fee.
package commission

import (
	"errors"
	"fmt"

	"pedelogo/internal/tariff"
	"pedelogo/internal/types"
)

var ErrInvalidInput = errors.New("invalid commission input")

// Compute builds the commission for an order. rateOverride replaces the
// tariff commission rate when non-zero (per-restaurant contracts); it must
// stay within (0, 1]. The minimum commission floors the platform's cut on
// low-value orders. The processing fee mirrors card-processor pricing:
// a percentage of the full charge (subtotal + delivery fee) plus a fixed
// amount.
func Compute(orderSubtotal, deliveryFeeTotal types.Money, rateOverride float64, t tariff.Tariff) (Commission, error) {
	if orderSubtotal.Amount <= 0 {
		return Commission{}, fmt.Errorf("%w: order subtotal must be positive", ErrInvalidInput)
	}
	if deliveryFeeTotal.Negative() {
		return Commission{}, fmt.Errorf("%w: delivery fee must not be negative", ErrInvalidInput)
	}

	rate := t.CommissionRate
	if rateOverride != 0 {
		if rateOverride < 0 || rateOverride > 1 {
			return Commission{}, fmt.Errorf("%w: commission rate override %v out of (0, 1]", ErrInvalidInput, rateOverride)
		}
		rate = rateOverride
	}

	cur := t.Currency
	amount := types.MaxMoney(orderSubtotal.MulRate(rate), types.FromFloat(t.MinimumCommission, cur))

	charged := orderSubtotal.Add(deliveryFeeTotal)
	processing := charged.MulRate(t.ProcessingFeeRate).Add(types.FromFloat(t.ProcessingFeeFixed, cur))

	return Commission{
		OrderSubtotal: orderSubtotal,
		Rate:          rate,
		Amount:        amount,
		ProcessingFee: processing,
		RestaurantNet: orderSubtotal.Sub(amount).Sub(processing),
	}, nil
}
