// README: Courier payment calculator; pure function of route output, tip
// and incentive signals.
package courierpay

import (
	"errors"
	"fmt"

	"pedelogo/internal/modules/route"
	"pedelogo/internal/tariff"
	"pedelogo/internal/types"
)

var ErrInvalidInput = errors.New("invalid courier payment input")

// Compute builds the courier earnings for a delivery. The weather bonus
// applies when the route carries a weather factor; the surge bonus when
// the request marks peak hours OR the route surged (either alone is
// enough). The incentive bonus is a flat amount once the courier's
// completed-deliveries count reaches the tariff threshold.
func Compute(r route.Estimate, tip types.Money, isPeakHours bool, deliveriesCompleted int, t tariff.Tariff) (CourierPayment, error) {
	if tip.Negative() {
		return CourierPayment{}, fmt.Errorf("%w: tip must not be negative", ErrInvalidInput)
	}
	if deliveriesCompleted < 0 {
		return CourierPayment{}, fmt.Errorf("%w: deliveries completed must not be negative", ErrInvalidInput)
	}

	cur := t.Currency
	base := types.FromFloat(t.CourierBasePay, cur)
	distance := types.FromFloat(r.DistanceKm*t.CourierPerKmPay, cur)
	timePay := types.FromFloat(r.EstimatedTimeMinutes*t.CourierPerMinutePay, cur)

	p := CourierPayment{
		BasePay:        base,
		DistancePay:    distance,
		TimePay:        timePay,
		WeatherBonus:   types.ZeroMoney(cur),
		SurgeBonus:     types.ZeroMoney(cur),
		TipAmount:      tip,
		IncentiveBonus: types.ZeroMoney(cur),
	}

	if r.WeatherFactor > 1.0 {
		p.WeatherBonus = base.Add(distance).MulRate(t.WeatherBonusRate)
	}
	if isPeakHours || r.Surged() {
		p.SurgeBonus = base.Add(distance).MulRate(t.SurgeBonusRate)
	}
	if deliveriesCompleted >= t.IncentiveThreshold {
		p.IncentiveBonus = types.FromFloat(t.IncentiveBonus, cur)
	}

	earned := base.Add(distance).Add(timePay).
		Add(p.WeatherBonus).Add(p.SurgeBonus).Add(p.IncentiveBonus).Add(tip)
	floor := types.FromFloat(t.CourierMinimumGuarantee, cur).Add(tip)
	p.TotalEarnings = types.MaxMoney(earned, floor)

	return p, nil
}
