// README: Courier earnings breakdown value object.
package courierpay

import "pedelogo/internal/types"

// CourierPayment is the courier-side earnings breakdown for a single
// delivery. TotalEarnings never falls below the guaranteed minimum plus
// the tip: the tip rides on top of the guarantee, it is never absorbed
// into it.
type CourierPayment struct {
	BasePay        types.Money `json:"base_pay"`
	DistancePay    types.Money `json:"distance_pay"`
	TimePay        types.Money `json:"time_pay"`
	WeatherBonus   types.Money `json:"weather_bonus"`
	SurgeBonus     types.Money `json:"surge_bonus"`
	TipAmount      types.Money `json:"tip_amount"`
	IncentiveBonus types.Money `json:"incentive_bonus"`
	TotalEarnings  types.Money `json:"total_earnings"`
}
