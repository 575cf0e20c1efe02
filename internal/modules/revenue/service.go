// README: Platform revenue aggregator; final stage of the settlement
// pipeline, pure reconciliation of the upstream outputs.
package revenue

import (
	"pedelogo/internal/modules/commission"
	"pedelogo/internal/modules/courierpay"
	"pedelogo/internal/modules/fees"
	"pedelogo/internal/types"
)

// Compute reconciles the four-way money split for one order. Tips pass
// straight through to the courier and never enter the platform's books.
func Compute(orderSubtotal types.Money, fee fees.DeliveryFee, comm commission.Commission, pay courierpay.CourierPayment) PlatformRevenue {
	cur := orderSubtotal.Currency

	collected := orderSubtotal.Add(fee.Total)

	// Courier cost funded by the platform, tip excluded.
	courierCost := pay.TotalEarnings.Sub(pay.TipAmount)
	retained := fee.Total.Sub(courierCost)

	retainedOrZero := retained
	if retainedOrZero.Negative() {
		retainedOrZero = types.ZeroMoney(cur)
	}

	net := comm.Amount.Add(fee.ServiceFee).Add(retainedOrZero).Sub(comm.ProcessingFee)

	return PlatformRevenue{
		TotalCollected:      collected,
		RestaurantPayout:    comm.RestaurantNet,
		DeliveryPayout:      pay.TotalEarnings,
		PlatformCommission:  comm.Amount,
		ServiceFees:         fee.ServiceFee,
		ProcessingCosts:     comm.ProcessingFee,
		DeliveryFeeRetained: retained,
		NetPlatformRevenue:  net,
	}
}
