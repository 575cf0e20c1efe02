package revenue

import (
	"testing"

	"pedelogo/internal/modules/commission"
	"pedelogo/internal/modules/courierpay"
	"pedelogo/internal/modules/fees"
	"pedelogo/internal/types"
)

func brl(v float64) types.Money {
	return types.FromFloat(v, "BRL")
}

// Scenario: R$50.00 subtotal, R$13.99 fee, R$10.00 commission, R$2.30
// processing, courier earns R$17.60 with no tip. Courier pay outran the
// fee, so the retained delivery fee clamps to zero in the net.
func TestCompute_StandardOrder(t *testing.T) {
	fee := fees.DeliveryFee{
		ServiceFee: brl(2.50),
		Total:      brl(13.99),
	}
	comm := commission.Commission{
		Amount:        brl(10.00),
		ProcessingFee: brl(2.30),
		RestaurantNet: brl(37.70),
	}
	pay := courierpay.CourierPayment{
		TipAmount:     brl(0),
		TotalEarnings: brl(17.60),
	}

	r := Compute(brl(50.00), fee, comm, pay)

	if r.TotalCollected.Amount != 6399 {
		t.Errorf("TotalCollected = %d, want 6399", r.TotalCollected.Amount)
	}
	if r.RestaurantPayout.Amount != 3770 {
		t.Errorf("RestaurantPayout = %d, want 3770", r.RestaurantPayout.Amount)
	}
	if r.DeliveryPayout.Amount != 1760 {
		t.Errorf("DeliveryPayout = %d, want 1760", r.DeliveryPayout.Amount)
	}
	if r.DeliveryFeeRetained.Amount != 1399-1760 {
		t.Errorf("DeliveryFeeRetained = %d, want %d", r.DeliveryFeeRetained.Amount, 1399-1760)
	}
	// net = 1000 + 250 + max(0, -361) - 230
	if r.NetPlatformRevenue.Amount != 1020 {
		t.Errorf("NetPlatformRevenue = %d, want 1020", r.NetPlatformRevenue.Amount)
	}
}

// With a fee high enough to cover courier pay, the surplus lands in the net.
func TestCompute_RetainedFeeFlowsToNet(t *testing.T) {
	fee := fees.DeliveryFee{
		ServiceFee: brl(2.50),
		Total:      brl(25.00),
	}
	comm := commission.Commission{
		Amount:        brl(10.00),
		ProcessingFee: brl(2.30),
		RestaurantNet: brl(37.70),
	}
	pay := courierpay.CourierPayment{
		TipAmount:     brl(0),
		TotalEarnings: brl(17.60),
	}

	r := Compute(brl(50.00), fee, comm, pay)

	if r.DeliveryFeeRetained.Amount != 2500-1760 {
		t.Errorf("DeliveryFeeRetained = %d, want %d", r.DeliveryFeeRetained.Amount, 2500-1760)
	}
	// net = 1000 + 250 + 740 - 230
	if r.NetPlatformRevenue.Amount != 1760 {
		t.Errorf("NetPlatformRevenue = %d, want 1760", r.NetPlatformRevenue.Amount)
	}
}

// Tips never enter the reconciliation: the courier cost in the retained-fee
// math is earnings minus tip.
func TestCompute_TipExcludedFromRetention(t *testing.T) {
	fee := fees.DeliveryFee{
		ServiceFee: brl(2.50),
		Total:      brl(25.00),
	}
	comm := commission.Commission{
		Amount:        brl(10.00),
		ProcessingFee: brl(2.30),
	}
	withTip := courierpay.CourierPayment{
		TipAmount:     brl(10.00),
		TotalEarnings: brl(27.60), // 17.60 earned + 10.00 tip
	}
	noTip := courierpay.CourierPayment{
		TipAmount:     brl(0),
		TotalEarnings: brl(17.60),
	}

	a := Compute(brl(50.00), fee, comm, withTip)
	b := Compute(brl(50.00), fee, comm, noTip)

	if a.DeliveryFeeRetained.Amount != b.DeliveryFeeRetained.Amount {
		t.Errorf("tip changed retained fee: %d vs %d", a.DeliveryFeeRetained.Amount, b.DeliveryFeeRetained.Amount)
	}
	if a.NetPlatformRevenue.Amount != b.NetPlatformRevenue.Amount {
		t.Errorf("tip changed net revenue: %d vs %d", a.NetPlatformRevenue.Amount, b.NetPlatformRevenue.Amount)
	}
}

// Free delivery: the collected total excludes the fee entirely.
func TestCompute_FreeDeliveryPromo(t *testing.T) {
	fee := fees.DeliveryFee{
		ServiceFee:   brl(2.50),
		Total:        brl(0),
		PromoApplied: true,
	}
	comm := commission.Commission{
		Amount:        brl(10.00),
		ProcessingFee: brl(1.89),
	}
	pay := courierpay.CourierPayment{
		TipAmount:     brl(0),
		TotalEarnings: brl(17.60),
	}

	r := Compute(brl(50.00), fee, comm, pay)

	if r.TotalCollected.Amount != 5000 {
		t.Errorf("TotalCollected = %d, want 5000 (no delivery fee)", r.TotalCollected.Amount)
	}
	if r.DeliveryFeeRetained.Amount != -1760 {
		t.Errorf("DeliveryFeeRetained = %d, want -1760", r.DeliveryFeeRetained.Amount)
	}
	// net = 1000 + 250 + 0 - 189
	if r.NetPlatformRevenue.Amount != 1061 {
		t.Errorf("NetPlatformRevenue = %d, want 1061", r.NetPlatformRevenue.Amount)
	}
}
