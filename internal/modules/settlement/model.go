// README: Settlement aggregate; the full four-way money split for one
// confirmed order.
package settlement

import (
	"time"

	"pedelogo/internal/modules/commission"
	"pedelogo/internal/modules/courierpay"
	"pedelogo/internal/modules/fees"
	"pedelogo/internal/modules/revenue"
	"pedelogo/internal/modules/route"
	"pedelogo/internal/types"
)

// Settlement is the immutable output of the pipeline for one order. It is
// built once at payment confirmation and only survives in the ledger.
type Settlement struct {
	OrderID types.ID `json:"order_id"`
	Region  string   `json:"region,omitempty"`

	Route           route.Estimate            `json:"route"`
	DeliveryFee     fees.DeliveryFee          `json:"delivery_fee"`
	Commission      commission.Commission     `json:"commission"`
	CourierPayment  courierpay.CourierPayment `json:"courier_payment"`
	PlatformRevenue revenue.PlatformRevenue   `json:"platform_revenue"`

	TotalOrderValue types.Money `json:"total_order_value"`
	CreatedAt       time.Time   `json:"created_at"`
}
