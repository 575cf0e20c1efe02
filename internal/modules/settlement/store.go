// README: Settlement ledger backed by PostgreSQL. The settlements table
// carries UNIQUE (order_id); that constraint is what makes settlement
// at-most-once per order.
package settlement

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pedelogo/internal/modules/commission"
	"pedelogo/internal/modules/courierpay"
	"pedelogo/internal/modules/fees"
	"pedelogo/internal/modules/revenue"
	"pedelogo/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Insert writes one settlement row. ON CONFLICT DO NOTHING against the
// order_id unique constraint turns a replay into a no-op; the caller sees
// false and maps it to ErrAlreadySettled.
func (s *Store) Insert(ctx context.Context, st *Settlement) (bool, error) {
	tag, err := s.db.Exec(ctx, `
        INSERT INTO settlements (
            order_id, region, currency,
            distance_km, estimated_minutes, traffic_factor, vehicle_type, weather_factor, surge_multiplier,
            base_fee, distance_fee, service_fee, surge_fee, weather_fee,
            total_delivery_fee, calculation_method, promo_applied,
            commission_rate, commission_amount, processing_fee, restaurant_net,
            courier_base_pay, courier_distance_pay, courier_time_pay,
            courier_weather_bonus, courier_surge_bonus, tip_amount, incentive_bonus, courier_total_earnings,
            total_collected, delivery_fee_retained, net_platform_revenue,
            total_order_value, created_at
        ) VALUES (
            $1, $2, $3,
            $4, $5, $6, $7, $8, $9,
            $10, $11, $12, $13, $14,
            $15, $16, $17,
            $18, $19, $20, $21,
            $22, $23, $24,
            $25, $26, $27, $28, $29,
            $30, $31, $32,
            $33, $34
        )
        ON CONFLICT (order_id) DO NOTHING`,
		string(st.OrderID),
		st.Region,
		st.TotalOrderValue.Currency,
		st.Route.DistanceKm,
		st.Route.EstimatedTimeMinutes,
		st.Route.TrafficFactor,
		string(st.Route.VehicleType),
		st.Route.WeatherFactor,
		st.Route.SurgeMultiplier,
		st.DeliveryFee.BaseFee.Amount,
		st.DeliveryFee.DistanceFee.Amount,
		st.DeliveryFee.ServiceFee.Amount,
		st.DeliveryFee.SurgeFee.Amount,
		st.DeliveryFee.WeatherFee.Amount,
		st.DeliveryFee.Total.Amount,
		st.DeliveryFee.CalculationMethod,
		st.DeliveryFee.PromoApplied,
		st.Commission.Rate,
		st.Commission.Amount.Amount,
		st.Commission.ProcessingFee.Amount,
		st.Commission.RestaurantNet.Amount,
		st.CourierPayment.BasePay.Amount,
		st.CourierPayment.DistancePay.Amount,
		st.CourierPayment.TimePay.Amount,
		st.CourierPayment.WeatherBonus.Amount,
		st.CourierPayment.SurgeBonus.Amount,
		st.CourierPayment.TipAmount.Amount,
		st.CourierPayment.IncentiveBonus.Amount,
		st.CourierPayment.TotalEarnings.Amount,
		st.PlatformRevenue.TotalCollected.Amount,
		st.PlatformRevenue.DeliveryFeeRetained.Amount,
		st.PlatformRevenue.NetPlatformRevenue.Amount,
		st.TotalOrderValue.Amount,
		st.CreatedAt,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *Store) Get(ctx context.Context, orderID types.ID) (*Settlement, error) {
	row := s.db.QueryRow(ctx, `
        SELECT order_id, region, currency,
               distance_km, estimated_minutes, traffic_factor, vehicle_type, weather_factor, surge_multiplier,
               base_fee, distance_fee, service_fee, surge_fee, weather_fee,
               total_delivery_fee, calculation_method, promo_applied,
               commission_rate, commission_amount, processing_fee, restaurant_net,
               courier_base_pay, courier_distance_pay, courier_time_pay,
               courier_weather_bonus, courier_surge_bonus, tip_amount, incentive_bonus, courier_total_earnings,
               total_collected, delivery_fee_retained, net_platform_revenue,
               total_order_value, created_at
        FROM settlements
        WHERE order_id = $1`, string(orderID),
	)

	var (
		st       Settlement
		currency string
		region   sql.NullString

		baseFee, distanceFee, serviceFee, surgeFee, weatherFee, totalFee int64
		commissionAmount, processingFee, restaurantNet                   int64
		basePay, distancePay, timePay, weatherBonus, surgeBonus          int64
		tipAmount, incentiveBonus, totalEarnings                         int64
		totalCollected, feeRetained, netRevenue, totalOrderValue         int64
	)

	err := row.Scan(
		&st.OrderID, &region, &currency,
		&st.Route.DistanceKm, &st.Route.EstimatedTimeMinutes, &st.Route.TrafficFactor,
		&st.Route.VehicleType, &st.Route.WeatherFactor, &st.Route.SurgeMultiplier,
		&baseFee, &distanceFee, &serviceFee, &surgeFee, &weatherFee,
		&totalFee, &st.DeliveryFee.CalculationMethod, &st.DeliveryFee.PromoApplied,
		&st.Commission.Rate, &commissionAmount, &processingFee, &restaurantNet,
		&basePay, &distancePay, &timePay,
		&weatherBonus, &surgeBonus, &tipAmount, &incentiveBonus, &totalEarnings,
		&totalCollected, &feeRetained, &netRevenue,
		&totalOrderValue, &st.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if region.Valid {
		st.Region = region.String
	}
	m := func(v int64) types.Money {
		return types.Money{Amount: v, Currency: currency}
	}

	st.DeliveryFee = fees.DeliveryFee{
		BaseFee:           m(baseFee),
		DistanceFee:       m(distanceFee),
		ServiceFee:        m(serviceFee),
		SurgeFee:          m(surgeFee),
		WeatherFee:        m(weatherFee),
		Total:             m(totalFee),
		CalculationMethod: st.DeliveryFee.CalculationMethod,
		PromoApplied:      st.DeliveryFee.PromoApplied,
	}
	st.Commission = commission.Commission{
		OrderSubtotal: m(totalCollected - totalFee),
		Rate:          st.Commission.Rate,
		Amount:        m(commissionAmount),
		ProcessingFee: m(processingFee),
		RestaurantNet: m(restaurantNet),
	}
	st.CourierPayment = courierpay.CourierPayment{
		BasePay:        m(basePay),
		DistancePay:    m(distancePay),
		TimePay:        m(timePay),
		WeatherBonus:   m(weatherBonus),
		SurgeBonus:     m(surgeBonus),
		TipAmount:      m(tipAmount),
		IncentiveBonus: m(incentiveBonus),
		TotalEarnings:  m(totalEarnings),
	}
	st.PlatformRevenue = revenue.PlatformRevenue{
		TotalCollected:      m(totalCollected),
		RestaurantPayout:    m(restaurantNet),
		DeliveryPayout:      m(totalEarnings),
		PlatformCommission:  m(commissionAmount),
		ServiceFees:         m(serviceFee),
		ProcessingCosts:     m(processingFee),
		DeliveryFeeRetained: m(feeRetained),
		NetPlatformRevenue:  m(netRevenue),
	}
	st.TotalOrderValue = m(totalOrderValue)

	return &st, nil
}
