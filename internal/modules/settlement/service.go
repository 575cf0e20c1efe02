// README: Settlement service; runs the pure pipeline and owns the ledger,
// cache and event side effects around it.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pedelogo/internal/modules/commission"
	"pedelogo/internal/modules/courierpay"
	"pedelogo/internal/modules/fees"
	"pedelogo/internal/modules/revenue"
	"pedelogo/internal/modules/route"
	"pedelogo/internal/tariff"
	"pedelogo/internal/types"
)

var (
	ErrInvalidInput   = errors.New("invalid settlement input")
	ErrNotFound       = errors.New("settlement not found")
	ErrAlreadySettled = errors.New("order already settled")
)

// Ledger persists settlements with an at-most-once guarantee per order id.
type Ledger interface {
	// Insert stores a settlement; false (with nil error) means the order
	// already has one and nothing was written.
	Insert(ctx context.Context, s *Settlement) (bool, error)
	Get(ctx context.Context, orderID types.ID) (*Settlement, error)
}

// Cache is a read-through cache in front of the ledger. Best effort only.
type Cache interface {
	Get(ctx context.Context, orderID types.ID) (*Settlement, bool, error)
	Set(ctx context.Context, s *Settlement) error
}

// Publisher announces completed settlements to downstream consumers
// (payout batching, analytics). Best effort only.
type Publisher interface {
	PublishSettled(ctx context.Context, s *Settlement) error
}

type Service struct {
	ledger  Ledger
	cache   Cache
	events  Publisher
	tariffs *tariff.Registry
}

// NewService wires the settlement service. cache and events may be nil;
// ledger may be nil only when the service is used for quotes alone.
func NewService(ledger Ledger, cache Cache, events Publisher, tariffs *tariff.Registry) *Service {
	return &Service{ledger: ledger, cache: cache, events: events, tariffs: tariffs}
}

// Command carries everything the payment-confirmation handler knows about
// an order at settlement time. Monetary inputs arrive in major currency
// units; weather and peak-hours are opaque signals from the dispatch side.
type Command struct {
	OrderID                types.ID
	Region                 string
	RestaurantLocation     types.Point
	CustomerLocation       types.Point
	OrderSubtotal          float64
	VehicleType            string
	TrafficFactor          float64
	WeatherCondition       string
	TipAmount              float64
	PromoCode              string
	CommissionRateOverride float64
	IsPeakHours            bool
	DeliveriesCompleted    int
}

// Quote runs the pipeline without touching the ledger. Same inputs always
// produce the same output; CreatedAt stays zero on a quote.
func (s *Service) Quote(_ context.Context, cmd Command) (*Settlement, error) {
	return s.compute(cmd)
}

// Settle runs the pipeline and persists the result. A repeat call for the
// same order returns ErrAlreadySettled and leaves the first row untouched.
func (s *Service) Settle(ctx context.Context, cmd Command) (*Settlement, error) {
	if cmd.OrderID == "" {
		return nil, fmt.Errorf("%w: missing order id", ErrInvalidInput)
	}
	st, err := s.compute(cmd)
	if err != nil {
		return nil, err
	}
	st.CreatedAt = time.Now().UTC()

	inserted, err := s.ledger.Insert(ctx, st)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, ErrAlreadySettled
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, st)
	}
	if s.events != nil {
		_ = s.events.PublishSettled(ctx, st)
	}
	return st, nil
}

// Get returns a persisted settlement, cache first.
func (s *Service) Get(ctx context.Context, orderID types.ID) (*Settlement, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: missing order id", ErrInvalidInput)
	}
	if s.cache != nil {
		if st, ok, err := s.cache.Get(ctx, orderID); err == nil && ok {
			return st, nil
		}
	}
	st, err := s.ledger.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, st)
	}
	return st, nil
}

// compute is the five-stage pure pipeline: route, then delivery fee and
// courier pay off the route, then commission, then the revenue rollup.
func (s *Service) compute(cmd Command) (*Settlement, error) {
	t := s.tariffs.For(cmd.Region)

	if cmd.OrderSubtotal <= 0 {
		return nil, fmt.Errorf("%w: order subtotal must be positive", ErrInvalidInput)
	}
	if cmd.TipAmount < 0 {
		return nil, fmt.Errorf("%w: tip must not be negative", ErrInvalidInput)
	}

	r, err := route.Compute(route.Request{
		Origin:        cmd.RestaurantLocation,
		Destination:   cmd.CustomerLocation,
		VehicleType:   route.VehicleType(cmd.VehicleType),
		TrafficFactor: cmd.TrafficFactor,
		Weather:       cmd.WeatherCondition,
	}, t)
	if err != nil {
		return nil, err
	}

	subtotal := types.FromFloat(cmd.OrderSubtotal, t.Currency)
	tip := types.FromFloat(cmd.TipAmount, t.Currency)

	fee := fees.Compute(r, subtotal, cmd.PromoCode, t)

	pay, err := courierpay.Compute(r, tip, cmd.IsPeakHours, cmd.DeliveriesCompleted, t)
	if err != nil {
		return nil, err
	}

	comm, err := commission.Compute(subtotal, fee.Total, cmd.CommissionRateOverride, t)
	if err != nil {
		return nil, err
	}

	rev := revenue.Compute(subtotal, fee, comm, pay)

	return &Settlement{
		OrderID:         cmd.OrderID,
		Region:          cmd.Region,
		Route:           r,
		DeliveryFee:     fee,
		Commission:      comm,
		CourierPayment:  pay,
		PlatformRevenue: rev,
		TotalOrderValue: rev.TotalCollected,
	}, nil
}
