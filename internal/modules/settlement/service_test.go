package settlement

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pedelogo/internal/tariff"
	"pedelogo/internal/types"
)

// fakeLedger keeps settlements in a map and refuses duplicates, matching
// the unique order_id constraint in the real store.
type fakeLedger struct {
	rows map[types.ID]*Settlement
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{rows: make(map[types.ID]*Settlement)}
}

func (f *fakeLedger) Insert(_ context.Context, s *Settlement) (bool, error) {
	if _, ok := f.rows[s.OrderID]; ok {
		return false, nil
	}
	f.rows[s.OrderID] = s
	return true, nil
}

func (f *fakeLedger) Get(_ context.Context, orderID types.ID) (*Settlement, error) {
	s, ok := f.rows[orderID]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

type fakePublisher struct {
	published []*Settlement
}

func (f *fakePublisher) PublishSettled(_ context.Context, s *Settlement) error {
	f.published = append(f.published, s)
	return nil
}

type fakeCache struct {
	entries map[types.ID]*Settlement
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[types.ID]*Settlement)}
}

func (f *fakeCache) Get(_ context.Context, orderID types.ID) (*Settlement, bool, error) {
	s, ok := f.entries[orderID]
	return s, ok, nil
}

func (f *fakeCache) Set(_ context.Context, s *Settlement) error {
	f.entries[s.OrderID] = s
	return nil
}

func testRegistry(t *testing.T) *tariff.Registry {
	t.Helper()
	reg, err := tariff.Load("")
	require.NoError(t, err)
	return reg
}

// Coordinates roughly 5 km apart in São Paulo; the exact haversine value
// is read back from the result where a test needs it.
var baseCmd = Command{
	OrderID:            "ord-1001",
	RestaurantLocation: types.Point{Lat: -23.5617, Lng: -46.7024},
	CustomerLocation:   types.Point{Lat: -23.6014, Lng: -46.6654},
	OrderSubtotal:      50.00,
	VehicleType:        "motorcycle",
	TrafficFactor:      1.0,
}

func TestSettle_PersistsAndPublishes(t *testing.T) {
	ledger := newFakeLedger()
	events := &fakePublisher{}
	svc := NewService(ledger, nil, events, testRegistry(t))

	st, err := svc.Settle(context.Background(), baseCmd)
	require.NoError(t, err)

	assert.Equal(t, types.ID("ord-1001"), st.OrderID)
	assert.False(t, st.CreatedAt.IsZero())
	assert.Len(t, ledger.rows, 1)
	require.Len(t, events.published, 1)
	assert.Equal(t, st, events.published[0])

	// Full-pipeline coherence on real output.
	assert.Equal(t, st.PlatformRevenue.TotalCollected, st.TotalOrderValue)
	wantCollected := st.Commission.OrderSubtotal.Add(st.DeliveryFee.Total)
	assert.Equal(t, wantCollected, st.PlatformRevenue.TotalCollected)
	assert.GreaterOrEqual(t, st.Commission.Amount.Amount, int64(200))
	assert.GreaterOrEqual(t, st.CourierPayment.TotalEarnings.Amount, int64(800))
}

func TestSettle_SecondCallReturnsAlreadySettled(t *testing.T) {
	ledger := newFakeLedger()
	events := &fakePublisher{}
	svc := NewService(ledger, nil, events, testRegistry(t))

	_, err := svc.Settle(context.Background(), baseCmd)
	require.NoError(t, err)

	_, err = svc.Settle(context.Background(), baseCmd)
	assert.ErrorIs(t, err, ErrAlreadySettled)
	assert.Len(t, ledger.rows, 1, "the first row must stay untouched")
	assert.Len(t, events.published, 1, "a replay must not publish again")
}

func TestQuote_Idempotent(t *testing.T) {
	svc := NewService(nil, nil, nil, testRegistry(t))

	a, err := svc.Quote(context.Background(), baseCmd)
	require.NoError(t, err)
	b, err := svc.Quote(context.Background(), baseCmd)
	require.NoError(t, err)

	if !reflect.DeepEqual(a, b) {
		t.Errorf("identical inputs must produce identical outputs:\n%+v\n%+v", a, b)
	}
	assert.True(t, a.CreatedAt.IsZero(), "quotes carry no settlement time")
}

func TestQuote_SurgePropagatesThroughPipeline(t *testing.T) {
	svc := NewService(nil, nil, nil, testRegistry(t))

	cmd := baseCmd
	cmd.TrafficFactor = 1.5
	st, err := svc.Quote(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, 1.5, st.Route.SurgeMultiplier)
	assert.Positive(t, st.DeliveryFee.SurgeFee.Amount, "surge fee on the customer side")
	assert.Positive(t, st.CourierPayment.SurgeBonus.Amount, "surge bonus on the courier side")
}

func TestQuote_FreeDeliveryExcludedFromCollected(t *testing.T) {
	svc := NewService(nil, nil, nil, testRegistry(t))

	cmd := baseCmd
	cmd.PromoCode = "FREE_DELIVERY"
	st, err := svc.Quote(context.Background(), cmd)
	require.NoError(t, err)

	assert.Zero(t, st.DeliveryFee.Total.Amount)
	assert.True(t, st.DeliveryFee.PromoApplied)
	assert.Equal(t, int64(5000), st.PlatformRevenue.TotalCollected.Amount)
	assert.Positive(t, st.DeliveryFee.BaseFee.Amount, "components keep pre-override values")
}

func TestQuote_TinyOrderLeavesRestaurantNegative(t *testing.T) {
	svc := NewService(nil, nil, nil, testRegistry(t))

	cmd := baseCmd
	cmd.OrderSubtotal = 1.00
	st, err := svc.Quote(context.Background(), cmd)
	require.NoError(t, err)

	assert.True(t, st.Commission.RestaurantNet.Negative(),
		"restaurant net must stay unclamped for tiny orders")
	assert.Equal(t, st.Commission.RestaurantNet, st.PlatformRevenue.RestaurantPayout)
}

func TestSettle_InvalidInput(t *testing.T) {
	svc := NewService(newFakeLedger(), nil, nil, testRegistry(t))

	tests := []struct {
		name   string
		mutate func(*Command)
	}{
		{"missing order id", func(c *Command) { c.OrderID = "" }},
		{"zero subtotal", func(c *Command) { c.OrderSubtotal = 0 }},
		{"negative subtotal", func(c *Command) { c.OrderSubtotal = -10 }},
		{"negative tip", func(c *Command) { c.TipAmount = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := baseCmd
			tt.mutate(&cmd)
			_, err := svc.Settle(context.Background(), cmd)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestSettle_RouteErrorsSurface(t *testing.T) {
	svc := NewService(newFakeLedger(), nil, nil, testRegistry(t))

	cmd := baseCmd
	cmd.VehicleType = "hoverboard"
	_, err := svc.Settle(context.Background(), cmd)
	assert.Error(t, err)
}

func TestGet_CacheFirstThenLedger(t *testing.T) {
	ledger := newFakeLedger()
	cache := newFakeCache()
	svc := NewService(ledger, cache, nil, testRegistry(t))

	st, err := svc.Settle(context.Background(), baseCmd)
	require.NoError(t, err)

	// Settle populated the cache; a ledger wipe must not break reads.
	ledger.rows = map[types.ID]*Settlement{}
	got, err := svc.Get(context.Background(), st.OrderID)
	require.NoError(t, err)
	assert.Equal(t, st, got)
}

func TestGet_FillsCacheOnMiss(t *testing.T) {
	ledger := newFakeLedger()
	cache := newFakeCache()
	svc := NewService(ledger, cache, nil, testRegistry(t))

	st, err := svc.Settle(context.Background(), baseCmd)
	require.NoError(t, err)
	delete(cache.entries, st.OrderID)

	got, err := svc.Get(context.Background(), st.OrderID)
	require.NoError(t, err)
	assert.Equal(t, st, got)
	_, ok := cache.entries[st.OrderID]
	assert.True(t, ok, "a ledger read must refill the cache")
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(newFakeLedger(), nil, nil, testRegistry(t))

	_, err := svc.Get(context.Background(), "ord-missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuote_RegionTariffSelection(t *testing.T) {
	reg := testRegistry(t)
	premium := reg.Default
	premium.BaseDeliveryFee = 9.99
	reg.Regions = map[string]tariff.Tariff{"premium": premium}
	svc := NewService(nil, nil, nil, reg)

	standard, err := svc.Quote(context.Background(), baseCmd)
	require.NoError(t, err)

	cmd := baseCmd
	cmd.Region = "premium"
	regional, err := svc.Quote(context.Background(), cmd)
	require.NoError(t, err)

	assert.Equal(t, int64(399), standard.DeliveryFee.BaseFee.Amount)
	assert.Equal(t, int64(999), regional.DeliveryFee.BaseFee.Amount)
}
