// README: Common value objects shared across modules.
package types

import "math"

type ID string

// Point is a WGS84 coordinate pair in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// IsZero reports whether the point is the (0,0) null island placeholder,
// which callers treat as "not provided".
func (p Point) IsZero() bool {
	return p.Lat == 0 && p.Lng == 0
}

// Money is an amount in integer minor units (centavos for BRL). All
// settlement arithmetic happens on Money so float drift never reaches a
// persisted value.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// FromFloat converts an amount in major units (e.g. 3.99) to Money,
// rounding half away from zero.
func FromFloat(v float64, currency string) Money {
	return Money{Amount: roundToMinor(v * 100), Currency: currency}
}

func (m Money) Add(o Money) Money {
	return Money{Amount: m.Amount + o.Amount, Currency: m.Currency}
}

func (m Money) Sub(o Money) Money {
	return Money{Amount: m.Amount - o.Amount, Currency: m.Currency}
}

// MulRate scales the amount by a dimensionless rate, rounding half away
// from zero to whole minor units.
func (m Money) MulRate(rate float64) Money {
	return Money{Amount: roundToMinor(float64(m.Amount) * rate), Currency: m.Currency}
}

func (m Money) Negative() bool {
	return m.Amount < 0
}

func (m Money) IsZero() bool {
	return m.Amount == 0
}

// Float64 returns the amount in major units. Display only; never feed the
// result back into calculations.
func (m Money) Float64() float64 {
	return float64(m.Amount) / 100
}

func MaxMoney(a, b Money) Money {
	if a.Amount >= b.Amount {
		return a
	}
	return b
}

func ZeroMoney(currency string) Money {
	return Money{Amount: 0, Currency: currency}
}

func roundToMinor(v float64) int64 {
	return int64(math.Round(v))
}
