// README: Route estimator; pure function of coordinates, vehicle and
// external traffic/weather signals. No network calls.
package route

import (
	"errors"
	"fmt"
	"math"

	"pedelogo/internal/tariff"
	"pedelogo/internal/types"
)

var ErrInvalidInput = errors.New("invalid route input")

// Request carries the trip geography plus the opaque traffic and weather
// signals supplied by the dispatch side.
type Request struct {
	Origin        types.Point
	Destination   types.Point
	VehicleType   VehicleType
	TrafficFactor float64 // 0 means "not supplied", treated as 1.0
	Weather       string
}

// Compute builds the route estimate for a trip. Distance is great-circle;
// duration scales with the vehicle's average speed, traffic and weather.
// The surge multiplier appears only when traffic crosses the tariff's
// threshold, capped at the tariff's maximum.
func Compute(req Request, t tariff.Tariff) (Estimate, error) {
	if !req.Origin.Valid() || !req.Destination.Valid() {
		return Estimate{}, fmt.Errorf("%w: coordinates out of range", ErrInvalidInput)
	}
	if req.Origin.IsZero() || req.Destination.IsZero() {
		return Estimate{}, fmt.Errorf("%w: missing coordinates", ErrInvalidInput)
	}
	if _, ok := ParseVehicleType(string(req.VehicleType)); !ok {
		return Estimate{}, fmt.Errorf("%w: unknown vehicle type %q", ErrInvalidInput, req.VehicleType)
	}

	traffic := req.TrafficFactor
	if traffic == 0 {
		traffic = 1.0
	}
	if traffic < 1.0 {
		return Estimate{}, fmt.Errorf("%w: traffic factor %v below 1.0", ErrInvalidInput, traffic)
	}

	speed := t.AvgSpeedKmh[string(req.VehicleType)]
	if speed <= 0 {
		return Estimate{}, fmt.Errorf("%w: no average speed configured for %q", ErrInvalidInput, req.VehicleType)
	}

	weatherFactor := 1.0
	if f, ok := t.WeatherFactors[req.Weather]; ok && f > 1.0 {
		weatherFactor = f
	}

	distance := haversineKm(req.Origin.Lat, req.Origin.Lng, req.Destination.Lat, req.Destination.Lng)
	minutes := distance / speed * 60 * traffic * weatherFactor

	est := Estimate{
		DistanceKm:           distance,
		EstimatedTimeMinutes: minutes,
		TrafficFactor:        traffic,
		VehicleType:          req.VehicleType,
		WeatherFactor:        weatherFactor,
	}
	if traffic > t.SurgeTrafficThreshold {
		est.SurgeMultiplier = math.Min(traffic, t.MaxSurgeMultiplier)
	}
	return est, nil
}
