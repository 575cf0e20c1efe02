// README: Route estimate value object and vehicle/weather enums.
package route

type VehicleType string

const (
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleCar        VehicleType = "car"
	VehicleBicycle    VehicleType = "bicycle"
	VehicleOnFoot     VehicleType = "on_foot"
)

// ParseVehicleType validates a caller-supplied vehicle string.
func ParseVehicleType(s string) (VehicleType, bool) {
	switch VehicleType(s) {
	case VehicleMotorcycle, VehicleCar, VehicleBicycle, VehicleOnFoot:
		return VehicleType(s), true
	}
	return "", false
}

// Weather conditions are opaque inputs from the dispatch side; anything not
// listed in the tariff's weather factors counts as clear weather.
const (
	WeatherClear     = "clear"
	WeatherRain      = "rain"
	WeatherHeavyRain = "heavy_rain"
)

// Estimate is the geographic output consumed by the fee and courier-pay
// calculators. Immutable once built.
type Estimate struct {
	DistanceKm           float64     `json:"distance_km"`
	EstimatedTimeMinutes float64     `json:"estimated_time_minutes"`
	TrafficFactor        float64     `json:"traffic_factor"`
	VehicleType          VehicleType `json:"vehicle_type"`
	WeatherFactor        float64     `json:"weather_factor"`
	// SurgeMultiplier is zero unless traffic pushed the route into surge.
	SurgeMultiplier float64 `json:"surge_multiplier,omitempty"`
}

func (e Estimate) Surged() bool {
	return e.SurgeMultiplier > 0
}
