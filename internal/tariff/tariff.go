// Package tariff holds every policy constant the settlement pipeline uses.
// Nothing in the calculators is hard-coded: a deployment overrides any value
// through a config file or environment, and a region can carry a complete
// tariff of its own.
package tariff

import (
	"fmt"
	"maps"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Tariff is the full set of rates for one region. Monetary values are in
// major currency units here (config files are written by humans); the
// calculators convert to minor units on use.
type Tariff struct {
	Currency string `mapstructure:"currency"`

	// Delivery fee.
	BaseDeliveryFee       float64 `mapstructure:"base_delivery_fee"`
	PerKmFee              float64 `mapstructure:"per_km_fee"`
	ServiceFeeRate        float64 `mapstructure:"service_fee_rate"`
	FreeDeliveryPromoCode string  `mapstructure:"free_delivery_promo_code"`

	// Commission and payment processing.
	CommissionRate     float64 `mapstructure:"commission_rate"`
	MinimumCommission  float64 `mapstructure:"minimum_commission"`
	ProcessingFeeRate  float64 `mapstructure:"processing_fee_rate"`
	ProcessingFeeFixed float64 `mapstructure:"processing_fee_fixed"`

	// Courier pay.
	CourierBasePay          float64 `mapstructure:"courier_base_pay"`
	CourierPerKmPay         float64 `mapstructure:"courier_per_km_pay"`
	CourierPerMinutePay     float64 `mapstructure:"courier_per_minute_pay"`
	CourierMinimumGuarantee float64 `mapstructure:"courier_minimum_guarantee"`
	WeatherBonusRate        float64 `mapstructure:"weather_bonus_rate"`
	SurgeBonusRate          float64 `mapstructure:"surge_bonus_rate"`
	IncentiveThreshold      int     `mapstructure:"incentive_threshold"`
	IncentiveBonus          float64 `mapstructure:"incentive_bonus"`

	// Routing.
	SurgeTrafficThreshold float64            `mapstructure:"surge_traffic_threshold"`
	MaxSurgeMultiplier    float64            `mapstructure:"max_surge_multiplier"`
	AvgSpeedKmh           map[string]float64 `mapstructure:"avg_speed_kmh"`
	WeatherFactors        map[string]float64 `mapstructure:"weather_factors"`
}

// Registry is the loaded tariff set: one default plus per-region tariffs.
// A region entry in the config file is a partial override; fields it does
// not set are inherited from the default.
type Registry struct {
	Default Tariff
	Regions map[string]Tariff
}

// For returns the tariff for a region, falling back to the default when the
// region is unknown or empty.
func (r *Registry) For(region string) Tariff {
	if region != "" {
		if t, ok := r.Regions[region]; ok {
			return t
		}
	}
	return r.Default
}

// Load reads the tariff registry with viper. A missing file is not an
// error: every default below is a complete, working tariff, so a bare
// deployment runs on defaults and env overrides alone.
func Load(cfgFile string) (*Registry, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading tariff file: %w", err)
		}
	}
	v.SetEnvPrefix("PEDELOGO_TARIFF")
	v.AutomaticEnv()

	reg := &Registry{Regions: map[string]Tariff{}}
	if err := v.UnmarshalKey("default", &reg.Default); err != nil {
		return nil, fmt.Errorf("unable to decode default tariff: %w", err)
	}
	for name, raw := range v.GetStringMap("regions") {
		t := reg.Default.clone()
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &t,
			WeaklyTypedInput: true,
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(raw); err != nil {
			return nil, fmt.Errorf("unable to decode tariff for region %q: %w", name, err)
		}
		reg.Regions[name] = t
	}
	return reg, nil
}

// clone deep-copies the map fields so a region override never mutates the
// default's speed and weather tables.
func (t Tariff) clone() Tariff {
	c := t
	c.AvgSpeedKmh = maps.Clone(t.AvgSpeedKmh)
	c.WeatherFactors = maps.Clone(t.WeatherFactors)
	return c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("default.currency", "BRL")

	v.SetDefault("default.base_delivery_fee", 3.99)
	v.SetDefault("default.per_km_fee", 1.50)
	v.SetDefault("default.service_fee_rate", 0.05)
	v.SetDefault("default.free_delivery_promo_code", "FREE_DELIVERY")

	v.SetDefault("default.commission_rate", 0.20)
	v.SetDefault("default.minimum_commission", 2.00)
	v.SetDefault("default.processing_fee_rate", 0.0299)
	v.SetDefault("default.processing_fee_fixed", 0.39)

	v.SetDefault("default.courier_base_pay", 4.00)
	v.SetDefault("default.courier_per_km_pay", 2.00)
	v.SetDefault("default.courier_per_minute_pay", 0.30)
	v.SetDefault("default.courier_minimum_guarantee", 8.00)
	v.SetDefault("default.weather_bonus_rate", 0.20)
	v.SetDefault("default.surge_bonus_rate", 0.30)
	v.SetDefault("default.incentive_threshold", 10)
	v.SetDefault("default.incentive_bonus", 5.00)

	v.SetDefault("default.surge_traffic_threshold", 1.3)
	v.SetDefault("default.max_surge_multiplier", 2.0)
	v.SetDefault("default.avg_speed_kmh", map[string]float64{
		"motorcycle": 25,
		"car":        20,
		"bicycle":    12,
		"on_foot":    5,
	})
	v.SetDefault("default.weather_factors", map[string]float64{
		"rain":       1.2,
		"heavy_rain": 1.5,
	})
}
