package entity

import "time"

// ForecastItem is one three hour slot of the five day forecast, with the
// timestamp already shifted to the city's zone.
type ForecastItem struct {
	Timestamp           time.Time
	Temperature         float64
	FeelsLike           float64
	Description         string
	Humidity            int
	WindSpeed           float64
	Cloudiness          int
	PrecipitationChance float64
	RainVolume          *float64
	SnowVolume          *float64
}
