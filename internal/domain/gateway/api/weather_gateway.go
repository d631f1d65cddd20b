package api

import (
	"github.com/yonekos/YonSeWeather-cli/internal/domain/model/external"
)

// WeatherGateway defines the interface for OpenWeatherMap API calls
type WeatherGateway interface {
	// GetCurrentWeather gets the current conditions for a city.
	// units: metric, imperial or standard; lang: two-letter description language
	GetCurrentWeather(city, units, lang string) (*external.CurrentWeatherResponse, error)

	// GetForecast gets the five day / three hour forecast for a city
	GetForecast(city, units, lang string) (*external.ForecastResponse, error)

	// GetAirPollution gets the current air quality for a coordinate pair
	GetAirPollution(lat, lon float64) (*external.AirPollutionResponse, error)

	// GetOneCall gets the One Call payload (UV index, alerts) for a coordinate pair
	GetOneCall(lat, lon float64, units string) (*external.OneCallResponse, error)
}
