package weather

import (
	"github.com/yonekos/YonSeWeather-cli/internal/domain/entity"
	"github.com/yonekos/YonSeWeather-cli/internal/domain/model"
)

type UseCase interface {
	// CurrentConditions fetches and converts the current weather for a city.
	// When the query asks for the extended report, the snapshot is enriched
	// with air quality and One Call data on a best-effort basis.
	CurrentConditions(query model.WeatherQuery) (*entity.WeatherSnapshot, error)

	// Forecast fetches the five day / three hour forecast for a city
	Forecast(query model.WeatherQuery) ([]entity.ForecastItem, error)
}
