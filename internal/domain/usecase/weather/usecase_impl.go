package weather

import (
	"github.com/yonekos/YonSeWeather-cli/internal/domain/entity"
	"github.com/yonekos/YonSeWeather-cli/internal/domain/gateway/api"
	"github.com/yonekos/YonSeWeather-cli/internal/domain/model"
	"github.com/yonekos/YonSeWeather-cli/pkg/log"
)

type weatherUseCase struct {
	apiGateway api.WeatherGateway
}

func NewWeatherUseCase(apiGateway api.WeatherGateway) UseCase {
	return &weatherUseCase{
		apiGateway: apiGateway,
	}
}

// CurrentConditions fetches and converts the current weather for a city
func (uc *weatherUseCase) CurrentConditions(query model.WeatherQuery) (*entity.WeatherSnapshot, error) {
	log.Debugw("fetching current conditions",
		"request_id", query.RequestID, "city", query.City, "units", query.Units)

	response, err := uc.apiGateway.GetCurrentWeather(query.City, query.Units, query.Lang)
	if err != nil {
		return nil, err
	}

	snapshot, err := convertCurrentResponse(response, query.City, query.Units)
	if err != nil {
		return nil, err
	}

	if query.Extended {
		uc.enrichSnapshot(snapshot, query)
	}

	log.Debugw("current conditions ready",
		"request_id", query.RequestID, "city", snapshot.City, "temperature", snapshot.Temperature)
	return snapshot, nil
}

// enrichSnapshot attaches air quality, UV index and alerts to the snapshot.
// Extended sources are best effort: a failure degrades to the base report.
func (uc *weatherUseCase) enrichSnapshot(snapshot *entity.WeatherSnapshot, query model.WeatherQuery) {
	if snapshot.Latitude == 0 && snapshot.Longitude == 0 {
		log.Warnw("no coordinates in payload, skipping extended report",
			"request_id", query.RequestID, "city", snapshot.City)
		return
	}

	airResponse, err := uc.apiGateway.GetAirPollution(snapshot.Latitude, snapshot.Longitude)
	if err != nil {
		log.Warnw("air quality lookup failed",
			"request_id", query.RequestID, "city", snapshot.City, "error", err)
	} else if len(airResponse.List) > 0 {
		entry := airResponse.List[0]
		aqi := entry.Main.AQI
		snapshot.AirQualityIndex = &aqi
		snapshot.AirComponents = entry.Components
	}

	oneCallResponse, err := uc.apiGateway.GetOneCall(snapshot.Latitude, snapshot.Longitude, query.Units)
	if err != nil {
		log.Warnw("one call lookup failed",
			"request_id", query.RequestID, "city", snapshot.City, "error", err)
		return
	}

	snapshot.UVIndex = oneCallResponse.Current.UVI
	snapshot.Alerts = convertAlerts(oneCallResponse.Alerts, snapshot.Location)
}

// Forecast fetches the five day / three hour forecast for a city
func (uc *weatherUseCase) Forecast(query model.WeatherQuery) ([]entity.ForecastItem, error) {
	log.Debugw("fetching forecast",
		"request_id", query.RequestID, "city", query.City, "units", query.Units)

	response, err := uc.apiGateway.GetForecast(query.City, query.Units, query.Lang)
	if err != nil {
		return nil, err
	}

	items := convertForecastResponse(response)

	log.Debugw("forecast ready",
		"request_id", query.RequestID, "city", query.City, "slots", len(items))
	return items, nil
}
