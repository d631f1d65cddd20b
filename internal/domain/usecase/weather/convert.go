package weather

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/yonekos/YonSeWeather-cli/internal/domain/entity"
	"github.com/yonekos/YonSeWeather-cli/internal/domain/model"
	"github.com/yonekos/YonSeWeather-cli/internal/domain/model/external"
	"github.com/yonekos/YonSeWeather-cli/pkg/msg"
)

// convertCurrentResponse builds a WeatherSnapshot from the current-weather
// payload. Temperature, feels-like, pressure and humidity are mandatory;
// everything else falls back to a sensible default or stays nil.
func convertCurrentResponse(response *external.CurrentWeatherResponse, fallbackCity, units string) (*entity.WeatherSnapshot, error) {
	if response.Main.Temp == nil {
		return nil, missingField("main.temp")
	}
	if response.Main.FeelsLike == nil {
		return nil, missingField("main.feels_like")
	}
	if response.Main.Pressure == nil {
		return nil, missingField("main.pressure")
	}
	if response.Main.Humidity == nil {
		return nil, missingField("main.humidity")
	}

	temperature := *response.Main.Temp
	location := time.FixedZone(formatOffset(response.Timezone), response.Timezone)

	city := response.Name
	if city == "" {
		city = fallbackCity
	}

	snapshot := &entity.WeatherSnapshot{
		City:           city,
		Country:        response.Sys.Country,
		Description:    formatDescription(firstDescription(response.Weather)),
		Temperature:    temperature,
		FeelsLike:      *response.Main.FeelsLike,
		Pressure:       *response.Main.Pressure,
		Humidity:       *response.Main.Humidity,
		WindSpeed:      response.Wind.Speed,
		WindDirection:  response.Wind.Deg,
		Cloudiness:     response.Clouds.All,
		TemperatureMin: floatOrDefault(response.Main.TempMin, temperature),
		TemperatureMax: floatOrDefault(response.Main.TempMax, temperature),
		Visibility:     response.Visibility,
		Sunrise:        localTime(response.Sys.Sunrise, location),
		Sunset:         localTime(response.Sys.Sunset, location),
		Location:       location,
		Units:          units,
		Latitude:       response.Coord.Lat,
		Longitude:      response.Coord.Lon,
	}
	return snapshot, nil
}

// convertForecastResponse flattens the forecast payload into per-slot items,
// shifting timestamps into the city's zone. Slots without a temperature are
// skipped rather than failing the whole forecast.
func convertForecastResponse(response *external.ForecastResponse) []entity.ForecastItem {
	location := time.FixedZone(formatOffset(response.City.Timezone), response.City.Timezone)

	var items []entity.ForecastItem
	for _, slot := range response.List {
		if slot.Main.Temp == nil {
			continue
		}

		item := entity.ForecastItem{
			Timestamp:           time.Unix(slot.Dt, 0).In(location),
			Temperature:         *slot.Main.Temp,
			FeelsLike:           floatOrDefault(slot.Main.FeelsLike, *slot.Main.Temp),
			Description:         formatDescription(firstDescription(slot.Weather)),
			Humidity:            intOrDefault(slot.Main.Humidity, 0),
			WindSpeed:           slot.Wind.Speed,
			Cloudiness:          slot.Clouds.All,
			PrecipitationChance: slot.Pop * 100,
		}
		if slot.Rain != nil {
			volume := slot.Rain.ThreeHours
			item.RainVolume = &volume
		}
		if slot.Snow != nil {
			volume := slot.Snow.ThreeHours
			item.SnowVolume = &volume
		}
		items = append(items, item)
	}
	return items
}

// convertAlerts converts One Call alert DTOs to entities, shifting the alert
// period into the same zone as the rest of the report
func convertAlerts(alerts []external.WeatherAlertDTO, location *time.Location) []entity.WeatherAlert {
	var converted []entity.WeatherAlert
	for _, alert := range alerts {
		item := entity.WeatherAlert{
			Event:       alert.Event,
			Description: alert.Description,
		}
		if alert.Start > 0 {
			start := time.Unix(alert.Start, 0).In(location)
			item.Start = &start
		}
		if alert.End > 0 {
			end := time.Unix(alert.End, 0).In(location)
			item.End = &end
		}
		converted = append(converted, item)
	}
	return converted
}

func missingField(field string) error {
	return &model.RemoteError{Message: msg.GetMessage("weather.missing-field", field)}
}

func firstDescription(entries []external.WeatherEntryDTO) string {
	if len(entries) == 0 {
		return ""
	}
	return entries[0].Description
}

// formatDescription trims and capitalizes the provider description
func formatDescription(description string) string {
	description = strings.TrimSpace(description)
	if description == "" {
		return msg.GetMessage("weather.no-description")
	}

	runes := []rune(description)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// formatOffset renders a second offset as a UTC±HH:MM zone name
func formatOffset(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	minutes := seconds / 60
	return fmt.Sprintf("UTC%s%02d:%02d", sign, minutes/60, minutes%60)
}

func localTime(timestamp *int64, location *time.Location) *time.Time {
	if timestamp == nil {
		return nil
	}
	moment := time.Unix(*timestamp, 0).In(location)
	return &moment
}

func floatOrDefault(value *float64, fallback float64) float64 {
	if value == nil {
		return fallback
	}
	return *value
}

func intOrDefault(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}
