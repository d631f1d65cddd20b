package render

import (
	"os"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	_ "github.com/yonekos/YonSeWeather-cli/configs"
	"github.com/yonekos/YonSeWeather-cli/internal/domain/entity"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func snapshot() *entity.WeatherSnapshot {
	location := time.FixedZone("UTC+03:00", 10800)
	sunrise := time.Date(2026, 8, 30, 5, 42, 10, 0, location)
	sunset := time.Date(2026, 8, 30, 19, 51, 3, 0, location)

	return &entity.WeatherSnapshot{
		City:           "Moscow",
		Country:        "RU",
		Description:    "Light rain",
		Temperature:    17.4,
		FeelsLike:      16.9,
		Pressure:       1012,
		Humidity:       68,
		WindSpeed:      3.5,
		WindDirection:  intPtr(220),
		Cloudiness:     75,
		TemperatureMin: 15.1,
		TemperatureMax: 19.2,
		Visibility:     intPtr(10000),
		Sunrise:        &sunrise,
		Sunset:         &sunset,
		Location:       location,
		Units:          "metric",
		Latitude:       55.7522,
		Longitude:      37.6156,
	}
}

func TestFormatReportContainsAllRows(t *testing.T) {
	report := FormatReport(snapshot())

	assert.Contains(t, report, "Weather in Moscow, RU")
	assert.Contains(t, report, "Light rain")
	assert.Contains(t, report, "17.4 °C")
	assert.Contains(t, report, "16.9 °C")
	assert.Contains(t, report, "1012 hPa (~759 mmHg)")
	assert.Contains(t, report, "68%")
	assert.Contains(t, report, "3.5 m/s")
	assert.Contains(t, report, "220° (SW)")
	assert.Contains(t, report, "10000 m (10.0 km)")
	assert.Contains(t, report, "05:42:10 (UTC+03:00)")
	assert.Contains(t, report, "19:51:03 (UTC+03:00)")
}

func TestFormatReportImperialUnits(t *testing.T) {
	imperial := snapshot()
	imperial.Units = "imperial"
	imperial.Temperature = 63.3

	report := FormatReport(imperial)

	assert.Contains(t, report, "63.3 °F")
	assert.Contains(t, report, "mph")
}

func TestFormatReportOmitsMissingOptionalRows(t *testing.T) {
	bare := snapshot()
	bare.WindDirection = nil
	bare.Visibility = nil
	bare.Sunrise = nil
	bare.Country = ""

	report := FormatReport(bare)

	assert.Contains(t, report, "Weather in Moscow")
	assert.NotContains(t, report, "Wind direction")
	assert.NotContains(t, report, "Visibility")
	assert.NotContains(t, report, "UV index")
	assert.NotContains(t, report, "Air quality")
}

func TestFormatReportExtendedRows(t *testing.T) {
	extended := snapshot()
	extended.UVIndex = floatPtr(7.2)
	extended.AirQualityIndex = intPtr(2)
	extended.AirComponents = map[string]float64{"pm2_5": 8.4, "pm10": 12.1}
	start := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 6, 0, 0, 0, time.UTC)
	extended.Alerts = []entity.WeatherAlert{{
		Event:       "Wind warning",
		Description: "Strong wind expected",
		Start:       &start,
		End:         &end,
	}}

	report := FormatReport(extended)

	assert.Contains(t, report, "7.2 (High)")
	assert.Contains(t, report, "2 (Fair)")
	assert.Contains(t, report, "8.4 μg/m³")
	assert.Contains(t, report, "WEATHER ALERTS")
	assert.Contains(t, report, "Wind warning")
	assert.Contains(t, report, "Strong wind expected")
	assert.Contains(t, report, "30.08 12:00 - 31.08 06:00")
}

func TestHumidityBarClampsAndScales(t *testing.T) {
	assert.Equal(t, "[░░░░] 0%", HumidityBar(0, 4))
	assert.Equal(t, "[██░░] 50%", HumidityBar(50, 4))
	assert.Equal(t, "[████] 100%", HumidityBar(100, 4))
	assert.Equal(t, "[████] 140%", HumidityBar(140, 4))
}

func TestCompassDirection(t *testing.T) {
	assert.Equal(t, "N", compassDirection(0))
	assert.Equal(t, "NNE", compassDirection(22))
	assert.Equal(t, "E", compassDirection(90))
	assert.Equal(t, "SW", compassDirection(225))
	assert.Equal(t, "N", compassDirection(359))
}

func TestTemperatureColorBandsNormalizeUnits(t *testing.T) {
	assert.Equal(t, temperatureColor(-5, "metric"), temperatureColor(23, "imperial"))
	assert.Equal(t, temperatureColor(25, "metric"), temperatureColor(298.15, "standard"))
}

func TestUVLabels(t *testing.T) {
	for uv, expected := range map[float64]string{
		1.0:  "Low",
		4.5:  "Moderate",
		7.9:  "High",
		10.9: "Very high",
		11.0: "Extreme",
	} {
		label, _ := uvLabel(uv)
		assert.Equal(t, expected, label, "uv %v", uv)
	}
}

func forecastItems(location *time.Location) []entity.ForecastItem {
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, location)
	items := make([]entity.ForecastItem, 0, 12)
	for i := 0; i < 12; i++ {
		items = append(items, entity.ForecastItem{
			Timestamp:           base.Add(time.Duration(i) * 3 * time.Hour),
			Temperature:         15 + float64(i%4),
			Description:         "Scattered clouds",
			PrecipitationChance: 30,
		})
	}
	return items
}

func TestFormatDailyForecastGroupsByDay(t *testing.T) {
	out := FormatDailyForecast(forecastItems(time.UTC), "metric")

	assert.Contains(t, out, "5 day forecast")
	assert.Contains(t, out, "Sunday, 30 August")
	assert.Contains(t, out, "Monday, 31 August")
	assert.Contains(t, out, "Scattered clouds")
	assert.Contains(t, out, "Precipitation chance: 30%")
}

func TestFormatHourlyForecastShowsEightSlots(t *testing.T) {
	out := FormatHourlyForecast(forecastItems(time.UTC), "metric")

	assert.Contains(t, out, "Next 24 hours")
	assert.Contains(t, out, "12:00")
	assert.Contains(t, out, "09:00")
	// The ninth slot starts at 12:00 the next day and must not appear twice.
	assert.Equal(t, 1, countOccurrences(out, "12:00"))
}

func TestTemperatureChartRendersTenRows(t *testing.T) {
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	items := make([]entity.ForecastItem, 0, 8)
	for i := 0; i < 8; i++ {
		items = append(items, entity.ForecastItem{
			Timestamp:   base.Add(time.Duration(i) * 3 * time.Hour),
			Temperature: 10 + float64(i),
		})
	}

	chart := TemperatureChart(items, "metric")

	assert.Equal(t, 10, countOccurrences(chart, "│"))
	assert.Equal(t, 8, countOccurrences(chart, "●"))
	assert.Contains(t, chart, "└")
	assert.Contains(t, chart, "12:00")
	assert.Contains(t, chart, "15:00")
	assert.Contains(t, chart, "10.0")
	assert.Contains(t, chart, "17.0")
	assert.Contains(t, chart, "Scale: 10.0°C ... 17.0°C")
}

func TestTemperatureChartFlatTemperatures(t *testing.T) {
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	items := make([]entity.ForecastItem, 0, 4)
	for i := 0; i < 4; i++ {
		items = append(items, entity.ForecastItem{
			Timestamp:   base.Add(time.Duration(i) * 3 * time.Hour),
			Temperature: 15,
		})
	}

	chart := TemperatureChart(items, "metric")

	assert.Equal(t, 10, countOccurrences(chart, "│"))
	assert.Equal(t, 4, countOccurrences(chart, "●"))
	assert.Contains(t, chart, "Scale: 15.0°C ... 15.0°C")
	assert.NotContains(t, chart, "NaN")
}

func TestTemperatureChartTruncatesToEightSlots(t *testing.T) {
	chart := TemperatureChart(forecastItems(time.UTC), "metric")

	assert.Equal(t, 8, countOccurrences(chart, "●"))
}

func TestForecastRenderersHandleEmptyInput(t *testing.T) {
	assert.NotEmpty(t, FormatDailyForecast(nil, "metric"))
	assert.NotEmpty(t, FormatHourlyForecast(nil, "metric"))
	assert.NotEmpty(t, TemperatureChart(nil, "metric"))
}

func countOccurrences(haystack, needle string) int {
	count := 0
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			count++
		}
	}
	return count
}
