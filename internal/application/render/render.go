package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/yonekos/YonSeWeather-cli/internal/domain/entity"
	"github.com/yonekos/YonSeWeather-cli/pkg/msg"
	"github.com/yonekos/YonSeWeather-cli/pkg/util/numberutils"
)

const separatorWidth = 70

// conditionEmoji maps the provider's English descriptions to a pictogram.
// Unknown conditions fall back to a rainbow.
var conditionEmoji = map[string]string{
	"clear sky":            "☀️",
	"few clouds":           "🌤️",
	"scattered clouds":     "⛅",
	"broken clouds":        "☁️",
	"overcast clouds":      "☁️",
	"shower rain":          "🌧️",
	"rain":                 "🌧️",
	"light rain":           "🌦️",
	"moderate rain":        "🌧️",
	"heavy intensity rain": "⛈️",
	"thunderstorm":         "⛈️",
	"snow":                 "❄️",
	"mist":                 "🌫️",
	"fog":                  "🌫️",
	"haze":                 "🌫️",
}

type row struct {
	key   string
	value string
}

// FormatReport renders a weather snapshot as an aligned key/value report.
// Styling honors the global color.NoColor switch.
func FormatReport(snapshot *entity.WeatherSnapshot) string {
	tempUnit, windUnit := unitLabels(snapshot.Units)
	tempColor := temperatureColor(snapshot.Temperature, snapshot.Units)
	tzLabel := timezoneLabel(snapshot.Location)

	location := snapshot.City
	if snapshot.Country != "" {
		location = location + ", " + snapshot.Country
	}
	header := color.New(color.FgCyan, color.Bold).Sprintf("%s Weather in %s", emojiFor(snapshot.Description), location)

	rows := []row{
		{"Conditions", snapshot.Description},
		{"Temperature", tempColor.Sprintf("%.1f %s", snapshot.Temperature, tempUnit)},
		{"Feels like", tempColor.Sprintf("%.1f %s", snapshot.FeelsLike, tempUnit)},
		{"Pressure", fmt.Sprintf("%d hPa (~%.0f mmHg)", snapshot.Pressure, float64(snapshot.Pressure)*0.75006)},
		{"Humidity", HumidityBar(snapshot.Humidity, 25)},
		{"Wind speed", fmt.Sprintf("%.1f %s", snapshot.WindSpeed, windUnit)},
	}

	if snapshot.WindDirection != nil {
		degrees := *snapshot.WindDirection
		rows = append(rows, row{
			"Wind direction",
			fmt.Sprintf("%s %d° (%s)", windArrow(degrees), degrees, compassDirection(degrees)),
		})
	}

	rows = append(rows,
		row{"Cloudiness", fmt.Sprintf("%d%%", snapshot.Cloudiness)},
		row{"Min temperature", fmt.Sprintf("%.1f %s", snapshot.TemperatureMin, tempUnit)},
		row{"Max temperature", fmt.Sprintf("%.1f %s", snapshot.TemperatureMax, tempUnit)},
	)

	if snapshot.Visibility != nil {
		rows = append(rows, row{"Visibility", formatVisibility(*snapshot.Visibility)})
	}

	rows = append(rows,
		row{"Sunrise", formatClock(snapshot.Sunrise, tzLabel)},
		row{"Sunset", formatClock(snapshot.Sunset, tzLabel)},
	)

	if snapshot.UVIndex != nil {
		label, uvColor := uvLabel(*snapshot.UVIndex)
		rows = append(rows, row{"UV index", uvColor.Sprintf("%.1f (%s)", *snapshot.UVIndex, label)})
	}

	if snapshot.AirQualityIndex != nil {
		label, aqiColor := airQualityLabel(*snapshot.AirQualityIndex)
		rows = append(rows, row{"Air quality", aqiColor.Sprintf("%d (%s)", *snapshot.AirQualityIndex, label)})

		if pm, ok := snapshot.AirComponents["pm2_5"]; ok {
			rows = append(rows, row{"  PM2.5", fmt.Sprintf("%.1f μg/m³", pm)})
		}
		if pm, ok := snapshot.AirComponents["pm10"]; ok {
			rows = append(rows, row{"  PM10", fmt.Sprintf("%.1f μg/m³", pm)})
		}
	}

	keyWidth := 0
	for _, r := range rows {
		keyWidth = numberutils.MaxInt(keyWidth, len(r.key))
	}

	lines := []string{header, strings.Repeat("=", separatorWidth)}
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%-*s : %s", keyWidth, r.key, r.value))
	}

	if len(snapshot.Alerts) > 0 {
		lines = append(lines, formatAlerts(snapshot.Alerts)...)
	}

	return strings.Join(lines, "\n")
}

// formatAlerts renders the government weather alert block
func formatAlerts(alerts []entity.WeatherAlert) []string {
	lines := []string{
		"",
		strings.Repeat("=", separatorWidth),
		color.New(color.FgRed, color.Bold).Sprint("⚠️  WEATHER ALERTS"),
		strings.Repeat("=", separatorWidth),
	}

	for _, alert := range alerts {
		event := alert.Event
		if event == "" {
			event = "Alert"
		}
		lines = append(lines, color.New(color.FgYellow).Sprintf("• %s", event))

		if alert.Start != nil && alert.End != nil {
			lines = append(lines, fmt.Sprintf("  Period: %s - %s",
				alert.Start.Format("02.01 15:04"), alert.End.Format("02.01 15:04")))
		}

		description := alert.Description
		if len(description) > 200 {
			description = description[:200] + "..."
		}
		if description != "" {
			lines = append(lines, "  "+description)
		}
	}

	return lines
}

// FormatDailyForecast renders a five day digest grouped by calendar day.
func FormatDailyForecast(items []entity.ForecastItem, units string) string {
	if len(items) == 0 {
		return msg.GetMessage("weather.no-forecast")
	}

	tempUnit, _ := unitLabels(units)

	dayKeys, days := groupByDay(items)
	if len(dayKeys) > 5 {
		dayKeys = dayKeys[:5]
	}

	lines := []string{
		color.New(color.FgCyan, color.Bold).Sprint("📅 5 day forecast"),
		strings.Repeat("=", 60),
	}

	for _, key := range dayKeys {
		dayItems := days[key]

		temps := make([]float64, len(dayItems))
		maxPrecip := 0.0
		for i, item := range dayItems {
			temps[i] = item.Temperature
			maxPrecip = numberutils.MaxFloat64(maxPrecip, item.PrecipitationChance)
		}
		description := dominantDescription(dayItems)

		dayName := dayItems[0].Timestamp.Format("Monday, 02 January")
		lines = append(lines, "")
		lines = append(lines, color.New(color.FgYellow).Sprintf("%s %s", emojiFor(description), dayName))
		lines = append(lines, "  "+description)
		lines = append(lines, fmt.Sprintf("  Temperature: %.1f%s ... %.1f%s (avg %.1f%s)",
			numberutils.MinFloat64(temps...), tempUnit,
			numberutils.MaxFloat64(temps...), tempUnit,
			numberutils.AvgFloat64(temps...), tempUnit))
		if maxPrecip > 10 {
			lines = append(lines, fmt.Sprintf("  Precipitation chance: %.0f%%", maxPrecip))
		}
	}

	return strings.Join(lines, "\n")
}

// FormatHourlyForecast renders the next eight three hour slots, one per line.
func FormatHourlyForecast(items []entity.ForecastItem, units string) string {
	if len(items) == 0 {
		return msg.GetMessage("weather.no-forecast")
	}

	tempUnit, _ := unitLabels(units)

	lines := []string{
		color.New(color.FgCyan, color.Bold).Sprint("⏰ Next 24 hours"),
		strings.Repeat("=", 60),
	}

	if len(items) > 8 {
		items = items[:8]
	}
	for _, item := range items {
		line := fmt.Sprintf("%s %s %5.1f%s  %s",
			color.New(color.FgYellow).Sprint(item.Timestamp.Format("15:04")),
			emojiFor(item.Description),
			item.Temperature, tempUnit,
			item.Description)
		if item.PrecipitationChance > 20 {
			line += fmt.Sprintf("  💧 %.0f%%", item.PrecipitationChance)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// groupByDay splits forecast slots by calendar day, keeping the input order
func groupByDay(items []entity.ForecastItem) ([]string, map[string][]entity.ForecastItem) {
	var keys []string
	days := make(map[string][]entity.ForecastItem)

	for _, item := range items {
		key := item.Timestamp.Format("2006-01-02")
		if _, seen := days[key]; !seen {
			keys = append(keys, key)
		}
		days[key] = append(days[key], item)
	}

	return keys, days
}

// dominantDescription returns the most frequent description of the day
func dominantDescription(items []entity.ForecastItem) string {
	counts := make(map[string]int)
	best := ""
	for _, item := range items {
		counts[item.Description]++
		if best == "" || counts[item.Description] > counts[best] {
			best = item.Description
		}
	}
	return best
}

// HumidityBar renders a horizontal gauge for a relative humidity percentage.
func HumidityBar(humidity, width int) string {
	clamped := numberutils.ClampInt(humidity, 0, 100)
	filled := clamped * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %d%%", bar, humidity)
}

// unitLabels returns the temperature and wind speed unit labels for a units mode
func unitLabels(units string) (string, string) {
	switch units {
	case "imperial":
		return "°F", "mph"
	case "standard":
		return "K", "m/s"
	default:
		return "°C", "m/s"
	}
}

// temperatureColor picks a color band for a temperature, normalized to Celsius
func temperatureColor(temperature float64, units string) *color.Color {
	celsius := temperature
	switch units {
	case "imperial":
		celsius = (temperature - 32) / 1.8
	case "standard":
		celsius = temperature - 273.15
	}

	switch {
	case celsius < 0:
		return color.New(color.FgBlue)
	case celsius < 10:
		return color.New(color.FgCyan)
	case celsius < 20:
		return color.New(color.FgGreen)
	case celsius < 30:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

// uvLabel returns the severity label and color for a UV index
func uvLabel(uv float64) (string, *color.Color) {
	switch {
	case uv < 3:
		return "Low", color.New(color.FgGreen)
	case uv < 6:
		return "Moderate", color.New(color.FgYellow)
	case uv < 8:
		return "High", color.New(color.FgHiYellow)
	case uv < 11:
		return "Very high", color.New(color.FgHiRed)
	default:
		return "Extreme", color.New(color.FgRed)
	}
}

// airQualityLabel returns the label and color for the provider's 1-5 AQI scale
func airQualityLabel(aqi int) (string, *color.Color) {
	switch aqi {
	case 1:
		return "Good", color.New(color.FgGreen)
	case 2:
		return "Fair", color.New(color.FgHiGreen)
	case 3:
		return "Moderate", color.New(color.FgYellow)
	case 4:
		return "Poor", color.New(color.FgHiRed)
	case 5:
		return "Very poor", color.New(color.FgRed)
	default:
		return "Unknown", color.New(color.FgWhite)
	}
}

func emojiFor(description string) string {
	if emoji, ok := conditionEmoji[strings.ToLower(description)]; ok {
		return emoji
	}
	return "🌈"
}

// compassDirection returns the 16-wind compass name for a bearing in degrees
func compassDirection(degrees int) string {
	directions := []string{
		"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
		"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
	}
	index := int(float64(degrees%360)/22.5+0.5) % len(directions)
	return directions[index]
}

// windArrow returns an arrow pointing where the wind blows to
func windArrow(degrees int) string {
	arrows := []string{"↓", "↙", "←", "↖", "↑", "↗", "→", "↘"}
	return arrows[(degrees%360)/45]
}

func formatVisibility(meters int) string {
	return fmt.Sprintf("%d m (%.1f km)", meters, float64(meters)/1000)
}

func formatClock(moment *time.Time, tzLabel string) string {
	if moment == nil {
		return "—"
	}
	return fmt.Sprintf("%s (%s)", moment.Format("15:04:05"), tzLabel)
}

func timezoneLabel(location *time.Location) string {
	if location == nil {
		return "UTC"
	}
	return location.String()
}
