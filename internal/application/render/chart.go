package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/yonekos/YonSeWeather-cli/internal/domain/entity"
	"github.com/yonekos/YonSeWeather-cli/pkg/msg"
	"github.com/yonekos/YonSeWeather-cli/pkg/util/numberutils"
)

const (
	chartHeight = 10
	chartSlots  = 8
)

// TemperatureChart plots the next eight forecast slots as an ASCII chart,
// one column per three hour slot.
func TemperatureChart(items []entity.ForecastItem, units string) string {
	if len(items) == 0 {
		return msg.GetMessage("weather.no-forecast")
	}

	tempUnit, _ := unitLabels(units)

	if len(items) > chartSlots {
		items = items[:chartSlots]
	}

	temps := make([]float64, len(items))
	for i, item := range items {
		temps[i] = item.Temperature
	}

	low := numberutils.MinFloat64(temps...)
	high := numberutils.MaxFloat64(temps...)
	span := high - low
	if span == 0 {
		span = 1
	}

	lines := []string{
		color.New(color.FgCyan, color.Bold).Sprintf("📈 Temperature, next %d hours", len(items)*3),
		"",
	}

	// Each column gets one dot at its scaled height, top row first.
	const columnWidth = 7
	for level := chartHeight - 1; level >= 0; level-- {
		threshold := low + span*float64(level)/float64(chartHeight-1)
		cells := make([]string, len(temps))
		for i, temp := range temps {
			scaled := int((temp - low) / span * float64(chartHeight-1))
			if scaled == level {
				cells[i] = centerCell("●", columnWidth)
			} else {
				cells[i] = strings.Repeat(" ", columnWidth)
			}
		}
		lines = append(lines, fmt.Sprintf("%6.1f │%s", threshold, strings.Join(cells, "")))
	}

	lines = append(lines, "       └"+strings.Repeat("─", columnWidth*len(temps)))

	labels := make([]string, len(items))
	values := make([]string, len(items))
	for i, item := range items {
		labels[i] = centerCell(item.Timestamp.Format("15:04"), columnWidth)
		values[i] = centerCell(fmt.Sprintf("%.1f", item.Temperature), columnWidth)
	}
	lines = append(lines, "        "+strings.Join(labels, ""))
	lines = append(lines, "        "+strings.Join(values, ""))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Scale: %.1f%s ... %.1f%s", low, tempUnit, high, tempUnit))

	return strings.Join(lines, "\n")
}

func centerCell(text string, width int) string {
	length := len([]rune(text))
	if length >= width {
		return text
	}
	left := (width - length) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-length-left)
}
