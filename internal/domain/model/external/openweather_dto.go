package external

import "encoding/json"

// WeatherEntryDTO represents a single entry of the "weather" array
type WeatherEntryDTO struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// MainDTO represents the "main" block shared by the current-weather and
// forecast payloads. Fields the provider may omit are pointers so absence is
// distinguishable from zero.
type MainDTO struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	TempMin   *float64 `json:"temp_min"`
	TempMax   *float64 `json:"temp_max"`
	Pressure  *int     `json:"pressure"`
	Humidity  *int     `json:"humidity"`
}

// CoordDTO represents geographic coordinates
type CoordDTO struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// WindDTO represents the "wind" block
type WindDTO struct {
	Speed float64 `json:"speed"`
	Deg   *int    `json:"deg"`
	Gust  float64 `json:"gust"`
}

// CloudsDTO represents the "clouds" block
type CloudsDTO struct {
	All int `json:"all"`
}

// SysDTO represents the "sys" block of the current-weather payload
type SysDTO struct {
	Country string `json:"country"`
	Sunrise *int64 `json:"sunrise"`
	Sunset  *int64 `json:"sunset"`
}

// CurrentWeatherResponse represents the response from the current weather API.
// Cod is a json.Number because the provider answers with a number on success
// and a string in error payloads.
type CurrentWeatherResponse struct {
	Coord      CoordDTO          `json:"coord"`
	Weather    []WeatherEntryDTO `json:"weather"`
	Main       MainDTO           `json:"main"`
	Visibility *int              `json:"visibility"`
	Wind       WindDTO           `json:"wind"`
	Clouds     CloudsDTO         `json:"clouds"`
	Dt         int64             `json:"dt"`
	Sys        SysDTO            `json:"sys"`
	Timezone   int               `json:"timezone"`
	Name       string            `json:"name"`
	Cod        json.Number       `json:"cod"`
}

// VolumeDTO represents accumulated precipitation over a three hour window
type VolumeDTO struct {
	ThreeHours float64 `json:"3h"`
}

// ForecastSlotDTO represents one three hour slot of the forecast payload
type ForecastSlotDTO struct {
	Dt      int64             `json:"dt"`
	Main    MainDTO           `json:"main"`
	Weather []WeatherEntryDTO `json:"weather"`
	Clouds  CloudsDTO         `json:"clouds"`
	Wind    WindDTO           `json:"wind"`
	Pop     float64           `json:"pop"`
	Rain    *VolumeDTO        `json:"rain"`
	Snow    *VolumeDTO        `json:"snow"`
}

// ForecastCityDTO represents the "city" block of the forecast payload
type ForecastCityDTO struct {
	Name     string   `json:"name"`
	Country  string   `json:"country"`
	Coord    CoordDTO `json:"coord"`
	Timezone int      `json:"timezone"`
}

// ForecastResponse represents the response from the five day forecast API
type ForecastResponse struct {
	Cod  json.Number       `json:"cod"`
	City ForecastCityDTO   `json:"city"`
	List []ForecastSlotDTO `json:"list"`
}

// AirQualityMainDTO carries the provider's 1-5 air quality index
type AirQualityMainDTO struct {
	AQI int `json:"aqi"`
}

// AirPollutionEntryDTO represents a single air quality measurement
type AirPollutionEntryDTO struct {
	Main       AirQualityMainDTO  `json:"main"`
	Components map[string]float64 `json:"components"`
}

// AirPollutionResponse represents the response from the air pollution API
type AirPollutionResponse struct {
	List []AirPollutionEntryDTO `json:"list"`
}

// WeatherAlertDTO represents a government weather alert from the One Call API
type WeatherAlertDTO struct {
	SenderName  string `json:"sender_name"`
	Event       string `json:"event"`
	Start       int64  `json:"start"`
	End         int64  `json:"end"`
	Description string `json:"description"`
}

// OneCallResponse represents the subset of the One Call API response the
// extended report uses
type OneCallResponse struct {
	Current struct {
		UVI *float64 `json:"uvi"`
	} `json:"current"`
	Alerts []WeatherAlertDTO `json:"alerts"`
}

// APIErrorResponse represents error responses from the OpenWeatherMap API
type APIErrorResponse struct {
	Cod     json.Number `json:"cod"`
	Message string      `json:"message"`
}
