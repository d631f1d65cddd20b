package entity

import "time"

// WeatherSnapshot is a point-in-time weather observation for one city. It is
// built from the provider payload, rendered once, and discarded.
type WeatherSnapshot struct {
	City           string
	Country        string
	Description    string
	Temperature    float64
	FeelsLike      float64
	Pressure       int
	Humidity       int
	WindSpeed      float64
	WindDirection  *int
	Cloudiness     int
	TemperatureMin float64
	TemperatureMax float64
	Visibility     *int
	Sunrise        *time.Time
	Sunset         *time.Time
	Location       *time.Location
	Units          string
	Latitude       float64
	Longitude      float64

	// Extended report fields, nil/empty unless requested and available.
	UVIndex         *float64
	AirQualityIndex *int
	AirComponents   map[string]float64
	Alerts          []WeatherAlert
}

// WeatherAlert is a government weather warning attached to a snapshot.
type WeatherAlert struct {
	Event       string
	Description string
	Start       *time.Time
	End         *time.Time
}
