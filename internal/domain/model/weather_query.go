package model

// WeatherQuery carries the resolved inputs of a single lookup through the
// use case and gateway layers.
type WeatherQuery struct {
	City      string
	Units     string
	Lang      string
	Extended  bool
	RequestID string
}
