package api

import (
	"encoding/json"
	"strconv"

	"github.com/yonekos/YonSeWeather-cli/internal/domain/model"
	"github.com/yonekos/YonSeWeather-cli/internal/domain/model/external"
	"github.com/yonekos/YonSeWeather-cli/pkg/http"
	"github.com/yonekos/YonSeWeather-cli/pkg/msg"
)

// Config holds the endpoint layout and credentials for the gateway
type Config struct {
	BaseURL          string
	APIKey           string
	CurrentPath      string
	ForecastPath     string
	AirPollutionPath string
	OneCallPath      string
	ClientOptions    http.ClientOptions
}

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	config     Config
	httpClient *http.Client
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(config Config) WeatherGateway {
	httpClient := http.NewHttpClient(config.BaseURL, config.ClientOptions)

	return &weatherGatewayImpl{
		config:     config,
		httpClient: httpClient,
	}
}

// GetCurrentWeather gets the current conditions for a city
func (w *weatherGatewayImpl) GetCurrentWeather(city, units, lang string) (*external.CurrentWeatherResponse, error) {
	params := map[string]string{
		"q":     city,
		"appid": w.config.APIKey,
		"units": units,
		"lang":  lang,
	}

	successResp, errResp, status, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath(w.config.CurrentPath).
		WithQueryParams(params).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, w.mapError(errResp, status, err)
	}

	response := successResp.(*external.CurrentWeatherResponse)
	if err := checkPayloadCod(response.Cod, status); err != nil {
		return nil, err
	}
	return response, nil
}

// GetForecast gets the five day / three hour forecast for a city
func (w *weatherGatewayImpl) GetForecast(city, units, lang string) (*external.ForecastResponse, error) {
	params := map[string]string{
		"q":     city,
		"appid": w.config.APIKey,
		"units": units,
		"lang":  lang,
	}

	successResp, errResp, status, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath(w.config.ForecastPath).
		WithQueryParams(params).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, w.mapError(errResp, status, err)
	}

	response := successResp.(*external.ForecastResponse)
	if err := checkPayloadCod(response.Cod, status); err != nil {
		return nil, err
	}
	return response, nil
}

// GetAirPollution gets the current air quality for a coordinate pair
func (w *weatherGatewayImpl) GetAirPollution(lat, lon float64) (*external.AirPollutionResponse, error) {
	params := map[string]string{
		"lat":   formatCoordinate(lat),
		"lon":   formatCoordinate(lon),
		"appid": w.config.APIKey,
	}

	successResp, errResp, status, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath(w.config.AirPollutionPath).
		WithQueryParams(params).
		WithSuccessResp(&external.AirPollutionResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, w.mapError(errResp, status, err)
	}

	return successResp.(*external.AirPollutionResponse), nil
}

// GetOneCall gets the One Call payload (UV index, alerts) for a coordinate pair
func (w *weatherGatewayImpl) GetOneCall(lat, lon float64, units string) (*external.OneCallResponse, error) {
	params := map[string]string{
		"lat":     formatCoordinate(lat),
		"lon":     formatCoordinate(lon),
		"appid":   w.config.APIKey,
		"units":   units,
		"exclude": "minutely",
	}

	successResp, errResp, status, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath(w.config.OneCallPath).
		WithQueryParams(params).
		WithSuccessResp(&external.OneCallResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		return nil, w.mapError(errResp, status, err)
	}

	return successResp.(*external.OneCallResponse), nil
}

// mapError translates a pkg/http failure into the error kinds the rest of the
// tool understands. A zero status means the request never reached the provider.
func (w *weatherGatewayImpl) mapError(errResp any, status int, err error) error {
	if status == 0 {
		return &model.NetworkError{Message: msg.GetMessage("weather.unreachable"), Cause: err}
	}

	if status >= 200 && status < 300 {
		// Success status with an undecodable body.
		return &model.RemoteError{StatusCode: status, Message: msg.GetMessage("weather.bad-payload")}
	}

	if apiErr, ok := errResp.(*external.APIErrorResponse); ok && apiErr != nil && apiErr.Message != "" {
		return &model.RemoteError{StatusCode: status, Message: msg.GetMessage("weather.remote-error", apiErr.Message)}
	}

	return &model.RemoteError{StatusCode: status, Message: msg.GetMessage("weather.remote-status", status)}
}

// checkPayloadCod validates the in-band "cod" field. OpenWeatherMap reports
// some errors with a 200 transport status and the real code in the body.
func checkPayloadCod(cod json.Number, status int) error {
	if cod.String() == "" {
		return nil
	}

	numericCod, err := cod.Int64()
	if err != nil {
		return &model.RemoteError{StatusCode: status, Message: msg.GetMessage("weather.bad-payload")}
	}

	if numericCod != 200 {
		return &model.RemoteError{StatusCode: int(numericCod), Message: msg.GetMessage("weather.remote-status", numericCod)}
	}
	return nil
}

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
