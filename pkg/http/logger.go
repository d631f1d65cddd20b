package http

import "github.com/yonekos/YonSeWeather-cli/pkg/log"

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called immediately after receiving an error response (error HTTP status)
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)
}

// ZapHTTPLogger logs request lifecycle events through pkg/log at debug level,
// with failures promoted to warnings.
type ZapHTTPLogger struct{}

func (ZapHTTPLogger) LogRequest(method, url string, headers map[string]string, body string) {
	log.Debugw("http request", "method", method, "url", url)
}

func (ZapHTTPLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	log.Debugw("http response", "method", method, "url", url, "status", httpStatus, "latency_ms", latency)
}

func (ZapHTTPLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warnw("http request failed", "method", method, "url", url, "status", httpStatus, "latency_ms", latency, "error", err)
}
