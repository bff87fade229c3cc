package httpclient

import (
	"net/http"
	"time"

	"elite-store/internal/core/logger"

	"go.uber.org/zap"
)

// LoggingRoundTripper logs every outbound call made to an upstream.
type LoggingRoundTripper struct {
	// Upstream names the remote service in log entries (e.g. "payment-intent", "stripe").
	Upstream string
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs its outcome.
// Only method, host and path are logged; query strings may carry secrets.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	log := logger.Get().With(
		zap.String("upstream", lrt.Upstream),
		zap.String("method", req.Method),
		zap.String("host", req.URL.Host),
		zap.String("path", req.URL.Path),
	)

	log.Debug("HTTP Request Started")

	resp, err := lrt.Proxied.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		log.Error("HTTP Request Failed", zap.Duration("duration", duration), zap.Error(err))
		return nil, err
	}

	level := zap.DebugLevel
	if resp.StatusCode >= http.StatusBadRequest {
		level = zap.WarnLevel
	}
	log.Log(level, "HTTP Request Completed",
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewClient returns an http.Client with logging middleware.
// A zero timeout leaves the client unbounded.
func NewClient(upstream string, timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Upstream: upstream,
			Proxied:  http.DefaultTransport,
		},
		Timeout: timeout,
	}
}
