package api

import (
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// NewRestyClient wraps hc in a resty client. Retries stay disabled and resty's
// own diagnostics are routed to logger.
func NewRestyClient(hc *http.Client, logger zerolog.Logger) *resty.Client {
	return resty.NewWithClient(hc).
		SetRetryCount(0).
		SetLogger(restyLogger{l: logger.With().Str("component", "resty").Logger()})
}

// restyLogger adapts zerolog to resty.Logger.
type restyLogger struct{ l zerolog.Logger }

func (r restyLogger) Errorf(format string, v ...interface{}) { r.l.Error().Msgf(format, v...) }
func (r restyLogger) Warnf(format string, v ...interface{})  { r.l.Warn().Msgf(format, v...) }
func (r restyLogger) Debugf(format string, v ...interface{}) { r.l.Debug().Msgf(format, v...) }
