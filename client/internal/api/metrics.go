package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fiveverst/fiveverst-go/client/internal/endpoint"
)

const (
	outcomeOK             = "ok"
	outcomeBadURL         = "bad_url"
	outcomeEncodeError    = "encode_error"
	outcomeTransportError = "transport_error"
	outcomeBadStatus      = "bad_status"
	outcomeDecodeError    = "decode_error"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fiveverst_client",
			Name:      "requests_total",
			Help:      "API calls by endpoint and outcome.",
		},
		[]string{"endpoint", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fiveverst_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of API calls including encode and decode.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

func observe(ep endpoint.Endpoint, outcome string, start time.Time) {
	requestsTotal.WithLabelValues(ep.String(), outcome).Inc()
	requestDuration.WithLabelValues(ep.String()).Observe(time.Since(start).Seconds())
}
