package api

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/fiveverst/fiveverst-go/client/internal/endpoint"
	"github.com/fiveverst/fiveverst-go/client/internal/types"
)

// GetAthleteStats returns aggregated results for one athlete.
func GetAthleteStats(ctx context.Context, rc *resty.Client, baseURL string, req types.AthleteIDRequest) (*types.StatsResponse, error) {
	return post[types.StatsResponse](ctx, rc, baseURL, endpoint.GetStats, req)
}
