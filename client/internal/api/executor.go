package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fiveverst/fiveverst-go/client/internal/endpoint"
	clienterrors "github.com/fiveverst/fiveverst-go/client/internal/errors"
)

// post encodes body as JSON, sends it to the endpoint with a single POST and
// decodes a 2xx response into Resp. Non-2xx bodies are dropped unread.
// Encode and decode errors are returned unwrapped.
func post[Resp any](ctx context.Context, rc *resty.Client, baseURL string, ep endpoint.Endpoint, body any) (*Resp, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	logger := zerolog.Ctx(ctx).With().
		Str("request_id", uuid.NewString()).
		Str("endpoint", ep.String()).
		Logger()

	url, err := endpoint.URL(baseURL, ep)
	if err != nil {
		observe(ep, outcomeBadURL, start)
		logger.Error().Err(err).Str("base_url", baseURL).Msg("build request url")
		return nil, err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		observe(ep, outcomeEncodeError, start)
		logger.Error().Err(err).Msg("encode request body")
		return nil, err
	}

	resp, err := rc.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(url)
	if err != nil {
		observe(ep, outcomeTransportError, start)
		logger.Error().Err(err).Str("url", url).Dur("elapsed", time.Since(start)).Msg("request failed")
		return nil, fmt.Errorf("%s: %w", ep, err)
	}

	if !clienterrors.IsSuccess(resp.StatusCode()) {
		observe(ep, outcomeBadStatus, start)
		logger.Warn().Int("status_code", resp.StatusCode()).Dur("elapsed", time.Since(start)).Msg("unexpected status")
		return nil, clienterrors.NewStatusError(ep.String(), resp.StatusCode())
	}

	var out Resp
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		observe(ep, outcomeDecodeError, start)
		logger.Error().Err(err).Int("status_code", resp.StatusCode()).Msg("decode response body")
		return nil, err
	}

	observe(ep, outcomeOK, start)
	logger.Debug().Int("status_code", resp.StatusCode()).Dur("elapsed", time.Since(start)).Msg("request completed")
	return &out, nil
}
