package api

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/fiveverst/fiveverst-go/client/internal/endpoint"
	"github.com/fiveverst/fiveverst-go/client/internal/types"
)

// Login exchanges credentials for a token. The server may also set session cookies.
func Login(ctx context.Context, rc *resty.Client, baseURL string, req types.LoginRequest) (*types.LoginResponse, error) {
	return post[types.LoginResponse](ctx, rc, baseURL, endpoint.Login, req)
}

// GetAthleteProfile fetches the profile of the signed-in athlete.
func GetAthleteProfile(ctx context.Context, rc *resty.Client, baseURL string) (*types.AthleteProfileResponse, error) {
	return post[types.AthleteProfileResponse](ctx, rc, baseURL, endpoint.GetProfile, types.EmptyRequest{})
}

// GetLocations lists event venues.
func GetLocations(ctx context.Context, rc *resty.Client, baseURL string) (*types.LocationResponse, error) {
	return post[types.LocationResponse](ctx, rc, baseURL, endpoint.GetLocations, types.EmptyRequest{})
}

// Register creates a new athlete account.
func Register(ctx context.Context, rc *resty.Client, baseURL string, req types.RegisterRequest) (*types.RegisterResponse, error) {
	return post[types.RegisterResponse](ctx, rc, baseURL, endpoint.Register, req)
}
