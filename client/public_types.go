package client

import "github.com/fiveverst/fiveverst-go/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	LoginRequest     = types.LoginRequest
	EmptyRequest     = types.EmptyRequest
	AthleteIDRequest = types.AthleteIDRequest
	RegisterRequest  = types.RegisterRequest

	// Domain entities
	Location = types.Location

	// Responses
	LoginResponse          = types.LoginResponse
	AthleteProfileResponse = types.AthleteProfileResponse
	StatsResponse          = types.StatsResponse
	LocationResponse       = types.LocationResponse
	RegisterResponse       = types.RegisterResponse
)
