// Package types holds the JSON request and response shapes shared by the
// client and its internal API layer.
package types

// ------------------------------
// Request Types
// ------------------------------

// LoginRequest holds account credentials
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// EmptyRequest is the body of endpoints that take no fields; it encodes as {}
type EmptyRequest struct{}

// AthleteIDRequest selects an athlete by numeric id
type AthleteIDRequest struct {
	AthleteID int64 `json:"athlete_id"`
}

// RegisterRequest holds parameters for a new account
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender,omitempty"`
	BirthDate string `json:"birth_date,omitempty"`
	Phone     string `json:"phone,omitempty"`
}
