package types

// ------------------------------
// Response Types
// ------------------------------

// LoginResponse carries the token issued on login
type LoginResponse struct {
	Token string `json:"token"`
}

// AthleteProfileResponse is the signed-in athlete's account record
type AthleteProfileResponse struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Gender      string `json:"gender"`
	BirthDate   string `json:"birth_date"`
	Email       string `json:"email"`
	HomeEventID int64  `json:"home_event_id"`
}

// StatsResponse aggregates an athlete's results
type StatsResponse struct {
	AthleteID       int64  `json:"athlete_id"`
	FinishesCount   int    `json:"finishes_count"`
	VolunteerCount  int    `json:"volunteer_count"`
	EventsCount     int    `json:"events_count"`
	BestTime        string `json:"best_time"`
	BestTimeEventID int64  `json:"best_time_event_id"`
}

// LocationResponse wraps the event list endpoint response
type LocationResponse struct {
	List []Location `json:"list"`
}

// RegisterResponse identifies the newly created account
type RegisterResponse struct {
	AthleteID int64  `json:"athlete_id"`
	Token     string `json:"token,omitempty"`
}
