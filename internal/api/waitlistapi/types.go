// Package waitlistapi provides the HTTP API for the waitlist signup service.
package waitlistapi

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// BannerResponse is the service banner returned from the root path.
type BannerResponse struct {
	Message   string `json:"message"`
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// JoinRequest is the body for POST /waitlist/join.
type JoinRequest struct {
	Email             string   `json:"email"`
	FirstName         string   `json:"first_name"`
	LastName          string   `json:"last_name"`
	Company           string   `json:"company,omitempty"`
	Role              string   `json:"role,omitempty"`
	UseCase           string   `json:"use_case,omitempty"`
	Interests         []string `json:"interests,omitempty"`
	ReferralSource    string   `json:"referral_source,omitempty"`
	NewsletterConsent bool     `json:"newsletter_consent"`
}

// JoinResponse is the result of a successful join.
type JoinResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Position   int64  `json:"position"`
	TotalCount int64  `json:"total_count"`
}

// PositionResponse is the result of a position lookup.
type PositionResponse struct {
	Email    string `json:"email"`
	Position int64  `json:"position"`
	JoinedAt string `json:"joined_at"`
	Status   string `json:"status"`
}

// InviteResponse is the result of an invite.
type InviteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Email   string `json:"email"`
}

// HealthResponse is the detailed health check payload.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
}
