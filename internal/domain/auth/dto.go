package auth

import (
	"time"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/validator"
)

// IssueTokenRequest describes an access token minted for local use.
type IssueTokenRequest struct {
	Subject string
	Name    string
	Role    string
	TTL     string // Go duration, empty uses the configured default
}

func (r *IssueTokenRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Subject) {
		errs.Add("subject", "subject is required")
	}
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}
	if !user.Role(r.Role).IsValid() {
		errs.Add("role", user.ErrInvalidRole.Error())
	}
	if r.TTL != "" {
		if d, err := time.ParseDuration(r.TTL); err != nil || d <= 0 {
			errs.Add("ttl", "ttl must be a positive duration such as 1h or 30m")
		}
	}
	return errs.Err()
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

type SSETokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}
