package attendance

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/pkg/validator"
)

const DefaultLateCutoff = "09:00"

// LatenessPolicy classifies a check-in against a fixed cutoff on the same day.
// A check-in is late when its time, truncated to the minute, is after Cutoff.
type LatenessPolicy struct {
	cutoff time.Duration // offset from midnight
}

func NewLatenessPolicy(cutoff string) (LatenessPolicy, error) {
	cutoff = strings.TrimSpace(cutoff)
	if cutoff == "" {
		cutoff = DefaultLateCutoff
	}
	t, err := time.Parse("15:04", cutoff)
	if err != nil {
		return LatenessPolicy{}, fmt.Errorf("%w: %q", ErrInvalidCutoff, cutoff)
	}
	return LatenessPolicy{cutoff: sinceMidnight(t)}, nil
}

// Cutoff renders the cutoff as HH:MM.
func (p LatenessPolicy) Cutoff() string {
	return time.Time{}.Add(p.cutoff).Format("15:04")
}

// Classify returns late or present for a check-in clock value in HH:MM:SS form.
func (p LatenessPolicy) Classify(clock string) (Status, error) {
	t, ok := validator.IsValidClock(clock)
	if !ok {
		return "", fmt.Errorf("invalid check-in time %q", clock)
	}
	if sinceMidnight(t).Truncate(time.Minute) > p.cutoff {
		return StatusLate, nil
	}
	return StatusPresent, nil
}

func sinceMidnight(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute + time.Duration(t.Second())*time.Second
}
