package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with real time operations
type RealTimeProvider struct {
	location *time.Location
}

// NewRealTimeProvider creates a new real time provider that reports calendar days in loc.
// A nil loc falls back to UTC.
func NewRealTimeProvider(loc *time.Location) core.TimeProvider {
	if loc == nil {
		loc = time.UTC
	}
	return &RealTimeProvider{location: loc}
}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Location returns the zone used for calendar-day computations
func (p *RealTimeProvider) Location() *time.Location {
	return p.location
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}
