package time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/port/core"
)

func TestRealTimeProvider(t *testing.T) {
	zone := time.FixedZone("CST", 8*3600)
	p := NewRealTimeProvider(zone)

	assert.Equal(t, zone, p.Location())
	assert.Equal(t, time.UTC, NewRealTimeProvider(nil).Location())

	start := p.Now().Add(-time.Second)
	assert.GreaterOrEqual(t, p.Since(start), core.Second)

	ctx, cancel := p.WithTimeout(context.Background(), core.Millisecond)
	defer cancel()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
}
