package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amirhossein-jamali/bill-processor/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/bill-processor/internal/domain/error"
	"github.com/gin-gonic/gin"
)

// Page bounds for list endpoints
const (
	defaultPageSize = 100
	maxPageSize     = 1000
)

// parseDateBound reads a calendar day (YYYY-MM-DD) in loc or an RFC 3339 timestamp.
// A day used as an upper bound covers the whole day, so it resolves to the next midnight.
func parseDateBound(raw string, loc *time.Location, upper bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	if len(raw) == len(entity.DayLayout) {
		day, err := entity.StartOfDay(raw, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a YYYY-MM-DD day", domainerr.ErrInvalidDate, raw)
		}
		if upper {
			day = day.AddDate(0, 0, 1)
		}
		return &day, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is neither a day nor an RFC 3339 timestamp", domainerr.ErrInvalidDate, raw)
	}
	return &t, nil
}

// parseDateRange reads a [start, end) pair and rejects inverted ranges
func parseDateRange(start, end string, loc *time.Location) (*time.Time, *time.Time, error) {
	from, err := parseDateBound(start, loc, false)
	if err != nil {
		return nil, nil, err
	}
	to, err := parseDateBound(end, loc, true)
	if err != nil {
		return nil, nil, err
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, fmt.Errorf("%w: start %s is after end %s", domainerr.ErrInvalidDateRange, start, end)
	}
	return from, to, nil
}

// parsePage reads limit/offset query parameters
func parsePage(c *gin.Context) (int, int, error) {
	limit, err := queryInt(c, "limit", defaultPageSize)
	if err != nil {
		return 0, 0, err
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return 0, 0, err
	}
	if limit <= 0 || limit > maxPageSize {
		return 0, 0, fmt.Errorf("%w: limit must be between 1 and %d", domainerr.ErrInvalidRequest, maxPageSize)
	}
	if offset < 0 {
		return 0, 0, fmt.Errorf("%w: offset cannot be negative", domainerr.ErrInvalidRequest)
	}
	return limit, offset, nil
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domainerr.ErrInvalidRequest, name)
	}
	return v, nil
}

func queryBool(c *gin.Context, name string) (bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be true or false", domainerr.ErrInvalidRequest, name)
	}
	return v, nil
}

// querySource reads an optional source filter
func querySource(c *gin.Context, name string) (entity.Source, error) {
	raw := c.Query(name)
	if raw == "" {
		return "", nil
	}
	source := entity.NormalizeSource(raw)
	if !entity.IsValidSource(string(source)) {
		return "", fmt.Errorf("%w: %q", domainerr.ErrUnsupportedSource, raw)
	}
	return source, nil
}
