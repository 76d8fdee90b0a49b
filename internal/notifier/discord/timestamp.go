package discord

import (
	"math"
	"strings"
	"time"

	"github.com/aleister1102/hookcord/internal/common/errorwrapper"
)

// isoLayouts are tried in order. Layouts without an offset are read as UTC.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// TimestampNormalizer converts epoch seconds, ISO-8601 strings and time
// values into canonical RFC 3339 UTC strings.
type TimestampNormalizer struct {
	clock func() time.Time
}

// NewTimestampNormalizer creates a normalizer reading "now" from clock.
// A nil clock falls back to time.Now.
func NewTimestampNormalizer(clock func() time.Time) *TimestampNormalizer {
	if clock == nil {
		clock = time.Now
	}
	return &TimestampNormalizer{clock: clock}
}

var defaultTimestampNormalizer = NewTimestampNormalizer(nil)

// NormalizeTimestamp normalizes ts using the wall clock.
func NormalizeTimestamp(ts any) (string, error) {
	return defaultTimestampNormalizer.Normalize(ts)
}

// Now returns the current time according to the normalizer's clock.
func (tn *TimestampNormalizer) Now() time.Time {
	return tn.clock()
}

// Normalize converts ts into an RFC 3339 string in UTC. A nil ts means now.
func (tn *TimestampNormalizer) Normalize(ts any) (string, error) {
	t, err := tn.toTime(ts)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(time.RFC3339Nano), nil
}

func (tn *TimestampNormalizer) toTime(ts any) (time.Time, error) {
	switch v := ts.(type) {
	case nil:
		return tn.clock(), nil
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return tn.clock(), nil
		}
		return *v, nil
	case float32:
		return unixFloat(float64(v))
	case float64:
		return unixFloat(v)
	case string:
		return parseISO8601(v)
	}

	seconds, ok, overflow := asInt64(ts)
	switch {
	case !ok:
		return time.Time{}, errorwrapper.NewKindError(errorwrapper.ErrInvalidTimestamp, "timestamp", ts, "unsupported timestamp type")
	case overflow:
		return time.Time{}, errorwrapper.NewKindError(errorwrapper.ErrInvalidTimestamp, "timestamp", ts, "epoch seconds overflow")
	}
	return time.Unix(seconds, 0), nil
}

func unixFloat(seconds float64) (time.Time, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return time.Time{}, errorwrapper.NewKindError(errorwrapper.ErrInvalidTimestamp, "timestamp", seconds, "epoch seconds must be finite")
	}
	whole, frac := math.Modf(seconds)
	return time.Unix(int64(whole), int64(math.Round(frac*1e9))), nil
}

func parseISO8601(s string) (time.Time, error) {
	value := strings.TrimSpace(s)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errorwrapper.NewKindError(errorwrapper.ErrInvalidTimestamp, "timestamp", s, "timestamp is not a valid ISO-8601 string")
}
