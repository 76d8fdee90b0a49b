package discord

import (
	"fmt"
	"time"

	"github.com/aleister1102/hookcord/internal/common/errorwrapper"
)

// TimestampStyle selects how a client renders a markdown timestamp.
type TimestampStyle string

const (
	StyleRelative      TimestampStyle = "R"
	StyleLongDate      TimestampStyle = "D"
	StyleShortDate     TimestampStyle = "d"
	StyleLongTime      TimestampStyle = "T"
	StyleShortTime     TimestampStyle = "t"
	StyleLongDateTime  TimestampStyle = "F"
	StyleShortDateTime TimestampStyle = "f"
)

// TimestampStyles lists every supported style.
var TimestampStyles = []TimestampStyle{
	StyleRelative, StyleLongDate, StyleShortDate, StyleLongTime,
	StyleShortTime, StyleLongDateTime, StyleShortDateTime,
}

// Valid reports whether s is a known style.
func (s TimestampStyle) Valid() bool {
	for _, style := range TimestampStyles {
		if s == style {
			return true
		}
	}
	return false
}

// FormatTimestamp renders t as <t:unix:style>.
func FormatTimestamp(t time.Time, style TimestampStyle) (string, error) {
	if !style.Valid() {
		return "", errorwrapper.NewKindError(errorwrapper.ErrInvalidTimestampStyle, "style", string(style),
			fmt.Sprintf("style must be one of %v", TimestampStyles))
	}
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), style), nil
}

// CreateTimestamp renders the normalizer's current time in the given style.
func (tn *TimestampNormalizer) CreateTimestamp(style TimestampStyle) (string, error) {
	return FormatTimestamp(tn.clock(), style)
}

// CreateTimestamp renders the current wall-clock time in the given style.
func CreateTimestamp(style TimestampStyle) (string, error) {
	return defaultTimestampNormalizer.CreateTimestamp(style)
}
