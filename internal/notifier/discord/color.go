package discord

import (
	"math"
	"strconv"
	"strings"

	"github.com/aleister1102/hookcord/internal/common/errorwrapper"
)

// ColorRange is the exclusive upper bound of a 24-bit RGB color.
const ColorRange = 1 << 24

// NormalizeColor converts a hex string or an integer into a 24-bit color.
// A nil input yields a nil color so that no color key is emitted.
func NormalizeColor(color any) (*int, error) {
	if color == nil {
		return nil, nil
	}

	var value int64
	switch c := color.(type) {
	case string:
		parsed, err := parseHexColor(c)
		if err != nil {
			return nil, err
		}
		value = parsed
	case float32:
		parsed, err := integralColor(float64(c))
		if err != nil {
			return nil, err
		}
		value = parsed
	case float64:
		// JSON and YAML decoders hand numbers over as float64.
		parsed, err := integralColor(c)
		if err != nil {
			return nil, err
		}
		value = parsed
	default:
		n, ok, overflow := asInt64(color)
		switch {
		case !ok:
			return nil, errorwrapper.NewKindError(errorwrapper.ErrInvalidColor, "color", color, "color must be a hex string or an integer")
		case overflow:
			return nil, colorOutOfRange(color)
		}
		value = n
	}

	if value < 0 || value >= ColorRange {
		return nil, colorOutOfRange(value)
	}

	result := int(value)
	return &result, nil
}

// ConvertColorToInt is the non-optional form of NormalizeColor.
func ConvertColorToInt(color any) (int, error) {
	if color == nil {
		return 0, errorwrapper.NewKindError(errorwrapper.ErrInvalidColor, "color", nil, "color is required")
	}
	value, err := NormalizeColor(color)
	if err != nil {
		return 0, err
	}
	return *value, nil
}

// parseHexColor accepts "FF0000", "#FF0000" and "0xFF0000".
func parseHexColor(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "#")
	if len(trimmed) > 1 && trimmed[0] == '0' && (trimmed[1] == 'x' || trimmed[1] == 'X') {
		trimmed = trimmed[2:]
	}
	if trimmed == "" {
		return 0, errorwrapper.NewKindError(errorwrapper.ErrInvalidColor, "color", s, "color string is empty")
	}

	value, err := strconv.ParseInt(trimmed, 16, 64)
	if err != nil {
		return 0, errorwrapper.NewKindError(errorwrapper.ErrInvalidColor, "color", s, "color is not a hexadecimal string")
	}
	return value, nil
}

func integralColor(c float64) (int64, error) {
	if c != math.Trunc(c) || math.IsInf(c, 0) || math.IsNaN(c) {
		return 0, errorwrapper.NewKindError(errorwrapper.ErrInvalidColor, "color", c, "color must be an integer")
	}
	if c < 0 || c >= ColorRange {
		return 0, colorOutOfRange(c)
	}
	return int64(c), nil
}

func colorOutOfRange(value any) error {
	return errorwrapper.NewKindError(errorwrapper.ErrInvalidColor, "color", value, "color is out of the valid range [0, 16777215]")
}
