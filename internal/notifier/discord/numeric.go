package discord

import "math"

// asInt64 unpacks any of Go's integer kinds. ok is false for non-integers;
// overflow is set for unsigned values above math.MaxInt64.
func asInt64(v any) (n int64, ok bool, overflow bool) {
	switch i := v.(type) {
	case int:
		return int64(i), true, false
	case int8:
		return int64(i), true, false
	case int16:
		return int64(i), true, false
	case int32:
		return int64(i), true, false
	case int64:
		return i, true, false
	case uint:
		return uintToInt64(uint64(i))
	case uint8:
		return int64(i), true, false
	case uint16:
		return int64(i), true, false
	case uint32:
		return int64(i), true, false
	case uint64:
		return uintToInt64(i)
	default:
		return 0, false, false
	}
}

func uintToInt64(u uint64) (int64, bool, bool) {
	if u > math.MaxInt64 {
		return 0, true, true
	}
	return int64(u), true, false
}
