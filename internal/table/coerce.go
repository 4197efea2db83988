package table

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// ToNumber coerces v to a finite float64. nil, empty strings, unparsable
// strings, NaN and infinities all become 0.
func ToNumber(v any) float64 {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		sv, ok := v.(fmt.Stringer)
		if !ok {
			return 0
		}
		if f, err = cast.ToFloat64E(strings.TrimSpace(sv.String())); err != nil {
			return 0
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ToString coerces v to text. nil is "", floats use the shortest decimal
// representation and times use RFC 3339.
func ToString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x.Format(time.RFC3339)
	case *time.Time:
		if x == nil {
			return ""
		}
		return ToString(*x)
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}

// ToTime parses v as an instant. Zone-less layouts are read as UTC.
// The boolean is false for nil, the zero time and anything unparsable.
func ToTime(v any) (time.Time, bool) {
	return ToTimeIn(v, time.UTC)
}

// ToTimeIn is ToTime with zone-less layouts read in loc. Numbers are
// treated as Unix milliseconds.
func ToTimeIn(v any, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	switch x := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return x, !x.IsZero()
	case *time.Time:
		if x == nil || x.IsZero() {
			return time.Time{}, false
		}
		return *x, true
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return time.Time{}, false
		}
		t, err := cast.ToTimeInDefaultLocationE(s, loc)
		if err != nil || t.IsZero() {
			return time.Time{}, false
		}
		return t, true
	case float64, float32, int, int64, int32, uint, uint64, json.Number:
		ms := ToNumber(x)
		if ms == 0 {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(ms)).In(loc), true
	default:
		return time.Time{}, false
	}
}

// normalizeAuto converts numeric and pointer shapes to the canonical
// Record value types, leaving strings and times untouched.
func normalizeAuto(v any) any {
	switch x := v.(type) {
	case nil, string, float64, time.Time:
		return v
	case *time.Time:
		if x == nil {
			return nil
		}
		return *x
	case *string:
		if x == nil {
			return nil
		}
		return *x
	case float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, bool, json.Number:
		return ToNumber(x)
	default:
		return ToString(x)
	}
}
