package table

import (
	"cmp"
	"strings"
	"time"

	"golang.org/x/text/collate"
)

// compareFunc picks the comparison policy for one sort key. The policy is
// fixed for the whole sort so the ordering stays consistent.
func compareFunc(f Field, records []Record, col *collate.Collator) func(a, b Record) int {
	name := f.Name
	if isDateField(f, records) {
		return func(a, b Record) int {
			return compareTimes(a.Get(name), b.Get(name))
		}
	}

	switch f.Kind {
	case KindNumber:
		return func(a, b Record) int {
			return cmp.Compare(ToNumber(a.Get(name)), ToNumber(b.Get(name)))
		}
	case KindString:
		return func(a, b Record) int {
			return col.CompareString(ToString(a.Get(name)), ToString(b.Get(name)))
		}
	default:
		if allText(name, records) {
			return func(a, b Record) int {
				return col.CompareString(ToString(a.Get(name)), ToString(b.Get(name)))
			}
		}
		return func(a, b Record) int {
			return cmp.Compare(ToNumber(a.Get(name)), ToNumber(b.Get(name)))
		}
	}
}

// allText reports whether every present value of name is a string. An
// untyped column collates only then, missing values counting as "";
// otherwise the whole column compares numerically.
func allText(name string, records []Record) bool {
	for _, r := range records {
		switch r.Get(name).(type) {
		case nil, string:
		default:
			return false
		}
	}
	return true
}

// compareTimes orders by instant. Missing or unparsable values sort as the
// oldest possible time.
func compareTimes(a, b any) int {
	ta, okA := ToTime(a)
	tb, okB := ToTime(b)
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return -1
	case !okB:
		return 1
	default:
		return ta.Compare(tb)
	}
}

// isDateField reports whether a sort key holds timestamps, either by
// declaration, by a date-shaped name, or by carrying time.Time values.
func isDateField(f Field, records []Record) bool {
	switch f.Kind {
	case KindTime:
		return true
	case KindString, KindNumber:
		return false
	}
	if dateShapedName(f.Name) {
		return true
	}
	for _, r := range records {
		switch r.Get(f.Name).(type) {
		case nil:
			continue
		case time.Time:
			return true
		default:
			return false
		}
	}
	return false
}

func dateShapedName(name string) bool {
	lower := strings.ToLower(name)
	switch {
	case lower == "date", lower == "dob":
		return true
	case strings.HasSuffix(lower, "_at"), strings.HasSuffix(lower, "_date"):
		return true
	case strings.HasSuffix(name, "At"), strings.HasSuffix(name, "Date"):
		return true
	}
	return false
}
