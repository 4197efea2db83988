package analytics

import (
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatMoney renders d as US dollars with thousands separators and two
// decimals, e.g. "$1,234.50" or "-$3.00". Grouping works on the exact
// integer part, so amounts beyond float64 precision keep every digit.
func FormatMoney(d decimal.Decimal) string {
	whole, frac, _ := strings.Cut(d.Abs().StringFixed(2), ".")
	n, _ := new(big.Int).SetString(whole, 10)

	sign := ""
	if d.Round(2).IsNegative() {
		sign = "-"
	}
	return sign + "$" + humanize.BigComma(n) + "." + frac
}

// FormatDate renders t as dd/mm/yyyy, or "N/A" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("02/01/2006")
}

// TimeAgo renders the age of t relative to now in the largest whole unit
// among seconds, minutes, hours and days. The zero time is "Recently".
func TimeAgo(t, now time.Time) string {
	if t.IsZero() {
		return "Recently"
	}
	secs := max(int64(now.Sub(t)/time.Second), 0)
	switch {
	case secs < 60:
		return strconv.FormatInt(secs, 10) + "s ago"
	case secs < 3600:
		return strconv.FormatInt(secs/60, 10) + "m ago"
	case secs < 86400:
		return strconv.FormatInt(secs/3600, 10) + "h ago"
	default:
		return strconv.FormatInt(secs/86400, 10) + "d ago"
	}
}

// DaysLabel renders an expiry countdown as "3d left" or "2d ago".
func DaysLabel(daysLeft int) string {
	if daysLeft < 0 {
		return strconv.Itoa(-daysLeft) + "d ago"
	}
	return strconv.Itoa(daysLeft) + "d left"
}
