package analytics

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultActivityLimit is the length of the dashboard activity feed.
const DefaultActivityLimit = 8

// ActivityKind tells sales and purchases apart in the feed.
type ActivityKind string

const (
	ActivitySale     ActivityKind = "sale"
	ActivityPurchase ActivityKind = "purchase"
)

// ActivityEntry is one row of the recent-activity timeline.
type ActivityEntry struct {
	Kind        ActivityKind    `json:"type"`
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   time.Time       `json:"time"`
}

// MergeActivity builds one entry per sale and purchase, newest first.
// Entries with equal timestamps keep sales ahead of purchases and each in
// input order. A limit of 0 or less keeps every entry.
func MergeActivity(sales []Sale, purchases []Purchase, limit int) []ActivityEntry {
	entries := make([]ActivityEntry, 0, len(sales)+len(purchases))
	for _, s := range sales {
		product := otherProduct
		if len(s.Items) > 0 && s.Items[0].ProductName != "" {
			product = s.Items[0].ProductName
		}
		entries = append(entries, ActivityEntry{
			Kind:        ActivitySale,
			ID:          s.ID,
			Title:       "New Sale",
			Description: fmt.Sprintf("Sale #%d - %s", s.ID, product),
			Amount:      s.Total,
			Timestamp:   s.When(),
		})
	}
	for _, p := range purchases {
		entries = append(entries, ActivityEntry{
			Kind:        ActivityPurchase,
			ID:          p.ID,
			Title:       "New Purchase",
			Description: fmt.Sprintf("Purchase #%d", p.ID),
			Amount:      p.Total,
			Timestamp:   p.CreatedAt,
		})
	}

	// Zero timestamps sort as the oldest.
	slices.SortStableFunc(entries, func(x, y ActivityEntry) int {
		return y.Timestamp.Compare(x.Timestamp)
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
