package analytics

import (
	"fmt"
	"slices"
	"time"
)

const (
	// DefaultNotificationLimit is the length of the notification dropdown.
	DefaultNotificationLimit = 10
	// notifyExpiryWindowDays bounds which expiry alerts become notifications.
	notifyExpiryWindowDays = 7
)

// NotificationType names a notification category.
type NotificationType string

const (
	NotifyOutOfStock    NotificationType = "out_of_stock"
	NotifyLowStock      NotificationType = "low_stock"
	NotifyExpired       NotificationType = "expired"
	NotifyExpiringToday NotificationType = "expiring_today"
	NotifyExpiringSoon  NotificationType = "expiring_soon"
	NotifySaleNew       NotificationType = "sale_new"
	NotifyPurchaseNew   NotificationType = "purchase_new"
)

// priority orders the feed. Activity types share the last rank and keep
// their timeline order.
func (t NotificationType) priority() int {
	switch t {
	case NotifyOutOfStock:
		return 0
	case NotifyExpired:
		return 1
	case NotifyExpiringToday:
		return 2
	case NotifyLowStock:
		return 3
	case NotifyExpiringSoon:
		return 4
	default:
		return 5
	}
}

// Notification is one derived entry of the notification feed.
type Notification struct {
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	// RefID is the product id for alerts and the sale or purchase id for
	// activity.
	RefID      uint       `json:"ref_id"`
	ExpireDate *time.Time `json:"expire_date,omitempty"`
	Time       *time.Time `json:"time,omitempty"`
}

// Notifications derives the notification feed from alerts and activity.
// Expiry alerts more than a week out are left to the dashboard. A limit of 0
// or less keeps every notification.
func Notifications(stock []StockAlert, expiry []ExpiryAlert, activity []ActivityEntry, limit int) []Notification {
	out := make([]Notification, 0, len(stock)+len(expiry)+len(activity))

	for _, s := range stock {
		n := Notification{RefID: s.ProductID}
		if s.Severity == StockOut {
			n.Type = NotifyOutOfStock
			n.Title = "Out of stock"
			n.Message = s.Name + " is out of stock"
		} else {
			n.Type = NotifyLowStock
			n.Title = "Low stock"
			n.Message = fmt.Sprintf("%s has %d left in stock", s.Name, s.Qty)
		}
		out = append(out, n)
	}

	for _, e := range expiry {
		if e.DaysLeft > notifyExpiryWindowDays {
			continue
		}
		expire := e.ExpireDate
		n := Notification{RefID: e.ProductID, ExpireDate: &expire}
		switch {
		case e.Severity == ExpiryExpired:
			n.Type = NotifyExpired
			n.Title = "Expired"
			if e.DaysLeft == 0 {
				n.Message = e.Name + " expired today"
			} else {
				n.Message = fmt.Sprintf("%s expired %s ago", e.Name, plural(-e.DaysLeft, "day"))
			}
		case e.DaysLeft == 0:
			n.Type = NotifyExpiringToday
			n.Title = "Expires today"
			n.Message = e.Name + " expires today"
		default:
			n.Type = NotifyExpiringSoon
			n.Title = "Expiring soon"
			n.Message = fmt.Sprintf("%s expires in %s", e.Name, plural(e.DaysLeft, "day"))
		}
		out = append(out, n)
	}

	for _, a := range activity {
		at := a.Timestamp
		n := Notification{RefID: a.ID, Message: a.Description}
		if !at.IsZero() {
			n.Time = &at
		}
		if a.Kind == ActivityPurchase {
			n.Type = NotifyPurchaseNew
		} else {
			n.Type = NotifySaleNew
		}
		n.Title = a.Title
		out = append(out, n)
	}

	slices.SortStableFunc(out, func(x, y Notification) int {
		return x.Type.priority() - y.Type.priority()
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
