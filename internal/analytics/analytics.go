// Package analytics derives stock and expiry alerts, dashboard counters and a
// recency-ordered activity feed from product and transaction snapshots.
//
// Every operation is a pure function of its inputs and the Analyzer's
// configuration. Missing or malformed values never fail a call: negative
// quantities read as 0 and products without an expiry date are not expiry
// alerts.
package analytics

import (
	"fmt"
	"time"
)

// Default thresholds.
const (
	DefaultLowStock           = 10
	DefaultCriticalStock      = 5
	DefaultExpireSoonDays     = 30
	DefaultExpireCriticalDays = 7
)

// ExpiresTodayPolicy decides the severity of a product whose expiry date is
// the current day.
type ExpiresTodayPolicy string

const (
	// ExpiresTodayCritical keeps daysLeft == 0 in the CRITICAL tier.
	ExpiresTodayCritical ExpiresTodayPolicy = "critical"
	// ExpiresTodayExpired counts daysLeft == 0 as already expired.
	ExpiresTodayExpired ExpiresTodayPolicy = "expired"
)

// Config holds the classification thresholds.
type Config struct {
	LowStock           int
	CriticalStock      int
	ExpireSoonDays     int
	ExpireCriticalDays int
	ExpiresToday       ExpiresTodayPolicy
	// Location is the zone "today" is taken in. Nil means time.Local.
	Location *time.Location
	// Now is the clock. Nil means time.Now.
	Now func() time.Time
}

// DefaultConfig returns the stock thresholds 10/5, expiry windows 30/7 and
// the CRITICAL expires-today policy.
func DefaultConfig() Config {
	return Config{
		LowStock:           DefaultLowStock,
		CriticalStock:      DefaultCriticalStock,
		ExpireSoonDays:     DefaultExpireSoonDays,
		ExpireCriticalDays: DefaultExpireCriticalDays,
		ExpiresToday:       ExpiresTodayCritical,
	}
}

// Validate checks threshold ordering.
func (c Config) Validate() error {
	if c.CriticalStock < 0 {
		return fmt.Errorf("invalid critical stock threshold %d: must not be negative", c.CriticalStock)
	}
	if c.LowStock < c.CriticalStock {
		return fmt.Errorf("invalid low stock threshold %d: must be at least the critical threshold %d", c.LowStock, c.CriticalStock)
	}
	if c.ExpireCriticalDays < 0 {
		return fmt.Errorf("invalid expire critical window %d: must not be negative", c.ExpireCriticalDays)
	}
	if c.ExpireSoonDays < c.ExpireCriticalDays {
		return fmt.Errorf("invalid expire soon window %d: must be at least the critical window %d", c.ExpireSoonDays, c.ExpireCriticalDays)
	}
	switch c.ExpiresToday {
	case "", ExpiresTodayCritical, ExpiresTodayExpired:
	default:
		return fmt.Errorf("invalid expires today policy %q: must be %q or %q", c.ExpiresToday, ExpiresTodayCritical, ExpiresTodayExpired)
	}
	return nil
}

// Analyzer applies one Config to product and transaction snapshots.
// It is immutable and safe for concurrent use.
type Analyzer struct {
	cfg Config
}

// New creates an Analyzer after validating cfg.
func New(cfg Config) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.ExpiresToday == "" {
		cfg.ExpiresToday = ExpiresTodayCritical
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Analyzer{cfg: cfg}, nil
}

// Config returns the effective configuration.
func (a *Analyzer) Config() Config { return a.cfg }

// now returns the current instant in the configured location.
func (a *Analyzer) now() time.Time {
	return a.cfg.Now().In(a.cfg.Location)
}
