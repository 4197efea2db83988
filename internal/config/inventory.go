package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/simp-lee/stockroom/internal/analytics"
)

// Inventory defaults applied by Validate to zero fields.
const (
	DefaultPageSize          = 10
	DefaultMaxPageSize       = 100
	DefaultAlertLimit        = 20
	DefaultActivityLimit     = analytics.DefaultActivityLimit
	DefaultNotificationLimit = analytics.DefaultNotificationLimit
	DefaultLanguage          = "en"
)

// InventoryConfig holds the alert thresholds and list defaults.
type InventoryConfig struct {
	// Thresholds are pointers so an explicit 0 (no CRITICAL tier, or only
	// "today" critical) is kept apart from an unset value.
	LowStock           *int   `koanf:"low_stock"`
	CriticalStock      *int   `koanf:"critical_stock"`
	ExpireSoonDays     *int   `koanf:"expire_soon_days"`
	ExpireCriticalDays *int   `koanf:"expire_critical_days"`
	ExpiresToday       string `koanf:"expires_today"`
	PageSize           int    `koanf:"page_size"`
	MaxPageSize        int    `koanf:"max_page_size"`
	AlertLimit         int    `koanf:"alert_limit"`
	ActivityLimit      int    `koanf:"activity_limit"`
	NotificationLimit  int    `koanf:"notification_limit"`
	// Language is the BCP 47 tag text is collated by.
	Language string `koanf:"language"`
	// Timezone is the IANA zone "today" is taken in. Empty means local time.
	Timezone string `koanf:"timezone"`
}

// Validate fills unset thresholds and zero list settings with defaults and
// checks the rest.
func (c *InventoryConfig) Validate() error {
	unset := func(v **int, def int) {
		if *v == nil {
			*v = &def
		}
	}
	unset(&c.LowStock, analytics.DefaultLowStock)
	unset(&c.CriticalStock, analytics.DefaultCriticalStock)
	unset(&c.ExpireSoonDays, analytics.DefaultExpireSoonDays)
	unset(&c.ExpireCriticalDays, analytics.DefaultExpireCriticalDays)

	fill := func(v *int, def int) {
		if *v == 0 {
			*v = def
		}
	}
	fill(&c.PageSize, DefaultPageSize)
	fill(&c.MaxPageSize, DefaultMaxPageSize)
	fill(&c.AlertLimit, DefaultAlertLimit)
	fill(&c.ActivityLimit, DefaultActivityLimit)
	fill(&c.NotificationLimit, DefaultNotificationLimit)

	c.ExpiresToday = strings.ToLower(strings.TrimSpace(c.ExpiresToday))
	if c.ExpiresToday == "" {
		c.ExpiresToday = string(analytics.ExpiresTodayCritical)
	}
	c.Language = strings.TrimSpace(c.Language)
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	c.Timezone = strings.TrimSpace(c.Timezone)

	if c.PageSize < 0 || c.MaxPageSize < 0 {
		return fmt.Errorf("invalid inventory page sizes %d/%d: must be positive", c.PageSize, c.MaxPageSize)
	}
	if c.PageSize > c.MaxPageSize {
		return fmt.Errorf("invalid inventory.page_size %d: must not exceed inventory.max_page_size %d", c.PageSize, c.MaxPageSize)
	}
	if c.AlertLimit < 0 || c.ActivityLimit < 0 || c.NotificationLimit < 0 {
		return fmt.Errorf("invalid inventory limits: must not be negative")
	}
	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("invalid inventory.language %q: %w", c.Language, err)
	}
	if _, err := c.location(); err != nil {
		return err
	}
	if err := c.thresholds().Validate(); err != nil {
		return fmt.Errorf("invalid inventory thresholds: %w", err)
	}
	return nil
}

// thresholds reads the threshold fields; unset ones take their defaults so
// the result is usable before Validate has run.
func (c *InventoryConfig) thresholds() analytics.Config {
	get := func(v *int, def int) int {
		if v == nil {
			return def
		}
		return *v
	}
	return analytics.Config{
		LowStock:           get(c.LowStock, analytics.DefaultLowStock),
		CriticalStock:      get(c.CriticalStock, analytics.DefaultCriticalStock),
		ExpireSoonDays:     get(c.ExpireSoonDays, analytics.DefaultExpireSoonDays),
		ExpireCriticalDays: get(c.ExpireCriticalDays, analytics.DefaultExpireCriticalDays),
		ExpiresToday:       analytics.ExpiresTodayPolicy(c.ExpiresToday),
	}
}

func (c *InventoryConfig) location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid inventory.timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Analytics returns the analyzer configuration, with the configured zone
// and the system clock.
func (c *InventoryConfig) Analytics() (analytics.Config, error) {
	loc, err := c.location()
	if err != nil {
		return analytics.Config{}, err
	}
	cfg := c.thresholds()
	cfg.Location = loc
	cfg.Now = time.Now
	return cfg, nil
}

// LanguageTag returns the collation language. Unparsable values read as
// English.
func (c *InventoryConfig) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.English
	}
	return tag
}

// RemoteConfig points the command line tool at a REST backend.
type RemoteConfig struct {
	BaseURL string `koanf:"base_url"`
	Token   string `koanf:"token"`
	Retries int    `koanf:"retries"`
	Timeout string `koanf:"timeout"`
}

// Validate trims fields and checks the URL and timeout when set.
func (r *RemoteConfig) Validate() error {
	r.BaseURL = strings.TrimRight(strings.TrimSpace(r.BaseURL), "/")
	r.Token = strings.TrimSpace(r.Token)
	r.Timeout = strings.TrimSpace(r.Timeout)

	if r.BaseURL != "" {
		u, err := url.Parse(r.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid remote.base_url %q: must be an http or https URL", r.BaseURL)
		}
	}
	if r.Retries < 0 {
		return fmt.Errorf("invalid remote.retries %d: must not be negative", r.Retries)
	}
	return checkDuration("remote.timeout", r.Timeout)
}
