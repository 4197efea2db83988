package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/simp-lee/stockroom/internal/analytics"
	"github.com/simp-lee/stockroom/internal/catalog"
	"github.com/simp-lee/stockroom/internal/config"
	"github.com/simp-lee/stockroom/internal/remote"
	"github.com/simp-lee/stockroom/internal/table"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	baseURL    string
	token      string
	retries    int
	timeout    time.Duration
	verbose    bool
}

// env is what a command runs against, built once per invocation.
type env struct {
	cfg      *config.ClientConfig
	flags    *globalFlags
	engine   *table.Engine
	analyzer *analytics.Analyzer
	out      io.Writer
	errOut   io.Writer
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	e := &env{flags: flags}

	root := &cobra.Command{
		Use:   "stockctl",
		Short: "Query a stockroom inventory from the command line.",
		Long: `stockctl reads products, customers, suppliers, staff, users, purchases and
sales from a stockroom REST backend or local JSON exports, then filters,
sorts and pages them or derives stock and expiry alerts locally.`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file with inventory and remote sections")
	pf.StringVar(&flags.baseURL, "base-url", "", "API root of the backend (overrides remote.base_url)")
	pf.StringVar(&flags.token, "token", "", "bearer token (overrides remote.token)")
	pf.IntVar(&flags.retries, "retries", 0, "retries per request (overrides remote.retries)")
	pf.DurationVar(&flags.timeout, "timeout", 0, "per-request timeout (overrides remote.timeout)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log request retries to stderr")

	root.AddCommand(newListCmd(e), newAlertsCmd(e), newDashboardCmd(e))
	return root
}

// init loads the configuration and applies the flags set on the command
// line over it.
func (e *env) init(cmd *cobra.Command) error {
	e.out = cmd.OutOrStdout()
	e.errOut = cmd.ErrOrStderr()

	cfg, err := config.LoadClient(e.flags.configPath)
	if err != nil {
		return err
	}

	pf := cmd.Flags()
	if pf.Changed("base-url") {
		cfg.Remote.BaseURL = e.flags.baseURL
	}
	if pf.Changed("token") {
		cfg.Remote.Token = e.flags.token
	}
	if pf.Changed("retries") {
		cfg.Remote.Retries = e.flags.retries
	}
	if pf.Changed("timeout") {
		cfg.Remote.Timeout = e.flags.timeout.String()
	}
	if err := cfg.Remote.Validate(); err != nil {
		return err
	}

	acfg, err := cfg.Inventory.Analytics()
	if err != nil {
		return err
	}
	if e.analyzer, err = analytics.New(acfg); err != nil {
		return err
	}
	e.engine = table.NewEngine(table.WithLanguage(cfg.Inventory.LanguageTag()))
	e.cfg = cfg
	return nil
}

// client builds the backend client from the effective remote settings.
func (e *env) client() (*remote.Client, error) {
	if e.cfg.Remote.BaseURL == "" {
		return nil, fmt.Errorf("no backend configured: set --base-url or remote.base_url")
	}
	var timeout time.Duration
	if e.cfg.Remote.Timeout != "" {
		d, err := time.ParseDuration(e.cfg.Remote.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", e.cfg.Remote.Timeout, err)
		}
		timeout = d
	}

	opts := remote.Options{
		BaseURL: e.cfg.Remote.BaseURL,
		Token:   e.cfg.Remote.Token,
		Retries: e.cfg.Remote.Retries,
		Timeout: timeout,
	}
	if e.flags.verbose {
		opts.Logger = slog.New(slog.NewTextHandler(e.errOut, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return remote.NewClient(opts)
}

// load reads res from file when set, otherwise from the backend.
func (e *env) load(cmd *cobra.Command, res catalog.Resource, file string) ([]table.Record, error) {
	if file != "" {
		return remote.ReadFile(file, res)
	}
	c, err := e.client()
	if err != nil {
		return nil, err
	}
	return c.Fetch(cmd.Context(), res)
}

// resource looks up name among the registered collections.
func resource(name string) (catalog.Resource, error) {
	res, ok := catalog.Lookup(name)
	if !ok {
		return catalog.Resource{}, fmt.Errorf("unknown resource %q: must be one of %v", name, catalog.Names())
	}
	return res, nil
}

func (e *env) print(v any) error {
	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
