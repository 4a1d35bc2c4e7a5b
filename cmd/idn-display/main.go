package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/haukened/idn-display/internal/idn/common/clock"
	"github.com/haukened/idn-display/internal/idn/common/log"
	"github.com/haukened/idn-display/internal/idn/config"
	"github.com/haukened/idn-display/internal/idn/domain"
	"github.com/haukened/idn-display/internal/idn/repos/overrides"
	"github.com/haukened/idn-display/internal/idn/repos/overrides/loader"
	"github.com/haukened/idn-display/internal/idn/repos/verdictcache"
	"github.com/haukened/idn-display/internal/idn/services/display"
	"github.com/haukened/idn-display/internal/idn/services/spoofcheck"
)

const (
	version = "0.1.0-dev"
	appName = "idn-display"
)

// Application holds the wired components.
type Application struct {
	config    *config.AppConfig
	display   *display.Service
	verdicts  *verdictcache.Cache
	overrides overrides.Repository
}

type options struct {
	explain bool
	format  string
	workers int
}

// loadConfig is replaced in tests.
var loadConfig = config.Load

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   appName + " [domain...]",
		Short: "Show domain names the way a browser would display them",
		Long: "Renders each domain in Unicode when every label passes the spoof checks " +
			"and in ASCII (punycode) otherwise. Domains are read from the arguments, " +
			"or one per line from stdin when none are given.",
		Example:      appName + " аpple.com müller.de\n  cat domains.txt | " + appName + " --format json",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "Print per-label verdicts and override matches")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: 'text' or 'json'")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Concurrent renders; defaults to IDN_RENDER_WORKERS")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("unsupported format %q", opts.format)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if err := log.Configure(cfg.Env, cfg.Log.Level); err != nil {
		return fmt.Errorf("logging configuration error: %w", err)
	}
	log.Debug(map[string]any{
		"version":       version,
		"env":           cfg.Env,
		"log_level":     cfg.Log.Level,
		"apple_fonts":   cfg.Checker.AppleFonts,
		"overrides_dir": cfg.Overrides.Directory,
		"workers":       cfg.Render.Workers,
	}, "Starting idn-display")

	app, err := buildApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	defer app.Close()

	inputs := args
	if len(inputs) == 0 {
		inputs, err = readDomains(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read domains: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results, err := app.display.DisplayAll(ctx, inputs, opts.workers)
	if err != nil {
		return err
	}

	failed, err := writeResults(cmd.OutOrStdout(), results, opts)
	if err != nil {
		return err
	}
	app.logStats()
	if failed > 0 {
		return fmt.Errorf("%d of %d domains could not be parsed", failed, len(results))
	}
	return nil
}

// buildApplication constructs all components and wires them together.
func buildApplication(cfg *config.AppConfig) (*Application, error) {
	logger := log.GetLogger()

	classifier, err := spoofcheck.New(spoofcheck.Options{
		AppleFonts: cfg.Checker.AppleFonts,
		Logger:     logger,
	})
	if err != nil {
		// a nil classifier renders every IDN label in ASCII
		log.Error(map[string]any{"error": err}, "Spoof checker unavailable")
	}

	verdicts, err := verdictcache.New(classifier, int(cfg.Checker.Cache.Size))
	if err != nil {
		return nil, fmt.Errorf("failed to create verdict cache: %w", err)
	}

	repo, err := loader.Open(loader.Options{
		Directory: cfg.Overrides.Directory,
		DBPath:    cfg.Overrides.DB,
		FPRate:    cfg.Overrides.FPRate,
		CacheSize: int(cfg.Overrides.Cache.Size),
		Clock:     clock.RealClock{},
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load overrides: %w", err)
	}

	svc := display.New(display.Options{
		Classifier: verdicts,
		Overrides:  repo,
		Logger:     logger,
		Workers:    cfg.Render.Workers,
	})

	return &Application{
		config:    cfg,
		display:   svc,
		verdicts:  verdicts,
		overrides: repo,
	}, nil
}

// Close releases the override store.
func (app *Application) Close() {
	if err := app.overrides.Close(); err != nil {
		log.Warn(map[string]any{"error": err}, "Error closing override store")
	}
}

func (app *Application) logStats() {
	vs := app.verdicts.Stats()
	rs := app.overrides.Stats()
	log.Debug(map[string]any{
		"verdict_hits":     vs.Hits,
		"verdict_misses":   vs.Misses,
		"override_hits":    rs.Cache.Hits,
		"bloom_rejects":    rs.BloomRejects,
		"store_lookups":    rs.StoreLookups,
		"store_failures":   rs.StoreFailures,
		"override_rules":   rs.Store.ExactKeys + rs.Store.SuffixKeys,
		"override_version": rs.Store.Version,
	}, "Run statistics")
}

// readDomains returns the non-blank, non-comment lines of r.
func readDomains(r io.Reader) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, scanner.Err()
}

type jsonResult struct {
	domain.Display
	Spoofed bool   `json:"spoofed"`
	Error   string `json:"error,omitempty"`
}

// writeResults prints one entry per result and returns the number of inputs
// that failed to parse.
func writeResults(w io.Writer, results []display.Result, opts *options) (int, error) {
	failed := 0
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
		var err error
		switch opts.format {
		case "json":
			jr := jsonResult{Display: r.Display, Spoofed: r.Err == nil && r.Display.Spoofed()}
			if !opts.explain {
				jr.Labels = nil
			}
			if r.Err != nil {
				jr.Error = r.Err.Error()
			}
			err = enc.Encode(jr)
		default:
			err = writeText(w, r, opts.explain)
		}
		if err != nil {
			return failed, err
		}
	}
	return failed, nil
}

func writeText(w io.Writer, r display.Result, explain bool) error {
	if r.Err != nil {
		_, err := fmt.Fprintf(w, "%s\terror: %v\n", r.Display.Input, r.Err)
		return err
	}
	d := r.Display
	if !explain {
		_, err := fmt.Fprintln(w, d.Checked)
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", d.Checked)
	fmt.Fprintf(&b, "  input:       %s\n", d.Input)
	fmt.Fprintf(&b, "  ascii:       %s\n", d.ASCII)
	fmt.Fprintf(&b, "  unicode:     %s\n", d.Unchecked)
	fmt.Fprintf(&b, "  registrable: %s\n", d.Registrable)
	if d.Override != nil {
		fmt.Fprintf(&b, "  override:    %s (%s, %s)\n", d.Override.Name, d.Override.Kind, d.Override.Source)
	}
	for _, l := range d.Labels {
		if l.IsIDN {
			fmt.Fprintf(&b, "  label %s (%s): %s\n", l.ASCII, l.Unicode, l.Result)
		} else {
			fmt.Fprintf(&b, "  label %s: %s\n", l.ASCII, l.Result)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
