package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tzpick/internal/config"
	"tzpick/internal/eventbus"
	"tzpick/internal/logging"
	"tzpick/internal/timezones"
	"tzpick/internal/ui"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

// options holds the command line flags of the root command
type options struct {
	configPath  string
	url         string
	onFailure   string
	offline     bool
	placeholder string
	output      string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tzpick",
		Short: "Pick timezones from a searchable list",
		Long: `tzpick loads the list of available timezones and lets you pick any
number of them from a searchable dropdown. Confirmed picks are printed to
stdout, one per line or as a JSON array.

Options come from the timezone API unless --offline is given. When the request
fails, the built-in list of well-known timezones is used, or the error is shown
with --on-failure=error.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultFileName, "config file")
	bindFlags(cmd.Flags(), opts)

	cmd.AddCommand(newConfigCmd(opts), newVersionCmd())
	return cmd
}

func bindFlags(f *pflag.FlagSet, opts *options) {
	f.StringVar(&opts.url, "url", "", "timezone list URL (default from config)")
	f.StringVar(&opts.onFailure, "on-failure", "", `what to do when loading fails: "fallback" or "error"`)
	f.BoolVar(&opts.offline, "offline", false, "skip the request and use the built-in list")
	f.StringVar(&opts.placeholder, "placeholder", "", "placeholder shown in the empty search field")
	f.StringVarP(&opts.output, "output", "o", "", `output format for confirmed picks: "lines" or "json"`)
}

// applyFlags overrides config values with flags given explicitly
func applyFlags(flags *pflag.FlagSet, cfg *config.Config, opts *options) {
	if flags.Changed("url") {
		cfg.Source.URL = opts.url
	}
	if flags.Changed("on-failure") {
		cfg.Source.OnFailure = opts.onFailure
	}
	if flags.Changed("offline") {
		cfg.Source.Offline = opts.offline
	}
	if flags.Changed("placeholder") {
		cfg.UI.Placeholder = opts.placeholder
	}
	if flags.Changed("output") {
		cfg.UI.Output = opts.output
	}
}

func newSource(cfg *config.Config) timezones.Source {
	if cfg.Source.Offline {
		return timezones.StaticSource{Options: timezones.Builtin()}
	}
	client := &http.Client{Timeout: time.Duration(cfg.Source.TimeoutSeconds) * time.Second}
	return timezones.NewHTTPSource(cfg.Source.URL, client)
}

// subscribeLogger writes every domain event to the log
func subscribeLogger(bus eventbus.EventBus) {
	for _, t := range []eventbus.EventType{
		eventbus.EventOptionsLoaded,
		eventbus.EventOptionsFailed,
		eventbus.EventSelectionChanged,
		eventbus.EventSelectionConfirmed,
	} {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			log.Printf("event %s: %+v", e.Type(), e)
		})
	}
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := config.NewConfigService().LoadFromPath(opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd.Flags(), cfg, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}

	closeLog := logging.Setup(cfg.Log)
	defer closeLog()
	log.Printf("Starting tzpick %s (source=%s offline=%t on_failure=%s)",
		version, cfg.Source.URL, cfg.Source.Offline, cfg.Source.OnFailure)

	// Cancel the program on termination signals; ctrl+c arrives as a key
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()

	bus := eventbus.New()
	defer bus.Close()
	subscribeLogger(bus)

	loader := timezones.WithPolicy(newSource(cfg), cfg.Policy())
	model := ui.NewModel(cfg, loader, bus)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	model.SetProgram(p)

	if os.Getenv("TZPICK_E2E_TEST") == "1" {
		fmt.Fprintln(os.Stderr, "__READY__")
	}

	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("running program: %w", err)
	}
	log.Printf("UI exited normally")

	if err := model.Err(); err != nil {
		return fmt.Errorf("loading timezones: %w", err)
	}
	if !model.Confirmed() {
		return nil
	}
	return printSelection(cmd.OutOrStdout(), model.Selection(), cfg.UI.Output)
}
