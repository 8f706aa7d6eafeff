package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lexhunt/lexhuntcli/internal/config"
	"github.com/lexhunt/lexhuntcli/internal/registrar"
	"github.com/lexhunt/lexhuntcli/internal/registrar/godaddy"
)

const (
	defaultBatchSize = godaddy.DefaultBatchCap
	defaultDelay     = 4 * time.Second
	defaultTimeout   = 30 * time.Second
	defaultOutput    = "available.json"
	defaultTLDs      = ".com"
)

type appConfig struct {
	Version string

	// Global flags.
	VersionFlag bool
	ConfigPath  string
	Format      string
	JSON        bool
	Plain       bool
	BatchSize   int
	Delay       time.Duration
	Timeout     time.Duration
	BaseURL     string
	Quiet       bool
	Verbose     bool

	// Derived runtime state.
	file      config.Config
	logger    zerolog.Logger
	outFormat outputFormat
	registrar registrar.Client
}

func newRootCmd(ver string) *cobra.Command {
	cfg := &appConfig{Version: ver}

	root := &cobra.Command{
		Use:           "lexhuntcli",
		Short:         "Check bulk domain availability for dictionary words",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return &cliError{Code: 2, ShowUsage: true, Cmd: cmd}
		},
	}
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SetFlagErrorFunc(usageErr)

	pf := root.PersistentFlags()
	pf.BoolVar(&cfg.VersionFlag, "version", false, "Print version and exit")
	pf.StringVar(&cfg.ConfigPath, "config", "", "Path to YAML defaults file (default "+config.DefaultFileName+" if present)")
	pf.StringVar(&cfg.Format, "format", "auto", "Output format: auto|table|json|plain")
	pf.BoolVar(&cfg.JSON, "json", false, "Alias for --format json")
	pf.BoolVar(&cfg.Plain, "plain", false, "Alias for --format plain (stable tab-separated)")
	pf.IntVar(&cfg.BatchSize, "batch-size", defaultBatchSize, "Domains per provider call (provider cap applies)")
	pf.DurationVar(&cfg.Delay, "delay", defaultDelay, "Minimum delay between provider calls")
	pf.DurationVar(&cfg.Timeout, "timeout", defaultTimeout, "Per-request timeout (e.g. 30s)")
	pf.StringVar(&cfg.BaseURL, "base-url", "", "Override the provider API base URL (e.g. the GoDaddy OTE host)")
	pf.BoolVarP(&cfg.Quiet, "quiet", "q", false, "Only log errors")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log every checked domain")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cfg.VersionFlag {
			fmt.Fprintf(os.Stdout, "lexhuntcli %s (%s/%s)\n", cfg.Version, runtime.GOOS, runtime.GOARCH)
			return errExit0
		}

		// .env beside the binary is the documented place for credentials.
		_ = godotenv.Load()

		if err := loadDefaultsFile(cfg, cmd); err != nil {
			return err
		}

		formatStr := strings.ToLower(strings.TrimSpace(cfg.Format))
		if cfg.JSON && cfg.Plain {
			return usageErr(cmd, fmt.Errorf("flags are mutually exclusive: --json, --plain"))
		}
		if formatStr != "auto" && formatStr != "" && (cfg.JSON || cfg.Plain) {
			return usageErr(cmd, fmt.Errorf("do not combine --format with --json/--plain"))
		}
		if cfg.JSON {
			formatStr = "json"
		}
		if cfg.Plain {
			formatStr = "plain"
		}
		cfg.outFormat = resolveFormat(formatStr, os.Stdout)

		cfg.logger = newLogger(cfg.Quiet, cfg.Verbose)

		return nil
	}

	root.AddCommand(newHuntCmd(cfg))
	root.AddCommand(newCheckCmd(cfg))

	return root
}

// connect builds the registrar client. Missing credentials abort here,
// before any candidate building or network activity.
func (cfg *appConfig) connect() error {
	if cfg.registrar != nil {
		return nil
	}
	client, err := godaddy.NewClient(godaddy.Options{
		APIKey:    os.Getenv("GODADDY_API_KEY"),
		APISecret: os.Getenv("GODADDY_API_SECRET"),
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
	})
	if err != nil {
		return fatalErr(err)
	}
	cfg.registrar = client
	return nil
}

// loadDefaultsFile layers the YAML file under the flags: a file value
// applies only where the flag was left at its default.
func loadDefaultsFile(cfg *appConfig, cmd *cobra.Command) error {
	path := cfg.ConfigPath
	explicit := path != ""
	if !explicit {
		path = config.DefaultFileName
	}

	file, err := config.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return usageErr(cmd, err)
	}
	cfg.file = file

	flags := cmd.Root().PersistentFlags()
	if !flags.Changed("batch-size") && file.BatchSize > 0 {
		cfg.BatchSize = file.BatchSize
	}
	if !flags.Changed("delay") && file.Delay > 0 {
		cfg.Delay = time.Duration(file.Delay)
	}
	if !flags.Changed("timeout") && file.Timeout > 0 {
		cfg.Timeout = time.Duration(file.Timeout)
	}
	if !flags.Changed("base-url") && file.BaseURL != "" {
		cfg.BaseURL = file.BaseURL
	}
	return nil
}

func newLogger(quiet, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if quiet {
		level = zerolog.ErrorLevel
	}

	if term.IsTerminal(int(os.Stderr.Fd())) {
		out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
		return zerolog.New(out).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}
