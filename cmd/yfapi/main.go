// yfapi serves Yahoo Finance ticker data as JSON over HTTP.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/seenimoa/yfapi/api"
	"github.com/seenimoa/yfapi/internal/config"
	"github.com/seenimoa/yfapi/internal/infra"
	"github.com/seenimoa/yfapi/internal/logging"
	"github.com/seenimoa/yfapi/internal/providers/yfinance"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config and logger, set up before any command runs.
var (
	cfg    *config.Config
	logger zerolog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "yfapi",
	Short: "yfapi — Yahoo Finance ticker data as JSON",
	Long: `yfapi fetches quote info, price history, statements, analyst data and
earnings dates from Yahoo Finance and serves them as JSON records.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			cfg.Logging.Level = level
			if err := cfg.Validate(); err != nil {
				return err
			}
		}
		logger = logging.New(cfg.Logging)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(statusCmd)
}

// newProvider builds the Yahoo Finance provider from the loaded config.
func newProvider() *yfinance.Provider {
	pc := cfg.Provider
	return yfinance.New(yfinance.Options{
		Client:     infra.NewClient(pc.Timeout(), pc.UserAgent),
		Logger:     logger,
		Query1URL:  pc.Query1URL,
		Query2URL:  pc.Query2URL,
		FinanceURL: pc.FinanceURL,
		CookieURL:  pc.CookieURL,
		FeedURL:    pc.FeedURL,
	})
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// Skip config loading: version must work with a broken config.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "yfapi %s\n", version)
		fmt.Fprintf(out, "  commit:  %s\n", commit)
		fmt.Fprintf(out, "  built:   %s\n", date)
	},
}

// --- Serve Command (API Server) ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if host, _ := cmd.Flags().GetString("host"); host != "" {
			cfg.API.Host = host
		}
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.API.Port = port
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		api.Version = version
		srv := api.NewServer(cfg, newProvider(), logger)
		return srv.ListenAndServe(cfg.API.Addr())
	},
}

func init() {
	serveCmd.Flags().String("host", "", "listen host (overrides api.host)")
	serveCmd.Flags().Int("port", 0, "listen port (overrides api.port)")
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		pc := cfg.Provider
		fmt.Fprintln(out, "═══════════════════════════════════════")
		fmt.Fprintln(out, "  yfapi — Status")
		fmt.Fprintln(out, "═══════════════════════════════════════")
		fmt.Fprintf(out, "  Version:       %s (%s)\n", version, commit)
		fmt.Fprintf(out, "  API Server:    %s\n", cfg.API.Addr())
		fmt.Fprintf(out, "  CORS Origins:  %v\n", cfg.API.CORSOrigins)
		fmt.Fprintf(out, "  Timeout:       %s\n", pc.Timeout())
		fmt.Fprintf(out, "  Chart/Summary: %s\n", orDefault(pc.Query2URL, yfinance.DefaultQuery2URL))
		fmt.Fprintf(out, "  Crumb:         %s\n", orDefault(pc.Query1URL, yfinance.DefaultQuery1URL))
		fmt.Fprintf(out, "  Earnings:      %s\n", orDefault(pc.FinanceURL, yfinance.DefaultFinanceURL))
		fmt.Fprintf(out, "  News Feed:     %s\n", orDefault(pc.FeedURL, yfinance.DefaultFeedURL))
		fmt.Fprintf(out, "  Logging:       %s (%s)\n", cfg.Logging.Level, cfg.Logging.Format)
		fmt.Fprintln(out, "═══════════════════════════════════════")
		return nil
	},
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
