package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/mkellner/spmirror/internal/config"
	"github.com/mkellner/spmirror/internal/logging"
	"github.com/mkellner/spmirror/internal/sharepoint"
	"github.com/mkellner/spmirror/internal/types"
	"github.com/mkellner/spmirror/internal/utils"
	"github.com/mkellner/spmirror/pkg/version"
	"github.com/spf13/cobra"
)

var (
	globalFlags types.GlobalFlags
	logger      logging.Logger
	cfg         *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "spmirror",
	Short: "Mirror site document libraries and export directory reports",
	Long: `spmirror is an administrative tool for two recurring jobs:

  mirror     incrementally copy a site's document libraries to local disk
  computers  enumerate directory-service computer objects into a report

Mirroring is one-way and incremental: new and newer remote files are
fetched, up-to-date local files are skipped, and nothing local is ever
deleted.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := validateGlobalFlags(); err != nil {
			return err
		}

		var err error
		cfg, err = config.Load(globalFlags.Config)
		if errors.Is(err, config.ErrConfigNotFound) {
			// Flags and environment variables may still carry everything a
			// command needs; each command validates its own fields.
			cfg = &config.Config{Log: config.LogConfig{Level: "info"}}
		} else if err != nil {
			return err
		}

		logFile := globalFlags.LogFile
		if logFile == "" {
			logFile = cfg.Log.File
		}
		level := globalFlags.LogLevel
		if level == "" {
			level = cfg.Log.Level
		}

		logger, err = logging.NewLogger(logging.LogConfig{
			Level:           logging.ParseLevel(level),
			OutputFile:      logFile,
			EnableConsole:   !globalFlags.Quiet,
			Verbose:         globalFlags.Verbose,
			EnableColor:     true,
			EnableTimestamp: true,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Close()
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Get().String())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalFlags.Config, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&globalFlags.LogFile, "log-file", "", "Path to log file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&globalFlags.LogLevel, "log-level", "", "Minimum file log level: full, info, warn, error")
	rootCmd.PersistentFlags().StringVar((*string)(&globalFlags.OutputFormat), "output", "table", "Output format (json, table)")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Quiet, "quiet", "q", false, "Suppress non-essential console output")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "Echo all log levels to the console")

	rootCmd.AddCommand(versionCmd)
}

func validateGlobalFlags() error {
	if globalFlags.OutputFormat != types.OutputFormatJSON && globalFlags.OutputFormat != types.OutputFormatTable {
		return fmt.Errorf("invalid output format: %s", globalFlags.OutputFormat)
	}
	return nil
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(utils.ExitUnknown)
	}
}

// exitWithError renders err on the configured writer and terminates with
// the exit code mapped from its error code
func exitWithError(command string, cliErr types.CLIError) {
	writer := NewOutputWriter(globalFlags.OutputFormat, globalFlags.Quiet)
	writer.WriteError(command, cliErr)
	os.Exit(utils.GetExitCode(cliErr.Code))
}

// classifyRemoteError maps a sharepoint failure onto a stable error code
func classifyRemoteError(err error) types.CLIError {
	var reqErr *sharepoint.RequestError
	if errors.As(err, &reqErr) {
		code := utils.ErrCodeFetchFailed
		switch {
		case reqErr.StatusCode == 401:
			code = utils.ErrCodeAuthExpired
		case reqErr.StatusCode == 403:
			code = utils.ErrCodePermissionDenied
		case reqErr.StatusCode == 404:
			code = utils.ErrCodeNotFound
		case reqErr.Op == "list libraries" || reqErr.Op == "list items" || reqErr.Op == "get web":
			code = utils.ErrCodeListingFailed
		}
		return utils.NewCLIError(code, reqErr.Error()).
			WithHTTPStatus(reqErr.StatusCode).
			Build()
	}
	return utils.NewCLIError(utils.ErrCodeUnknown, err.Error()).Build()
}
