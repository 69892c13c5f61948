package cli

import (
	"time"

	"github.com/mkellner/spmirror/internal/directory"
	"github.com/mkellner/spmirror/internal/logging"
	"github.com/mkellner/spmirror/internal/utils"
	"github.com/spf13/cobra"
)

var computersFlags struct {
	output string
}

var computersCmd = &cobra.Command{
	Use:   "computers",
	Short: "Export a report of directory-service computer objects",
	Long: `Computers queries the configured directory server for computer
objects under the search base, projects the inventory fields, and renders
the result as a table or JSON. With an output path the report is
additionally written as CSV.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runComputers()
	},
}

func init() {
	computersCmd.Flags().StringVarP(&computersFlags.output, "output-file", "o", "", "CSV report path (overrides config)")

	rootCmd.AddCommand(computersCmd)
}

func runComputers() {
	if computersFlags.output != "" {
		cfg.Directory.Output = computersFlags.output
	}

	if err := cfg.ValidateDirectory(); err != nil {
		exitWithError("computers", utils.NewCLIError(utils.ErrCodeConfigInvalid, err.Error()).Build())
	}

	client, err := directory.Dial(directory.Options{
		Address:      cfg.Directory.Address,
		UseTLS:       cfg.Directory.UseTLS,
		BindDN:       cfg.Directory.BindDN,
		BindPassword: cfg.Directory.BindPassword,
	}, logger)
	if err != nil {
		exitWithError("computers", utils.NewCLIError(utils.ErrCodeDirectoryError, err.Error()).Build())
	}
	defer client.Close()

	computers, err := client.ListComputers(cfg.Directory.BaseDN)
	if err != nil {
		exitWithError("computers", utils.NewCLIError(utils.ErrCodeDirectoryError, err.Error()).Build())
	}

	report := &directory.Report{
		GeneratedAt: time.Now().UTC(),
		BaseDN:      cfg.Directory.BaseDN,
		Computers:   computers,
	}

	if cfg.Directory.Output != "" {
		if err := directory.WriteCSVFile(cfg.Directory.Output, computers); err != nil {
			exitWithError("computers", utils.NewCLIError(utils.ErrCodeDirectoryError, err.Error()).Build())
		}
		logger.Info("Wrote computer report",
			logging.F("path", cfg.Directory.Output),
			logging.F("computers", len(computers)),
		)
	}

	writer := NewOutputWriter(globalFlags.OutputFormat, globalFlags.Quiet)
	writer.WriteSuccess("computers", report)
}
