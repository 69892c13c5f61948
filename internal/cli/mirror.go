package cli

import (
	"fmt"
	"net/url"

	"github.com/mkellner/spmirror/internal/auth"
	"github.com/mkellner/spmirror/internal/logging"
	"github.com/mkellner/spmirror/internal/mirror"
	"github.com/mkellner/spmirror/internal/sharepoint"
	"github.com/mkellner/spmirror/internal/utils"
	"github.com/spf13/cobra"
)

var mirrorFlags struct {
	downloadRoot string
	libraries    []string
}

var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Mirror the site's document libraries to local disk",
	Long: `Mirror enumerates the site's visible document libraries and copies
their files under the download root, preserving the folder hierarchy.

The copy is incremental: a file is fetched when it has no local counterpart
or when the remote copy is strictly newer than the local one; otherwise it
is skipped. Files whose server URL exceeds the platform's length limit are
counted and skipped. Any other transfer failure aborts the run; re-running
resumes naturally because up-to-date files are skipped.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runMirror(cmd)
	},
}

func init() {
	mirrorCmd.Flags().StringVar(&mirrorFlags.downloadRoot, "download-root", "", "Local mirror root (overrides config)")
	mirrorCmd.Flags().StringSliceVar(&mirrorFlags.libraries, "library", nil, "Mirror only the named libraries (repeatable)")

	rootCmd.AddCommand(mirrorCmd)
}

func runMirror(cmd *cobra.Command) {
	if mirrorFlags.downloadRoot != "" {
		cfg.Mirror.DownloadRoot = mirrorFlags.downloadRoot
	}
	if len(mirrorFlags.libraries) > 0 {
		cfg.Mirror.Libraries = mirrorFlags.libraries
	}

	if err := cfg.ValidateMirror(); err != nil {
		exitWithError("mirror", utils.NewCLIError(utils.ErrCodeConfigInvalid, err.Error()).Build())
	}

	siteURL, err := url.Parse(cfg.Site.URL)
	if err != nil || siteURL.Host == "" {
		exitWithError("mirror", utils.NewCLIError(utils.ErrCodeConfigInvalid,
			fmt.Sprintf("invalid site URL %q", cfg.Site.URL)).Build())
	}

	secret, err := auth.ClientSecret(cfg.Site.ClientID)
	if err != nil {
		exitWithError("mirror", utils.NewCLIError(utils.ErrCodeAuthRequired, err.Error()).Build())
	}

	ctx := cmd.Context()
	provider := auth.NewProvider(ctx, auth.Credentials{
		TenantID: cfg.Site.TenantID,
		ClientID: cfg.Site.ClientID,
		Resource: siteURL.Scheme + "://" + siteURL.Host,
	}, secret)

	client := sharepoint.NewClient(cfg.Site.URL, provider, logger,
		sharepoint.WithPageSize(cfg.Mirror.PageSize))

	runner := mirror.NewRunner(client, mirror.Options{
		DownloadRoot: cfg.Mirror.DownloadRoot,
		Libraries:    cfg.Mirror.Libraries,
	}, logger)

	logger.Info("Starting mirror run",
		logging.F("site", cfg.Site.URL),
		logging.F("downloadRoot", cfg.Mirror.DownloadRoot),
	)

	summary, err := runner.Run(ctx)
	if err != nil {
		// Fatal failure: no summary is printed for an aborted run
		exitWithError("mirror", classifyRemoteError(err))
	}

	logger.Info("Mirror run complete",
		logging.F("libraries", len(summary.Libraries)),
		logging.F("copied", summary.Totals.Copied),
		logging.F("updated", summary.Totals.Updated),
		logging.F("upToDate", summary.Totals.SkippedUpToDate),
		logging.F("pathTooLong", summary.Totals.SkippedPathTooLong),
	)

	writer := NewOutputWriter(globalFlags.OutputFormat, globalFlags.Quiet)
	if summary.ListingFailures > 0 {
		writer.AddWarning(utils.ErrCodeListingFailed,
			fmt.Sprintf("%d library listing(s) failed and were skipped", summary.ListingFailures),
			"warning")
	}
	writer.WriteSuccess("mirror", summary)
}
