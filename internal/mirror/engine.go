package mirror

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mkellner/spmirror/internal/logging"
	"github.com/mkellner/spmirror/internal/sharepoint"
)

// Fetcher transfers one remote file into place. Implementations report a
// server-side URL length rejection as an error wrapping
// sharepoint.ErrPathTooLong; the engine treats everything else as fatal.
type Fetcher interface {
	Download(ctx context.Context, serverRelativePath, destDir, destName string) error
}

// Engine decides, file by file, whether to download, overwrite, or skip.
// The comparison is modification time only — no size or content check. That
// keeps the decision free of remote content reads; drifting timestamps can
// produce stale or redundant copies and that trade-off is intentional.
type Engine struct {
	fetcher Fetcher
	logger  logging.Logger
}

// NewEngine creates a decision engine
func NewEngine(fetcher Fetcher, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return &Engine{fetcher: fetcher, logger: logger}
}

// MirrorFiles processes every file item of a listed library. It returns the
// counters accumulated so far in all cases; when err is non-nil the run must
// abort and the failing item is in no counter. URL-too-long rejections are
// counted as skips and do not stop the pass.
func (e *Engine) MirrorFiles(ctx context.Context, items []sharepoint.Item, localRoot, webPath string) (Counters, error) {
	var counters Counters

	for _, item := range items {
		if !item.IsFile() {
			continue
		}

		destDir, destName := FileTarget(localRoot, webPath, item)
		target := filepath.Join(destDir, destName)

		info, err := os.Stat(target)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			fatal, err := e.fetch(ctx, item, destDir, destName, &counters, &counters.Copied, "Copied new file")
			if fatal {
				return counters, err
			}

		case err != nil:
			return counters, err

		case item.Modified.After(info.ModTime()):
			fatal, err := e.fetch(ctx, item, destDir, destName, &counters, &counters.Updated, "Overwrote outdated file")
			if fatal {
				return counters, err
			}

		default:
			counters.SkippedUpToDate++
			e.logger.Debug("Skipped up-to-date file", logging.F("path", item.ServerRelativePath))
		}
	}

	return counters, nil
}

// fetch runs one transfer and classifies its outcome. A successful transfer
// bumps outcome; a URL-too-long rejection bumps SkippedPathTooLong and the
// pass continues; anything else is fatal.
func (e *Engine) fetch(ctx context.Context, item sharepoint.Item, destDir, destName string, counters *Counters, outcome *int, successMsg string) (fatal bool, err error) {
	downloadErr := e.fetcher.Download(ctx, item.ServerRelativePath, destDir, destName)
	if downloadErr == nil {
		*outcome++
		e.logger.Info(successMsg, logging.F("path", item.ServerRelativePath))
		return false, nil
	}

	if errors.Is(downloadErr, sharepoint.ErrPathTooLong) {
		counters.SkippedPathTooLong++
		e.logger.Warn("Skipped file: target URL over server length limit",
			logging.F("path", item.ServerRelativePath),
		)
		return false, nil
	}

	e.logger.Error("File transfer failed",
		logging.F("path", item.ServerRelativePath),
		logging.F("error", downloadErr.Error()),
	)
	return true, downloadErr
}
