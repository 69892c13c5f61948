package mirror

import (
	"context"

	"github.com/mkellner/spmirror/internal/logging"
	"github.com/mkellner/spmirror/internal/sharepoint"
)

// Source is the remote side of a mirror run, satisfied by
// *sharepoint.Client
type Source interface {
	Fetcher
	WebPath(ctx context.Context) (string, error)
	ListLibraries(ctx context.Context) ([]sharepoint.Library, error)
	ListItems(ctx context.Context, library sharepoint.Library, progress func(retrieved int)) ([]sharepoint.Item, error)
}

// Options configures a mirror run
type Options struct {
	// DownloadRoot is the local directory the site is mirrored under
	DownloadRoot string

	// Libraries restricts the run to the named library titles; empty means
	// every visible document library
	Libraries []string
}

// Runner orchestrates a whole-site mirror: enumerate libraries, list each
// one, materialize folders, then hand the files to the decision engine.
// Libraries are processed one at a time; there is no concurrency and no
// mid-library resume — re-running from scratch is the recovery path, which
// the engine's existence/timestamp check keeps cheap.
type Runner struct {
	source Source
	engine *Engine
	logger logging.Logger
	opts   Options
}

// NewRunner creates a runner over a remote source
func NewRunner(source Source, opts Options, logger logging.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return &Runner{
		source: source,
		engine: NewEngine(source, logger),
		logger: logger,
		opts:   opts,
	}
}

// Run mirrors the site. Listing failures abandon the affected library and
// the run continues; transfer failures other than URL-too-long abort the
// run with counters as accumulated so far and no summary.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	webPath, err := r.source.WebPath(ctx)
	if err != nil {
		return nil, err
	}

	libraries, err := r.source.ListLibraries(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, library := range libraries {
		if !r.selected(library) {
			continue
		}
		if library.ItemCount == 0 {
			r.logger.Debug("Skipping empty library", logging.F("library", library.Title))
			summary.EmptySkipped++
			continue
		}

		r.logger.Info("Mirroring library",
			logging.F("library", library.Title),
			logging.F("itemCount", library.ItemCount),
		)

		items, err := r.source.ListItems(ctx, library, func(retrieved int) {
			r.logger.Debug("Listing progress",
				logging.F("library", library.Title),
				logging.F("retrieved", retrieved),
			)
		})
		if err != nil {
			// Listing and copying have different fatality policies: a
			// library that cannot be listed is abandoned, the run goes on.
			r.logger.Error("Library listing failed, skipping library",
				logging.F("library", library.Title),
				logging.F("error", err.Error()),
			)
			summary.ListingFailures++
			continue
		}

		if err := MaterializeFolders(r.opts.DownloadRoot, webPath, items); err != nil {
			return nil, err
		}

		counters, err := r.engine.MirrorFiles(ctx, items, r.opts.DownloadRoot, webPath)
		if err != nil {
			return nil, err
		}

		summary.Libraries = append(summary.Libraries, LibraryResult{
			Title:    library.Title,
			Items:    len(items),
			Counters: counters,
		})
		summary.Totals.Add(counters)
	}

	return summary, nil
}

func (r *Runner) selected(library sharepoint.Library) bool {
	if len(r.opts.Libraries) == 0 {
		return true
	}
	for _, title := range r.opts.Libraries {
		if title == library.Title {
			return true
		}
	}
	return false
}
