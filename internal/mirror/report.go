package mirror

import (
	"strconv"

	"github.com/mkellner/spmirror/internal/types"
)

// LibraryResult is the outcome of one mirrored library
type LibraryResult struct {
	Title    string   `json:"title"`
	Items    int      `json:"items"`
	Counters Counters `json:"counters"`
}

// Summary is the final report of a completed run. It exists only when the
// run finishes; an aborted run produces none.
type Summary struct {
	Libraries       []LibraryResult `json:"libraries"`
	EmptySkipped    int             `json:"emptySkipped"`
	ListingFailures int             `json:"listingFailures"`
	Totals          Counters        `json:"totals"`
}

// AsTableRenderer renders the summary as a per-library table with a totals
// row
func (s *Summary) AsTableRenderer() types.TableRenderer {
	return summaryTable{summary: s}
}

type summaryTable struct {
	summary *Summary
}

func (t summaryTable) Headers() []string {
	return []string{"LIBRARY", "ITEMS", "COPIED", "UPDATED", "UP-TO-DATE", "PATH TOO LONG"}
}

func (t summaryTable) Rows() [][]string {
	if len(t.summary.Libraries) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(t.summary.Libraries)+1)
	for _, lib := range t.summary.Libraries {
		rows = append(rows, []string{
			lib.Title,
			strconv.Itoa(lib.Items),
			strconv.Itoa(lib.Counters.Copied),
			strconv.Itoa(lib.Counters.Updated),
			strconv.Itoa(lib.Counters.SkippedUpToDate),
			strconv.Itoa(lib.Counters.SkippedPathTooLong),
		})
	}
	totals := t.summary.Totals
	rows = append(rows, []string{
		"TOTAL",
		strconv.Itoa(totals.Total()),
		strconv.Itoa(totals.Copied),
		strconv.Itoa(totals.Updated),
		strconv.Itoa(totals.SkippedUpToDate),
		strconv.Itoa(totals.SkippedPathTooLong),
	})
	return rows
}

func (t summaryTable) EmptyMessage() string {
	return "No libraries mirrored"
}
