package mirror

import "testing"

func TestCounters_Add(t *testing.T) {
	total := Counters{Copied: 1, SkippedUpToDate: 2}
	total.Add(Counters{Copied: 2, Updated: 1, SkippedPathTooLong: 3})

	want := Counters{Copied: 3, Updated: 1, SkippedUpToDate: 2, SkippedPathTooLong: 3}
	if total != want {
		t.Errorf("Add() = %+v, want %+v", total, want)
	}
}

func TestCounters_Total(t *testing.T) {
	c := Counters{Copied: 1, Updated: 2, SkippedUpToDate: 3, SkippedPathTooLong: 4}
	if got := c.Total(); got != 10 {
		t.Errorf("Total() = %d, want 10", got)
	}
}

func TestSummary_TableIncludesTotalsRow(t *testing.T) {
	summary := &Summary{
		Libraries: []LibraryResult{
			{Title: "Documents", Items: 3, Counters: Counters{Copied: 2, SkippedUpToDate: 1}},
		},
		Totals: Counters{Copied: 2, SkippedUpToDate: 1},
	}

	rows := summary.AsTableRenderer().Rows()
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want library row plus totals", len(rows))
	}
	last := rows[len(rows)-1]
	if last[0] != "TOTAL" {
		t.Errorf("last row = %v, want totals row", last)
	}
}

func TestSummary_TableEmpty(t *testing.T) {
	summary := &Summary{}
	if rows := summary.AsTableRenderer().Rows(); len(rows) != 0 {
		t.Errorf("rows = %v, want none for an empty summary", rows)
	}
}
