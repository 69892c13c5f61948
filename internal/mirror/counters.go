package mirror

// Counters tallies the mutually exclusive per-file outcomes of a mirror
// pass. Exactly one field increments for every file item that is processed
// without a fatal error.
type Counters struct {
	// Copied counts files that had no local counterpart
	Copied int `json:"copied"`

	// Updated counts files overwritten because the remote copy was newer
	Updated int `json:"updated"`

	// SkippedUpToDate counts files whose local copy was not older than the
	// remote one; no transfer is attempted for these
	SkippedUpToDate int `json:"skippedUpToDate"`

	// SkippedPathTooLong counts transfers the server rejected because the
	// request URL exceeds its configured length limit
	SkippedPathTooLong int `json:"skippedPathTooLong"`
}

// Add merges other into c
func (c *Counters) Add(other Counters) {
	c.Copied += other.Copied
	c.Updated += other.Updated
	c.SkippedUpToDate += other.SkippedUpToDate
	c.SkippedPathTooLong += other.SkippedPathTooLong
}

// Total returns the number of file items accounted for
func (c Counters) Total() int {
	return c.Copied + c.Updated + c.SkippedUpToDate + c.SkippedPathTooLong
}
