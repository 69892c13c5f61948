package directory

import (
	"strconv"
	"time"

	"github.com/mkellner/spmirror/internal/types"
)

// Computer is one computer object from the directory
type Computer struct {
	Name            string    `json:"name"`
	DNSHostName     string    `json:"dnsHostName"`
	OperatingSystem string    `json:"operatingSystem"`
	OSVersion       string    `json:"osVersion"`
	Enabled         bool      `json:"enabled"`
	LastLogon       time.Time `json:"lastLogon,omitempty"`
	DN              string    `json:"dn"`
}

// Report is the exported computer inventory
type Report struct {
	GeneratedAt time.Time  `json:"generatedAt"`
	BaseDN      string     `json:"baseDn"`
	Computers   []Computer `json:"computers"`
}

// AsTableRenderer renders the report as a console table
func (r *Report) AsTableRenderer() types.TableRenderer {
	return reportTable{report: r}
}

type reportTable struct {
	report *Report
}

func (t reportTable) Headers() []string {
	return []string{"NAME", "DNS HOST NAME", "OPERATING SYSTEM", "ENABLED", "LAST LOGON"}
}

func (t reportTable) Rows() [][]string {
	rows := make([][]string, 0, len(t.report.Computers))
	for _, c := range t.report.Computers {
		lastLogon := ""
		if !c.LastLogon.IsZero() {
			lastLogon = c.LastLogon.Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			c.Name,
			c.DNSHostName,
			c.OperatingSystem,
			strconv.FormatBool(c.Enabled),
			lastLogon,
		})
	}
	return rows
}

func (t reportTable) EmptyMessage() string {
	return "No computer objects found"
}
