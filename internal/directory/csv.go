package directory

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// csvHeader is the fixed column order of the exported report
var csvHeader = []string{
	"Name",
	"DNSHostName",
	"OperatingSystem",
	"OSVersion",
	"Enabled",
	"LastLogon",
	"DistinguishedName",
}

// WriteCSV writes the report rows to w
func WriteCSV(w io.Writer, computers []Computer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, c := range computers {
		lastLogon := ""
		if !c.LastLogon.IsZero() {
			lastLogon = c.LastLogon.Format("2006-01-02T15:04:05Z")
		}
		row := []string{
			c.Name,
			c.DNSHostName,
			c.OperatingSystem,
			c.OSVersion,
			strconv.FormatBool(c.Enabled),
			lastLogon,
			c.DN,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteCSVFile writes the report to path, replacing any existing file
func WriteCSVFile(path string, computers []Computer) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}

	if err := WriteCSV(file, computers); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
