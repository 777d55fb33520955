package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"

	"spectralcli/internal/files"
)

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	manager *files.Manager
}

// NewCSVWriter creates a new CSV writer writing below manager's root
func NewCSVWriter(manager *files.Manager) *CSVWriter {
	return &CSVWriter{manager: manager}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to name and returns the written path
func (w *CSVWriter) WriteCSV(name string, options WriteOptions) (string, error) {
	slog.Debug("Writing CSV file",
		slog.String("file", name),
		slog.Int("record_count", len(options.Records)))

	return w.manager.WriteFile(name, func(out io.Writer) error {
		// Write BOM if requested (helps Excel recognize UTF-8)
		if options.BOMPrefix {
			if _, err := out.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
				return fmt.Errorf("failed to write BOM: %w", err)
			}
		}

		writer := csv.NewWriter(out)

		if len(options.Headers) > 0 {
			if err := writer.Write(options.Headers); err != nil {
				return fmt.Errorf("failed to write headers: %w", err)
			}
		}

		for i, record := range options.Records {
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("failed to write record %d: %w", i, err)
			}
		}

		writer.Flush()
		return writer.Error()
	})
}
