package sensor

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	apperrors "spectralcli/internal/errors"
	"spectralcli/internal/files"
)

// Loader reads every CSV file of a directory into one Table
type Loader struct {
	discovery *files.Discovery
	logger    *slog.Logger
}

// NewLoader creates a loader. A nil logger falls back to slog.Default().
func NewLoader(discovery *files.Discovery, logger *slog.Logger) *Loader {
	if discovery == nil {
		discovery = files.NewDiscovery("")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{discovery: discovery, logger: logger}
}

// LoadDir concatenates the *.csv files of dir in listing order. Any failure
// is a LoadFailure; nothing is returned for a partial load.
func (l *Loader) LoadDir(ctx context.Context, stage, dir string) (*Table, error) {
	csvFiles, err := l.discovery.FindCSVFiles(dir)
	if err != nil {
		return nil, apperrors.NewLoadError(stage, dir, err)
	}
	if len(csvFiles) == 0 {
		return nil, apperrors.NewLoadError(stage, dir, apperrors.ErrNoCSVFiles)
	}

	var table *Table
	for _, f := range csvFiles {
		if err := ctx.Err(); err != nil {
			return nil, apperrors.NewLoadError(stage, dir, err)
		}

		part, err := ReadCSVFile(f.Path)
		if err != nil {
			return nil, apperrors.NewLoadError(stage, f.Path, err)
		}

		l.logger.DebugContext(ctx, "Read CSV file",
			slog.String("file", f.Name),
			slog.Int("rows", part.Len()),
			slog.Int("columns", len(part.Header)))

		if table == nil {
			table = part
			continue
		}
		if err := table.Append(part); err != nil {
			return nil, apperrors.NewLoadError(stage, f.Path, err)
		}
	}

	l.logger.InfoContext(ctx, "Loaded sensor table",
		slog.String("stage", stage),
		slog.String("dir", dir),
		slog.Int("files", len(csvFiles)),
		slog.Int("rows", table.Len()))

	return table, nil
}

// ReadCSVFile reads one CSV file with a header row
func ReadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV parses a CSV stream with a header row. Short rows are padded with
// NaN; long rows and non-numeric cells are errors.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty csv: missing header")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	table := NewTable(header)
	width := len(table.Header)

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		if isBlankRecord(record) {
			continue
		}
		if len(record) > width {
			return nil, fmt.Errorf("line %d: %d fields, header has %d", line, len(record), width)
		}

		row := make([]float64, width)
		for i := range row {
			if i >= len(record) {
				row[i] = math.NaN()
				continue
			}
			v, err := parseCell(record[i])
			if err != nil {
				return nil, fmt.Errorf("line %d, column %q: %w", line, table.Header[i], err)
			}
			row[i] = v
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

func parseCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

func isBlankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
