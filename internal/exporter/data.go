package exporter

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"spectralcli/internal/files"
	"spectralcli/internal/spectrum"
	"spectralcli/pkg/contracts/domain"
)

// DataFormat names a resampled-data export format
type DataFormat string

const (
	DataFormatCSV  DataFormat = "csv"
	DataFormatXLSX DataFormat = "xlsx"
)

// resampledHeaders is the long-format layout of the CSV export
var resampledHeaders = []string{"channel", "wavelength_nm", "value", "normalized"}

var summaryHeaders = []interface{}{"channel", "min_nm", "max_nm", "step_nm", "sample_count"}

// ResampledRecords flattens curves into CSV records, one per grid point
func ResampledRecords(curves []domain.ResampledCurve) ([][]string, error) {
	var records [][]string
	for _, c := range curves {
		norm, err := spectrum.Normalize(c.Values)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Channel, err)
		}
		for i := range c.Grid {
			records = append(records, []string{
				string(c.Channel),
				formatFloat(c.Grid[i]),
				formatFloat(c.Values[i]),
				formatFloat(norm[i]),
			})
		}
	}
	return records, nil
}

// WriteResampledCSV writes the curves to name in long format
func WriteResampledCSV(manager *files.Manager, name string, curves []domain.ResampledCurve) (string, error) {
	records, err := ResampledRecords(curves)
	if err != nil {
		return "", err
	}
	return NewCSVWriter(manager).WriteCSV(name, WriteOptions{
		Headers:   resampledHeaders,
		Records:   records,
		BOMPrefix: true,
	})
}

// WriteResampledXLSX writes a summary sheet plus one sheet per curve
func WriteResampledXLSX(manager *files.Manager, name string, curves []domain.ResampledCurve) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return "", err
	}
	if err := f.SetSheetRow(summary, "A1", &summaryHeaders); err != nil {
		return "", err
	}

	for i, c := range curves {
		norm, err := spectrum.Normalize(c.Values)
		if err != nil {
			return "", fmt.Errorf("%s: %w", c.Channel, err)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		row := []interface{}{string(c.Channel), c.Min, c.Max, c.Step, c.SampleCount}
		if err := f.SetSheetRow(summary, cell, &row); err != nil {
			return "", err
		}

		sheet := string(c.Channel)
		if _, err := f.NewSheet(sheet); err != nil {
			return "", fmt.Errorf("failed to add sheet %s: %w", sheet, err)
		}
		header := []interface{}{"wavelength_nm", "value", "normalized"}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return "", err
		}
		for j := range c.Grid {
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return "", err
			}
			point := []interface{}{c.Grid[j], c.Values[j], norm[j]}
			if err := f.SetSheetRow(sheet, cell, &point); err != nil {
				return "", err
			}
		}
	}

	return manager.WriteFile(name, func(w io.Writer) error {
		return f.Write(w)
	})
}
