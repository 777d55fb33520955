package exporter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"spectralcli/internal/files"
	"spectralcli/pkg/contracts/domain"
)

func TestResampledRecords(t *testing.T) {
	records, err := ResampledRecords(testCurves())
	require.NoError(t, err)
	require.Len(t, records, 6)

	assert.Equal(t, []string{"LiCOR", "400", "0.1", "20"}, records[0])
	assert.Equal(t, []string{"LiCOR", "500", "0.5", "100"}, records[2])
	assert.Equal(t, []string{"Red", "550", "4", "100"}, records[5])
}

func TestResampledRecordsRejectsZeroCurve(t *testing.T) {
	_, err := ResampledRecords([]domain.ResampledCurve{{
		Channel: domain.ChannelBlue,
		Grid:    []float64{1, 2},
		Values:  []float64{0, 0},
	}})
	assert.Error(t, err)
}

func TestWriteResampledCSV(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteResampledCSV(files.NewManager(dir), "sensor_resampled.csv", testCurves())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sensor_resampled.csv"), path)

	rows := readCSVFile(t, path)
	require.Len(t, rows, 7)
	assert.Equal(t, resampledHeaders, rows[0])
}

func TestWriteResampledXLSX(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteResampledXLSX(files.NewManager(dir), "sensor_resampled.xlsx", testCurves())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "LiCOR", "Red"}, f.GetSheetList())

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, summary, 3)
	assert.Equal(t, "channel", summary[0][0])
	assert.Equal(t, "LiCOR", summary[1][0])
	assert.Equal(t, "Red", summary[2][0])

	licor, err := f.GetRows("LiCOR")
	require.NoError(t, err)
	assert.Len(t, licor, 5)
	assert.Equal(t, []string{"wavelength_nm", "value", "normalized"}, licor[0])
}
