package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spectralcli/internal/files"
)

func setupTestEnv(t *testing.T) (*CSVWriter, string) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "images", "plotly")
	return NewCSVWriter(files.NewManager(root)), root
}

func readCSVFile(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestCSVWriter_WriteCSV(t *testing.T) {
	tests := []struct {
		name     string
		options  WriteOptions
		expected [][]string
		checkBOM bool
	}{
		{
			name: "headers and records",
			options: WriteOptions{
				Headers: []string{"channel", "wavelength_nm"},
				Records: [][]string{{"Red", "400"}, {"Red", "450"}},
			},
			expected: [][]string{{"channel", "wavelength_nm"}, {"Red", "400"}, {"Red", "450"}},
		},
		{
			name: "with BOM",
			options: WriteOptions{
				Headers:   []string{"a"},
				Records:   [][]string{{"1"}},
				BOMPrefix: true,
			},
			expected: [][]string{{"a"}, {"1"}},
			checkBOM: true,
		},
		{
			name: "special characters are quoted",
			options: WriteOptions{
				Headers: []string{"name"},
				Records: [][]string{{`Clear, "broadband"`}},
			},
			expected: [][]string{{"name"}, {`Clear, "broadband"`}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer, root := setupTestEnv(t)

			path, err := writer.WriteCSV("out.csv", tt.options)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(root, "out.csv"), path)

			if tt.checkBOM {
				data, err := os.ReadFile(path)
				require.NoError(t, err)
				assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
			}
			assert.Equal(t, tt.expected, readCSVFile(t, path))
		})
	}
}
