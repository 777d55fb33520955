package sensor

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "spectralcli/internal/errors"
	"spectralcli/internal/files"
)

func writeCSV(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantRows int
		wantErr  string
		check    func(*testing.T, *Table)
	}{
		{
			name:     "reference table",
			input:    "wavelength,relative_responsivity_LiCOR\n400,0.1\n500,0.5\n600,0.3\n",
			wantRows: 3,
			check: func(t *testing.T, tbl *Table) {
				wl, err := tbl.Column("wavelength")
				require.NoError(t, err)
				assert.Equal(t, []float64{400, 500, 600}, wl)
			},
		},
		{
			name:     "bom and padded header",
			input:    "\ufeff wavelength , relative_responsivity\n400,0.1\n",
			wantRows: 1,
			check: func(t *testing.T, tbl *Table) {
				assert.Equal(t, []string{"wavelength", "relative_responsivity"}, tbl.Header)
			},
		},
		{
			name:     "short rows padded with NaN",
			input:    "a,b,c\n1,2,3\n4,5\n6,,\n",
			wantRows: 3,
			check: func(t *testing.T, tbl *Table) {
				c, err := tbl.Column("c")
				require.NoError(t, err)
				assert.Equal(t, 3.0, c[0])
				assert.True(t, math.IsNaN(c[1]))
				assert.True(t, math.IsNaN(c[2]))
			},
		},
		{
			name:     "blank lines skipped",
			input:    "a,b\n1,2\n,\n3,4\n",
			wantRows: 2,
		},
		{
			name:    "non numeric cell",
			input:   "a,b\n1,abc\n",
			wantErr: `column "b"`,
		},
		{
			name:    "too many fields",
			input:   "a,b\n1,2,3\n",
			wantErr: "3 fields",
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: "missing header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := ReadCSV(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, tbl.Len())
			if tt.check != nil {
				tt.check(t, tbl)
			}
		})
	}
}

func TestLoadDirConcatenatesFiles(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "licor_a.csv", "wavelength,relative_responsivity_LiCOR\n400,0.1\n450,0.3\n")
	writeCSV(t, dir, "licor_b.csv", "wavelength,relative_responsivity_LiCOR\n500,0.5\n550,0.4\n600,0.3\n")
	writeCSV(t, dir, "notes.txt", "ignored")

	loader := NewLoader(files.NewDiscovery(""), nil)
	tbl, err := loader.LoadDir(context.Background(), "load_reference", dir)
	require.NoError(t, err)

	assert.Equal(t, 5, tbl.Len(), "row count is the sum over files")
	wl, err := tbl.Column("wavelength")
	require.NoError(t, err)
	assert.Equal(t, []float64{400, 450, 500, 550, 600}, wl, "file and row order preserved")
}

func TestLoadDirFailures(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		loader := NewLoader(nil, nil)
		_, err := loader.LoadDir(context.Background(), "load_reference", filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.True(t, apperrors.IsLoadFailure(err))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("no csv files", func(t *testing.T) {
		dir := t.TempDir()
		writeCSV(t, dir, "readme.md", "#")
		_, err := NewLoader(nil, nil).LoadDir(context.Background(), "load_channels", dir)
		require.Error(t, err)
		assert.True(t, apperrors.IsLoadFailure(err))
		assert.ErrorIs(t, err, apperrors.ErrNoCSVFiles)
	})

	t.Run("parse error", func(t *testing.T) {
		dir := t.TempDir()
		writeCSV(t, dir, "bad.csv", "wavelength,relative_responsivity\n400,x\n")
		_, err := NewLoader(nil, nil).LoadDir(context.Background(), "load_reference", dir)
		require.Error(t, err)
		assert.True(t, apperrors.IsLoadFailure(err))
		assert.Contains(t, err.Error(), "bad.csv")
	})

	t.Run("header mismatch across files", func(t *testing.T) {
		dir := t.TempDir()
		writeCSV(t, dir, "a.csv", "wavelength,relative_responsivity\n400,0.1\n")
		writeCSV(t, dir, "b.csv", "wavelength,other\n500,0.2\n")
		_, err := NewLoader(nil, nil).LoadDir(context.Background(), "load_reference", dir)
		require.Error(t, err)
		assert.True(t, apperrors.IsLoadFailure(err))
		assert.Contains(t, err.Error(), "header mismatch")
	})

	t.Run("cancelled context", func(t *testing.T) {
		dir := t.TempDir()
		writeCSV(t, dir, "a.csv", "wavelength,relative_responsivity\n400,0.1\n")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewLoader(nil, nil).LoadDir(ctx, "load_reference", dir)
		assert.ErrorIs(t, err, context.Canceled)
		assert.True(t, apperrors.IsLoadFailure(err))
	})
}
