package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ReferenceCSVFiles is a reference sensor response split over two files.
// Rows continue across files in name order.
var ReferenceCSVFiles = map[string]string{
	"licor_a.csv": "wavelength,relative_responsivity_LiCOR\n" +
		"400,0.10\n" +
		"450,0.45\n" +
		"500,0.80\n",
	"licor_b.csv": "wavelength,relative_responsivity_LiCOR\n" +
		"550,0.95\n" +
		"600,1.00\n" +
		"650,0.70\n" +
		"700,0.20\n",
}

// ChannelCSVFiles is a four-channel colour sensor response. The Clear
// channel has fewer samples; its trailing cells are empty.
var ChannelCSVFiles = map[string]string{
	"rgb.csv": "wavelength_Red,relative_responsivity_Red," +
		"wavelength_Green,relative_responsivity_Green," +
		"wavelength_Blue,relative_responsivity_Blue," +
		"wavelength_Clear,relative_responsivity_Clear\n" +
		"550,0.05,450,0.10,380,0.30,400,0.40\n" +
		"600,0.60,500,0.70,420,0.90,500,0.90\n" +
		"650,1.00,550,1.00,460,1.00,600,1.00\n" +
		"700,0.40,600,0.30,500,0.35,,\n",
}

// SensorFixture is a pair of input directories populated with sensor CSVs
type SensorFixture struct {
	Root         string
	ReferenceDir string
	ChannelDir   string
	OutputDir    string
}

// NewSensorFixture writes the reference and channel CSV files below a
// temporary directory laid out like a working copy: data/LiCOR, data/RGB
// and images/plotly for the output, which is not created.
func NewSensorFixture(t *testing.T) *SensorFixture {
	t.Helper()

	root := t.TempDir()
	f := &SensorFixture{
		Root:         root,
		ReferenceDir: filepath.Join(root, "data", "LiCOR"),
		ChannelDir:   filepath.Join(root, "data", "RGB"),
		OutputDir:    filepath.Join(root, "images", "plotly"),
	}
	WriteFiles(t, f.ReferenceDir, ReferenceCSVFiles)
	WriteFiles(t, f.ChannelDir, ChannelCSVFiles)
	return f
}

// WriteFiles creates dir and writes each name/content pair into it
func WriteFiles(t *testing.T, dir string, contents map[string]string) {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create %s: %v", dir, err)
	}
	for name, content := range contents {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}
