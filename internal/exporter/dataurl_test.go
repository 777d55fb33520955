package exporter

import (
	"context"
	"encoding/base64"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataURL(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}

	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr bool
	}{
		{
			name:  "svg percent encoded",
			input: "data:image/svg+xml,%3Csvg%20width%3D%2210%22%3E%3C%2Fsvg%3E",
			want:  []byte(`<svg width="10"></svg>`),
		},
		{
			name:  "png base64",
			input: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
			want:  png,
		},
		{
			name:    "not a data url",
			input:   "https://example.com/a.png",
			wantErr: true,
		},
		{
			name:    "missing payload",
			input:   "data:image/png;base64",
			wantErr: true,
		},
		{
			name:    "bad base64",
			input:   "data:image/png;base64,!!!",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeDataURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]string{
		"out/sensor.svg":  "svg",
		"out/sensor.PNG":  "png",
		"out/sensor.jpg":  "jpeg",
		"out/sensor.jpeg": "jpeg",
		"out/sensor.webp": "webp",
	}
	for path, want := range tests {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("out/sensor.pdf")
	assert.Error(t, err)
}

func TestChromeBackendUnreachable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sensor.svg")

	backend := NewChromeBackend("ws://127.0.0.1:1", "https://cdn.plot.ly/plotly-2.35.2.min.js", 5*time.Second, nil)
	err := backend.RenderImage(context.Background(), testFigure(t), path)

	require.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestChromeBackendRejectsUnknownFormat(t *testing.T) {
	backend := NewChromeBackend("ws://127.0.0.1:1", "", time.Second, nil)
	err := backend.RenderImage(context.Background(), testFigure(t), filepath.Join(t.TempDir(), "sensor.bmp"))
	assert.ErrorContains(t, err, "unsupported image format")
}
