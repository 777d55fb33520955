package exporter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"spectralcli/internal/chart"
)

// ImageBackend renders a figure to a static image file
type ImageBackend interface {
	RenderImage(ctx context.Context, fig *chart.Figure, path string) error
}

// ImageBackendFunc adapts a function to ImageBackend
type ImageBackendFunc func(ctx context.Context, fig *chart.Figure, path string) error

// RenderImage calls f
func (f ImageBackendFunc) RenderImage(ctx context.Context, fig *chart.Figure, path string) error {
	return f(ctx, fig, path)
}

var imageFormats = map[string]bool{"svg": true, "png": true, "jpeg": true, "webp": true}

// FormatFromPath returns the image format implied by the file extension
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "jpg" {
		ext = "jpeg"
	}
	if !imageFormats[ext] {
		return "", fmt.Errorf("unsupported image format %q", ext)
	}
	return ext, nil
}
