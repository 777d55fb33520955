package exporter

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

// decodeDataURL returns the payload of a data: URL as produced by
// Plotly.toImage: base64 for raster formats, percent-encoded text for SVG.
func decodeDataURL(s string) ([]byte, error) {
	if !strings.HasPrefix(s, "data:") {
		return nil, fmt.Errorf("not a data url")
	}
	meta, payload, ok := strings.Cut(strings.TrimPrefix(s, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("malformed data url: missing payload")
	}

	if strings.HasSuffix(meta, ";base64") {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("invalid base64 payload: %w", err)
		}
		return data, nil
	}

	text, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid percent-encoded payload: %w", err)
	}
	return []byte(text), nil
}
