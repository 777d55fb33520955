package exporter

import (
	"strconv"
)

// formatFloat formats a float64 value for CSV output using the shortest
// representation that parses back to the same value
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
