package chart

import (
	"fmt"

	"spectralcli/internal/spectrum"
	"spectralcli/pkg/contracts/domain"
)

// Style configures how curves become traces
type Style struct {
	Title string
	// ReferenceScale multiplies the raw reference response, ChannelScale the
	// raw colour channel responses.
	ReferenceScale float64
	ChannelScale   float64
	Width          int
	Height         int
}

// DefaultStyle plots the reference fraction as percent and the colour
// channels unscaled
func DefaultStyle() Style {
	return Style{
		Title:          "Spectral response",
		ReferenceScale: 100,
		ChannelScale:   1,
	}
}

var channelColors = map[domain.Channel]string{
	domain.ChannelReference: "black",
	domain.ChannelRed:       "red",
	domain.ChannelGreen:     "green",
	domain.ChannelBlue:      "blue",
	domain.ChannelClear:     "grey",
}

const (
	rawWidth        = 3
	normalizedWidth = 2
)

// Color returns the fixed trace colour of a channel
func Color(c domain.Channel) string {
	if color, ok := channelColors[c]; ok {
		return color
	}
	return "purple"
}

// Build lays out two traces per curve, raw then normalized, in curve order
func Build(curves []domain.ResampledCurve, style Style) (*Figure, error) {
	if len(curves) == 0 {
		return nil, fmt.Errorf("no curves to plot")
	}

	fig := &Figure{
		Layout: Layout{
			Title:    Text{Text: style.Title},
			XAxis:    Axis{Title: Text{Text: XAxisTitle}},
			YAxis:    Axis{Title: Text{Text: YAxisTitle}},
			Template: "plotly_white",
			Width:    style.Width,
			Height:   style.Height,
		},
	}

	for _, c := range curves {
		scale := style.ChannelScale
		if c.Channel.IsReference() {
			scale = style.ReferenceScale
		}

		normalized, err := spectrum.Normalize(c.Values)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Channel, err)
		}

		color := Color(c.Channel)
		fig.Data = append(fig.Data,
			Series{
				Type: "scatter",
				Mode: "lines",
				Name: RawName(c.Channel),
				X:    c.Grid,
				Y:    spectrum.Scale(c.Values, scale),
				Line: Line{Color: color, Dash: DashDot, Width: rawWidth},
			},
			Series{
				Type: "scatter",
				Mode: "lines",
				Name: NormalizedName(c.Channel),
				X:    c.Grid,
				Y:    normalized,
				Line: Line{Color: color, Dash: DashSolid, Width: normalizedWidth},
			},
		)
	}

	return fig, nil
}

// RawName is the legend entry of a channel's raw trace
func RawName(c domain.Channel) string {
	return string(c) + " raw"
}

// NormalizedName is the legend entry of a channel's normalized trace
func NormalizedName(c domain.Channel) string {
	return string(c) + " normalized"
}
