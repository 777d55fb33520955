package domain

// Channel identifies one spectral response curve
type Channel string

const (
	ChannelReference Channel = "LiCOR"
	ChannelRed       Channel = "Red"
	ChannelGreen     Channel = "Green"
	ChannelBlue      Channel = "Blue"
	ChannelClear     Channel = "Clear"
)

// ColorChannels lists the multi-channel sensor outputs in plotting order
var ColorChannels = []Channel{ChannelRed, ChannelGreen, ChannelBlue, ChannelClear}

// AllChannels lists the reference followed by the colour channels
var AllChannels = append([]Channel{ChannelReference}, ColorChannels...)

// IsReference reports whether c is the reference sensor curve
func (c Channel) IsReference() bool {
	return c == ChannelReference
}

// Curve is a measured spectral response: paired wavelength (nm) and
// relative responsivity samples, in file order.
type Curve struct {
	Channel    Channel   `json:"channel"`
	Wavelength []float64 `json:"wavelength"`
	Response   []float64 `json:"response"`
}

// Len returns the number of samples
func (c Curve) Len() int {
	return len(c.Wavelength)
}

// ResampledCurve is a curve interpolated onto a uniform grid.
//
// Grid holds SampleCount points Min + i*Step with Step = (Max-Min)/SampleCount,
// so the last point stops short of Max.
type ResampledCurve struct {
	Channel     Channel   `json:"channel"`
	Grid        []float64 `json:"grid"`
	Values      []float64 `json:"values"`
	Min         float64   `json:"min"`
	Max         float64   `json:"max"`
	Step        float64   `json:"step"`
	SampleCount int       `json:"sample_count"`
}

// Len returns the number of grid points
func (r ResampledCurve) Len() int {
	return len(r.Grid)
}
