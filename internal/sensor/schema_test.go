package sensor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spectralcli/pkg/contracts/domain"
)

const channelCSV = `wavelength_Red,relative_responsivity_Red,wavelength_Green,relative_responsivity_Green,wavelength_Blue,relative_responsivity_Blue,wavelength_Clear,relative_responsivity_Clear
400,0.01,400,0.05,400,0.40,400,0.30
500,0.05,500,0.80,500,0.60,500,0.70
600,0.90,600,0.20,,,600,0.90
`

func TestReferenceCurve(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"LiCOR suffix", "wavelength,relative_responsivity_LiCOR\n400,0.1\n500,0.5\n"},
		{"plain response column", "wavelength,relative_responsivity\n400,0.1\n500,0.5\n"},
		{"suffixed wavelength", "wavelength_LiCOR,relative_responsivity_LiCOR\n400,0.1\n500,0.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := ReadCSV(strings.NewReader(tt.input))
			require.NoError(t, err)

			curve, err := ReferenceCurve(tbl)
			require.NoError(t, err)
			assert.Equal(t, domain.ChannelReference, curve.Channel)
			assert.Equal(t, []float64{400, 500}, curve.Wavelength)
			assert.Equal(t, []float64{0.1, 0.5}, curve.Response)
		})
	}
}

func TestReferenceCurveMissingColumn(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("wavelength,counts\n400,1\n"))
	require.NoError(t, err)

	_, err = ReferenceCurve(tbl)
	assert.Error(t, err)
}

func TestChannelCurves(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(channelCSV))
	require.NoError(t, err)

	curves, err := ChannelCurves(tbl)
	require.NoError(t, err)
	require.Len(t, curves, 4)

	for i, c := range domain.ColorChannels {
		assert.Equal(t, c, curves[i].Channel)
	}
	assert.Equal(t, []float64{0.01, 0.05, 0.90}, curves[0].Response)
	assert.Equal(t, 2, curves[2].Len(), "empty blue cells are dropped")
	assert.Equal(t, []float64{400, 500}, curves[2].Wavelength)
}

func TestChannelCurvesMissingChannel(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("wavelength_Red,relative_responsivity_Red\n400,0.1\n"))
	require.NoError(t, err)

	_, err = ChannelCurves(tbl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wavelength_Green")
}

func TestChannelColumns(t *testing.T) {
	wl, resp := ChannelColumns(domain.ChannelClear)
	assert.Equal(t, "wavelength_Clear", wl)
	assert.Equal(t, "relative_responsivity_Clear", resp)
}
