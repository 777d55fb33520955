package sensor

import (
	"fmt"

	"spectralcli/pkg/contracts/domain"
)

const (
	wavelengthColumn = "wavelength"
	responseColumn   = "relative_responsivity"
)

// ReferenceResponseColumns are the accepted names of the reference response,
// tried in order.
var ReferenceResponseColumns = []string{
	responseColumn + "_" + string(domain.ChannelReference),
	responseColumn,
}

// ChannelColumns returns the wavelength and response column names of a
// multi-channel sensor channel, e.g. wavelength_Red, relative_responsivity_Red.
func ChannelColumns(c domain.Channel) (wavelength, response string) {
	return wavelengthColumn + "_" + string(c), responseColumn + "_" + string(c)
}

// ReferenceCurve extracts the reference sensor curve
func ReferenceCurve(t *Table) (domain.Curve, error) {
	wlName := wavelengthColumn
	if !t.HasColumn(wlName) {
		// tolerate wavelength_LiCOR alongside relative_responsivity_LiCOR
		wlName, _ = ChannelColumns(domain.ChannelReference)
	}
	for _, name := range ReferenceResponseColumns {
		if t.HasColumn(name) {
			return extract(t, domain.ChannelReference, wlName, name)
		}
	}
	return domain.Curve{}, fmt.Errorf("reference response column not found, expected one of %v", ReferenceResponseColumns)
}

// ChannelCurves extracts the Red, Green, Blue and Clear curves in that order
func ChannelCurves(t *Table) ([]domain.Curve, error) {
	curves := make([]domain.Curve, 0, len(domain.ColorChannels))
	for _, c := range domain.ColorChannels {
		wl, resp := ChannelColumns(c)
		curve, err := extract(t, c, wl, resp)
		if err != nil {
			return nil, err
		}
		curves = append(curves, curve)
	}
	return curves, nil
}

// extract pairs two columns, dropping rows where either cell is empty
func extract(t *Table, c domain.Channel, wlName, respName string) (domain.Curve, error) {
	wl, err := t.Column(wlName)
	if err != nil {
		return domain.Curve{}, err
	}
	resp, err := t.Column(respName)
	if err != nil {
		return domain.Curve{}, err
	}

	curve := domain.Curve{
		Channel:    c,
		Wavelength: make([]float64, 0, len(wl)),
		Response:   make([]float64, 0, len(resp)),
	}
	for i := range wl {
		if isMissing(wl[i]) || isMissing(resp[i]) {
			continue
		}
		curve.Wavelength = append(curve.Wavelength, wl[i])
		curve.Response = append(curve.Response, resp[i])
	}
	return curve, nil
}
