// Package sensor loads photometric sensor calibration tables.
//
// A directory of CSV files is read into one Table by concatenating the files
// in listing order. The reference sensor table carries a wavelength column
// and relative_responsivity_LiCOR (or relative_responsivity); the
// multi-channel table carries one wavelength_<C>/relative_responsivity_<C>
// pair per channel C in Red, Green, Blue, Clear. Channels may have different
// sample counts, so empty cells are accepted and dropped per curve.
package sensor
