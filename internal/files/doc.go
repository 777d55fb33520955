// Package files provides file system discovery and output helpers for the
// spectral response processor.
//
// Discovery enumerates the CSV files of an input directory. Manager owns the
// output directory and writes artifacts through a temp-file-and-rename so a
// failed export leaves no partial file.
//
// Example usage:
//
//	discovery := files.NewDiscovery("")
//	csvFiles, err := discovery.FindCSVFiles("data/LiCOR")
//
//	manager := files.NewManager("images/plotly")
//	path, err := manager.WriteBytes("sensor.svg", svg)
package files
