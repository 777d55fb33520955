// Package config provides configuration for the spectral response processor.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Command line flags (applied by cmd/spectral)
//	2. Environment variables
//	3. YAML configuration file
//	4. Default values
//
// # Environment Variables
//
// All environment variables follow the pattern SPECTRAL_<SECTION>_<FIELD>:
//
//	SPECTRAL_INPUT_REFERENCE_DIR=data/LiCOR
//	SPECTRAL_OUTPUT_IMAGE_FORMAT=png
//	SPECTRAL_EXPORT_BACKEND_URL=ws://127.0.0.1:9222
//	SPECTRAL_EXPORT_DATA_FORMATS=csv,xlsx
//	SPECTRAL_LOGGING_LEVEL=debug
//
// # Validation
//
// The loaded struct is checked with go-playground/validator; an invalid
// image format, a non-positive timeout or an unknown exporter is rejected
// before any file is read.
package config
