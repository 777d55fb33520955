package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a pipeline failure
type Kind string

const (
	// KindLoad is a LoadFailure: missing directory, no CSV files, unreadable
	// or malformed input. The run stops.
	KindLoad Kind = "load"
	// KindExport is an ExportFailure: the static image backend was
	// unreachable or the render call failed. The run continues.
	KindExport Kind = "export"
	KindResample Kind = "resample"
	KindRender   Kind = "render"
	KindConfig   Kind = "config"
	// KindOutput is a failure to create or write an output artifact
	KindOutput Kind = "output"
)

// ErrNoCSVFiles is returned when a directory holds no *.csv file
var ErrNoCSVFiles = stderrors.New("no csv files found")

// PipelineError represents a stage-specific failure
type PipelineError struct {
	Kind    Kind
	Stage   string
	Path    string
	Message string
	Cause   error
}

// Error implements the error interface
func (e *PipelineError) Error() string {
	if e == nil {
		return "unknown pipeline error"
	}
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Path)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Stage != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Kind, e.Stage, msg)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, msg)
}

// Unwrap returns the underlying error
func (e *PipelineError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewLoadError creates a LoadFailure for path
func NewLoadError(stage, path string, cause error) *PipelineError {
	return &PipelineError{
		Kind:    KindLoad,
		Stage:   stage,
		Path:    path,
		Message: "file not found or unreadable",
		Cause:   cause,
	}
}

// NewExportError creates an ExportFailure for the image at path
func NewExportError(path string, cause error) *PipelineError {
	return &PipelineError{
		Kind:    KindExport,
		Stage:   "export_image",
		Path:    path,
		Message: "static image export failed",
		Cause:   cause,
	}
}

// Wrap attaches kind and stage to err. An existing PipelineError is returned
// as is.
func Wrap(kind Kind, stage string, err error) error {
	if err == nil {
		return nil
	}
	var pErr *PipelineError
	if stderrors.As(err, &pErr) {
		return err
	}
	return &PipelineError{
		Kind:    kind,
		Stage:   stage,
		Message: fmt.Sprintf("%s failed", stage),
		Cause:   err,
	}
}

// KindOf returns the kind of the first PipelineError in err's chain, or ""
func KindOf(err error) Kind {
	var pErr *PipelineError
	if stderrors.As(err, &pErr) {
		return pErr.Kind
	}
	return ""
}

// IsLoadFailure reports whether err is a LoadFailure
func IsLoadFailure(err error) bool {
	return KindOf(err) == KindLoad
}

// IsExportFailure reports whether err is an ExportFailure
func IsExportFailure(err error) bool {
	return KindOf(err) == KindExport
}
