package model

import "fmt"

// DataError indicates training data that cannot produce a model: an empty
// or malformed dataset, or one with fewer than two distinct labels. It is
// fatal to a training run and is never downgraded.
type DataError struct {
	Reason string
}

func (e *DataError) Error() string {
	return "data: " + e.Reason
}

// Dataf builds a DataError with a formatted reason.
func Dataf(format string, args ...any) *DataError {
	return &DataError{Reason: fmt.Sprintf(format, args...)}
}

// ModelLoadError indicates a missing, corrupt, or mismatched model artifact
// at load time. It is non-fatal to the host process: the inference service
// reports it once and falls back to Disabled mode.
type ModelLoadError struct {
	Path string
	Err  error
}

func (e *ModelLoadError) Error() string {
	return fmt.Sprintf("model load %s: %v", e.Path, e.Err)
}

func (e *ModelLoadError) Unwrap() error {
	return e.Err
}
