package analysis

import "errors"

// Fatal-per-file conditions. Row-level problems are never errors; they are
// skipped and counted.
var (
	ErrHeaderNotFound = errors.New("header row with required columns not found")
	ErrNoUsableData   = errors.New("no usable attendance data found in file")
	ErrNoAnalysis     = errors.New("no analysis loaded")
)
