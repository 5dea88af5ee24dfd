package metrics

import "errors"

// ErrInvalidInput indicates ast or walker was missing or malformed.
var ErrInvalidInput = errors.New("metrics: invalid input")

// ErrZeroCyclomatic indicates the maintainability index was computed with
// an average cyclomatic complexity of zero.
var ErrZeroCyclomatic = errors.New("metrics: zero average cyclomatic complexity")
