package project

import "errors"

// ErrEmptyPath indicates a module in the input sequence had an empty Path,
// raised before the Module Analyser is invoked.
var ErrEmptyPath = errors.New("project: module path must not be empty")

// ErrPropagatedModule wraps a module analysis failure; the module's path
// is prefixed onto the underlying error's message.
var ErrPropagatedModule = errors.New("project: module analysis failed")
