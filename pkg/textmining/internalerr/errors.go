package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInputMissing      = errors.New("input file missing")
	ErrCorpusUnavailable = errors.New("stopword corpus unavailable")
	ErrInvalidConfig     = errors.New("invalid configuration")
)
