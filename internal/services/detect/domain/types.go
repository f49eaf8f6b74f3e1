package domain

import "chardetcompat/internal/core/legacy"

// Input is a single detection request
type Input struct {
	Source string // file name, "<stdin>", or request id; used in logs only
	Data   any    // []byte or *bytes.Buffer; anything else is a type error
	Rename *bool  // nil uses the service default
	Extra  map[string]any
}

// Output pairs a result with its source
type Output struct {
	Source string
	Result legacy.Result
	Err    error
}
