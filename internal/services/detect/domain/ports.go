// Package domain holds the detect service contracts
package domain

import (
	"context"

	"chardetcompat/internal/core/legacy"
)

// AdapterPort is the legacy adapter the service drives
type AdapterPort interface {
	Detect(input any, opts legacy.Options) (legacy.Result, error)
}

// DetectorPort is the external port transports call
type DetectorPort interface {
	// Detect runs one input through the adapter
	Detect(ctx context.Context, in Input) (legacy.Result, error)

	// DetectAll runs many inputs on the worker pool; outputs keep input order
	DetectAll(ctx context.Context, xs []Input) []Output
}
