package pricing

import (
	"errors"
	"fmt"
)

// ErrSizeLimitExceeded rejects a scope whose combined data file size is above
// the policy limit. It is the only input the calculator refuses outright.
var ErrSizeLimitExceeded = errors.New("total data source size exceeds limit")

// ErrInvalidConfiguration reports an enum value the upstream validator should
// never have let through. It is fatal to the request, never defaulted.
var ErrInvalidConfiguration = errors.New("invalid pricing configuration")

// SizeLimitError carries the measured and permitted sizes for caller messages.
type SizeLimitError struct {
	TotalMB float64
	LimitMB float64
}

func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("total data source size %.1fMB exceeds %.0fMB limit", e.TotalMB, e.LimitMB)
}

func (e *SizeLimitError) Unwrap() error { return ErrSizeLimitExceeded }

// ConfigError identifies the field and value that failed enum membership.
type ConfigError struct {
	Field string
	Value string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("unknown %s %q reached the calculator", e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfiguration }
