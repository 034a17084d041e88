package indexgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/indexgo/compare"
	"github.com/hupe1980/indexgo/kv"
	"github.com/hupe1980/indexgo/rank"
)

var (
	// ErrNotFound indicates a required lookup failed to locate its target.
	ErrNotFound = errors.New("not found")

	// ErrConfiguration indicates an unsupported configuration, e.g.
	// changing key folding on a non-empty container or requesting a
	// default comparator for a type with neither numeric nor string nature.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrUsage indicates an operation was driven out of order, e.g.
	// scoring before preparing the rank engine.
	ErrUsage = errors.New("usage error")
)

// translateError unifies subpackage error types under the root sentinels
// so callers can match with errors.Is. The original error stays reachable
// via errors.As.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var nf *kv.NotFoundError
	if errors.As(err, &nf) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var cce *compare.ConfigurationError
	if errors.As(err, &cce) {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	var kce *kv.ConfigurationError
	if errors.As(err, &kce) {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	var ue *rank.UsageError
	if errors.As(err, &ue) {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	return err
}
