package rating

import (
	"errors"
	"fmt"
)

// ErrNoAnchor is returned by New when no anchor is supplied to host the items.
var ErrNoAnchor = errors.New("rating: anchor must exist")

// OptionError reports an option that cannot produce a valid control
type OptionError struct {
	Field  string
	Reason string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("rating: invalid %s: %s", e.Field, e.Reason)
}
