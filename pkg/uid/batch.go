package uid

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ParseAll parses every value and returns the resulting UIDs in input
// order. Failures do not short-circuit: every invalid value is reported,
// aggregated into a single (multierror) error, and no UIDs are returned
// unless all inputs are valid.
func ParseAll(values []string) ([]UID, error) {
	var result *multierror.Error

	uids := make([]UID, 0, len(values))
	for i, v := range values {
		u, err := Parse(v)
		if err != nil {
			result = multierror.Append(result,
				fmt.Errorf("value %d (%q): %w", i, v, err))
			continue
		}
		uids = append(uids, u)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return uids, nil
}
