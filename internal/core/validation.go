package core

import (
	"fmt"
	"regexp"
)

var filterIDRegexp = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._\-]{0,127}$`)

func ValidateFilterID(id string) error {
	if !filterIDRegexp.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidFilterID, id)
	}

	return nil
}
