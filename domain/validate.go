package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateBand checks a single record against the declared struct tags.
func ValidateBand(b Band) error {
	if err := validate.Struct(b); err != nil {
		return fmt.Errorf("band %d (%s): %w", b.ID, b.Name, err)
	}
	return nil
}

// ValidateBands validates every record and rejects duplicate ids.
func ValidateBands(bands []Band) error {
	seen := make(map[int]struct{}, len(bands))
	for _, b := range bands {
		if err := ValidateBand(b); err != nil {
			return err
		}
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("band %d (%s): duplicate id", b.ID, b.Name)
		}
		seen[b.ID] = struct{}{}
	}
	return nil
}
