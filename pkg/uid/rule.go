package uid

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Valid is an ozzo-validation rule that checks a field holds a valid UID.
// It accepts string, *string, and UID values, so request or model structs
// can declare:
//
//	validation.ValidateStruct(&req,
//	    validation.Field(&req.UID, validation.Required, uid.Valid),
//	)
//
// Empty values are skipped, per ozzo convention: pair with
// validation.Required when presence is mandatory.
var Valid validation.Rule = validRule{}

type validRule struct{}

func (validRule) Validate(value interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		if v == "" {
			return nil
		}
		_, err := Parse(v)
		return err
	case *string:
		if v == nil || *v == "" {
			return nil
		}
		_, err := Parse(*v)
		return err
	case UID:
		// Constructed UIDs already satisfy the invariants.
		return nil
	case *UID:
		return nil
	default:
		return fmt.Errorf("cannot validate %T as a UID", value)
	}
}
