package utils

import "fmt"

// EnumValidator returns an ent field validator that accepts only the given
// values.
func EnumValidator(allowed ...string) func(string) error {
	return func(s string) error {
		for _, a := range allowed {
			if s == a {
				return nil
			}
		}
		return fmt.Errorf("value %q is not in %v", s, allowed)
	}
}
