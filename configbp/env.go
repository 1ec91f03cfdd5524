package configbp

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv overrides the fields of ptr, which must be a pointer to a struct,
// from the environment variables named in their env tags.
//
// Fields whose variable is unset keep their value, so ParseEnv is meant to
// run after parsing a config file. Nested structs are walked, maps are not.
func ParseEnv(ptr interface{}) error {
	if err := env.Parse(ptr); err != nil {
		return fmt.Errorf("configbp: parsing environment into %T: %w", ptr, err)
	}
	return nil
}
