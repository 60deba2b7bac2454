package tool

import (
	"fmt"
	"slices"
)

// ValidateParams checks args against a tool schema and returns one message
// per violation. An empty result means the arguments are acceptable;
// properties absent from the schema are ignored.
func ValidateParams(s Schema, args map[string]any) []string {
	var errs []string

	for _, name := range s.Required {
		if _, ok := args[name]; !ok {
			errs = append(errs, fmt.Sprintf("parameter '%s' is required", name))
		}
	}

	for name, prop := range s.Properties {
		value, ok := args[name]
		if !ok || value == nil {
			continue
		}
		if prop.Type != "string" {
			continue
		}
		str, ok := value.(string)
		if !ok {
			errs = append(errs, fmt.Sprintf("parameter '%s' should be string, got %T", name, value))
			continue
		}
		if len(prop.Enum) > 0 && !slices.Contains(prop.Enum, str) {
			errs = append(errs, fmt.Sprintf("parameter '%s' must be one of %v, got '%s'", name, prop.Enum, str))
		}
	}
	return errs
}
