package decimal

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML emits d as a plain (unquoted) scalar.
func (d Decimal) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: d.String()}, nil
}

// UnmarshalYAML accepts any scalar holding decimal text, quoted or not.
func (d *Decimal) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: yaml node kind %d at line %d", ErrUnsupportedType, value.Kind, value.Line)
	}
	return d.UnmarshalText([]byte(value.Value))
}
