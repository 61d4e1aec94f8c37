package codec

import "gopkg.in/yaml.v3"

// YAML is a Codec that serializes values using gopkg.in/yaml.v3.
// The zero value is ready to use.
//
// Use `yaml:"fieldName"` tags to control field names.
type YAML[V any] struct{}

var _ Codec[struct{}] = YAML[struct{}]{}

func (YAML[V]) Encode(v V) ([]byte, error) {
	return yaml.Marshal(v)
}

func (YAML[V]) Decode(b []byte) (V, error) {
	var v V
	err := yaml.Unmarshal(b, &v)
	return v, err
}
