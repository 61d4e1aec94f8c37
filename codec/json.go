package codec

import "encoding/json"

// JSON is a Codec that serializes values using encoding/json.
// The zero value is ready to use and produces compact output; set Indent
// for pretty-printed output.
type JSON[V any] struct {
	Indent string
}

var _ Codec[struct{}] = JSON[struct{}]{}

func (c JSON[V]) Encode(v V) ([]byte, error) {
	if c.Indent != "" {
		return json.MarshalIndent(v, "", c.Indent)
	}
	return json.Marshal(v)
}

func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
