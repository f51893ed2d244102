// Package patch provides JSON field types that distinguish an absent
// field from an explicit null, for partial-update request bodies.
package patch

import "encoding/json"

// String is a nullable string patch field. After unmarshalling,
// Defined reports whether the key was present at all; a present key
// with a null value leaves Value nil.
type String struct {
	Defined bool
	Value   *string
}

// UnmarshalJSON implements json.Unmarshaler. It is only called when
// the key is present in the payload, which is what sets Defined.
func (s *String) UnmarshalJSON(data []byte) error {
	s.Defined = true
	return json.Unmarshal(data, &s.Value)
}
