// Package nullable provides update-payload fields that distinguish a JSON
// key that was omitted from one explicitly set to null. Omitted means "leave
// the column unchanged"; null means "clear it".
package nullable

import "encoding/json"

// String is a nullable string field. The zero value means the field was
// absent from the payload.
type String struct {
	present bool
	value   *string
}

// FromString returns a String holding v.
func FromString(v string) String {
	return String{present: true, value: &v}
}

// Null returns a String that was explicitly set to null.
func Null() String {
	return String{present: true}
}

// Present reports whether the field appeared in the payload at all.
func (s String) Present() bool {
	return s.present
}

// Ptr returns a pointer to the held value, or nil when the field was absent
// or null. The nil pointer maps directly to a NULL column write.
func (s String) Ptr() *string {
	return s.value
}

// Value returns the held string, or "" when the field was absent or null.
func (s String) Value() string {
	if s.value == nil {
		return ""
	}
	return *s.value
}

func (s *String) UnmarshalJSON(data []byte) error {
	s.present = true
	if string(data) == "null" {
		s.value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	s.value = &v
	return nil
}

func (s String) MarshalJSON() ([]byte, error) {
	if s.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*s.value)
}
