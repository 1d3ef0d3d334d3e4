// internal/data/optional.go
package data

import "encoding/json"

// Optional is a tri-state JSON field: absent from the payload, explicitly
// null, or carrying a value. The zero value means absent. encoding/json never
// touches struct fields that are missing from the payload, and it does call
// UnmarshalJSON for an explicit null, which is what makes the three states
// distinguishable.
type Optional[T any] struct {
	Set   bool // The field appeared in the payload at all
	Null  bool // The field was an explicit JSON null
	Value T    // The decoded value when Set && !Null
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}
