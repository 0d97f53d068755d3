package student

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Record is the flat field name to value payload returned by the lookup
// service. A missing key and an empty string both mean "absent".
type Record map[string]string

// Get returns the value stored under field, or "" when field is empty or the
// key is missing.
func (r Record) Get(field string) string {
	if field == "" || r == nil {
		return ""
	}
	return r[field]
}

// Has reports whether field resolves to a non-empty value.
func (r Record) Has(field string) bool {
	return r.Get(field) != ""
}

// UnmarshalJSON accepts any JSON object. Strings are kept verbatim, numbers
// and booleans keep their literal text, everything else is dropped.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode student record: %w", err)
	}
	if raw == nil {
		return fmt.Errorf("decode student record: expected an object, got null")
	}

	out := make(Record, len(raw))
	for key, value := range raw {
		if s, ok := scalarText(value); ok {
			out[key] = s
		}
	}

	*r = out
	return nil
}

func scalarText(value json.RawMessage) (string, bool) {
	value = bytes.TrimSpace(value)
	if len(value) == 0 {
		return "", false
	}

	switch value[0] {
	case '"':
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return "", false
		}
		return s, true
	case 't', 'f':
		b, err := strconv.ParseBool(string(value))
		if err != nil {
			return "", false
		}
		return strconv.FormatBool(b), true
	case 'n', '{', '[':
		return "", false
	default:
		var n json.Number
		if err := json.Unmarshal(value, &n); err != nil {
			return "", false
		}
		return n.String(), true
	}
}
