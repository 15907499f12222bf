package encode

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Value is a parsed JSON value: Object, Array, string, json.Number, bool,
// or nil. Object preserves key order, which map-based decoding would lose
// and the JSON/CSV encoders must keep.
type Value any

// Field is one key/value entry of an Object.
type Field struct {
	Key   string
	Value Value
}

// Object is a JSON object with fields in first-seen order.
type Object []Field

// Array is a JSON array.
type Array []Value

// MarshalJSON encodes the object with its fields in stored order.
func (o Object) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			sb.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		sb.Write(key)
		sb.WriteByte(':')
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		sb.Write(val)
	}
	sb.WriteByte('}')
	return []byte(sb.String()), nil
}

// Get returns the value for key and whether it is present.
func (o Object) Get(key string) (Value, bool) {
	for _, f := range o {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// ParseContent parses raw content as structured JSON data. The whole
// input must be a single well-formed value; trailing content fails.
func ParseContent(content string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(content))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("content must be a valid JSON string: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("content must be a valid JSON string: trailing data")
	}
	return v, nil
}

// decodeValue reads one complete value from the decoder's token stream.
func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			var obj Object
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string: %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj = append(obj, Field{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			if obj == nil {
				obj = Object{}
			}
			return obj, nil
		case '[':
			var arr Array
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			if arr == nil {
				arr = Array{}
			}
			return arr, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	default:
		// string, json.Number, bool, or nil.
		return t, nil
	}
}

// stringify flattens a value to its text form. Nested structures are
// rendered as compact JSON, not expanded.
func stringify(v Value) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}

// objectRows interprets v as a list of objects. The second return is
// false when v is not an Array or any element is not an Object.
func objectRows(v Value) ([]Object, bool) {
	arr, ok := v.(Array)
	if !ok {
		return nil, false
	}
	rows := make([]Object, 0, len(arr))
	for _, el := range arr {
		obj, ok := el.(Object)
		if !ok {
			return nil, false
		}
		rows = append(rows, obj)
	}
	return rows, true
}

// columnKeys returns the union of keys across rows in first-seen order.
func columnKeys(rows []Object) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, row := range rows {
		for _, f := range row {
			if !seen[f.Key] {
				seen[f.Key] = true
				keys = append(keys, f.Key)
			}
		}
	}
	return keys
}
