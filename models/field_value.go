package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ValueKind defines the semantic type of a value stored in a character's
// attribute bag. The kind determines which member of [FieldValue] is
// meaningful and how the value is rendered on the wire.
type ValueKind int

const (
	// Text represents a single free-form string. Used for text, textarea
	// and select fields.
	Text ValueKind = 1

	// Integer represents a whole number. Used for number fields.
	Integer ValueKind = 2

	// StringList represents an ordered sequence of strings. Used for tags
	// fields; order and duplicates are preserved.
	StringList ValueKind = 3
)

// FieldValue is a tagged union over the three attribute value types.
// Exactly one of Text, Int or List is meaningful, selected by Kind.
//
// On the wire a FieldValue is serialized as the bare JSON value — a string,
// a number or an array of strings — so that page documents keep the flat
// shape produced by the original record format.
type FieldValue struct {
	// Kind selects which member carries the value.
	Kind ValueKind

	// Text is the value for Text-kind fields.
	Text string

	// Int is the value for Integer-kind fields.
	Int int

	// List is the value for StringList-kind fields.
	List []string
}

// TextValue wraps s into a Text-kind FieldValue.
func TextValue(s string) FieldValue {
	return FieldValue{Kind: Text, Text: s}
}

// IntValue wraps n into an Integer-kind FieldValue.
func IntValue(n int) FieldValue {
	return FieldValue{Kind: Integer, Int: n}
}

// ListValue wraps items into a StringList-kind FieldValue.
// The slice is stored as-is; callers must not mutate it afterwards.
func ListValue(items []string) FieldValue {
	return FieldValue{Kind: StringList, List: items}
}

// String renders the value as display/search text: integers via strconv,
// lists joined by a single space, strings as-is.
func (v FieldValue) String() string {
	switch v.Kind {
	case Integer:
		return strconv.Itoa(v.Int)
	case StringList:
		return strings.Join(v.List, " ")
	default:
		return v.Text
	}
}

// MarshalJSON emits the bare JSON value for the active kind.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case Integer:
		return json.Marshal(v.Int)
	case StringList:
		if v.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.List)
	default:
		return json.Marshal(v.Text)
	}
}

// UnmarshalJSON infers the kind from the JSON value type: a string becomes
// Text, an array becomes StringList, a number becomes Integer (fractional
// parts are truncated). Any other JSON type is rejected.
func (v *FieldValue) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if trimmed == "" || trimmed == "null" {
		*v = TextValue("")
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = TextValue(s)
		return nil
	case '[':
		var items []string
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*v = ListValue(items)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("unsupported attribute value %q: %w", trimmed, err)
		}
		if i, err := n.Int64(); err == nil {
			*v = IntValue(int(i))
			return nil
		}
		f, err := n.Float64()
		if err != nil {
			return fmt.Errorf("unsupported attribute value %q: %w", trimmed, err)
		}
		*v = IntValue(int(f))
		return nil
	}
}
