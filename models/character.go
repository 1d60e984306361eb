package models

import (
	"encoding/json"
	"math/rand"
	"time"
)

// Character is a single record within a page. Its shape is a fixed envelope
// plus a dynamic attribute bag driven by the page's template.
type Character struct {
	// ID identifies the character within its page.
	ID int64 `json:"id"`

	// Name is the display name. Required at form level.
	Name string `json:"name"`

	// Image is a placeholder emoji chosen at creation. It is shown only
	// while Images is empty.
	Image string `json:"image"`

	// Images holds vault paths of uploaded pictures in display order;
	// the first entry is the cover/thumbnail.
	Images []string `json:"images"`

	// Attributes maps template field names to typed values. Fields absent
	// from the schema at creation time are simply missing here; readers
	// fall back to the schema default via AttributeOrDefault.
	Attributes map[string]FieldValue `json:"-"`

	// CreatedAt is set once at creation.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is set on every field update; nil until the first edit.
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// fixedCharacterKeys are the envelope keys of the flat wire format. Every
// other key of a character object is an attribute.
var fixedCharacterKeys = map[string]struct{}{
	"id":        {},
	"name":      {},
	"image":     {},
	"images":    {},
	"createdAt": {},
	"updatedAt": {},
}

// placeholderEmojis is the fixed palette placeholder avatars are drawn from.
var placeholderEmojis = []string{"👸", "🧙‍♂️", "🦹‍♀️", "🧝‍♀️", "🧙‍♀️", "👨‍⚔️", "👩‍⚔️", "🧝‍♂️"}

// RandomEmoji picks a placeholder avatar from the fixed palette.
func RandomEmoji() string {
	return placeholderEmojis[rand.Intn(len(placeholderEmojis))]
}

// AttributeOrDefault returns the stored attribute for f, or the field's
// schema default when the record predates the field.
func (c *Character) AttributeOrDefault(f Field) FieldValue {
	if v, ok := c.Attributes[f.Name]; ok {
		return v
	}
	return f.Default()
}

// MarshalJSON flattens the attribute bag next to the envelope keys, matching
// the original page-document format. An attribute whose name collides with
// an envelope key overwrites it — a documented limitation, not an error.
func (c Character) MarshalJSON() ([]byte, error) {
	type envelope Character
	raw, err := json.Marshal(envelope(c))
	if err != nil {
		return nil, err
	}

	flat := make(map[string]json.RawMessage, len(c.Attributes)+6)
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, err
	}

	for name, value := range c.Attributes {
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		flat[name] = encoded
	}

	return json.Marshal(flat)
}

// UnmarshalJSON splits a flat character object back into envelope fields and
// attributes. Attribute kinds are inferred from their JSON value types.
func (c *Character) UnmarshalJSON(b []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(b, &flat); err != nil {
		return err
	}

	attrs := make(map[string]json.RawMessage, len(flat))
	envelopeOnly := make(map[string]json.RawMessage, 6)
	for key, raw := range flat {
		if _, fixed := fixedCharacterKeys[key]; fixed {
			envelopeOnly[key] = raw
		} else {
			attrs[key] = raw
		}
	}

	type envelope Character
	var env envelope
	encoded, err := json.Marshal(envelopeOnly)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(encoded, &env); err != nil {
		return err
	}

	env.Attributes = make(map[string]FieldValue, len(attrs))
	for name, raw := range attrs {
		var value FieldValue
		if err := json.Unmarshal(raw, &value); err != nil {
			return err
		}
		env.Attributes[name] = value
	}

	*c = Character(env)
	return nil
}
