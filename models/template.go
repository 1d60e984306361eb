package models

import (
	"strconv"
	"strings"
)

// FieldType enumerates the field kinds a template may declare. The type
// drives both form rendering in the UI and value parsing in
// [ParseFieldValue].
type FieldType string

const (
	// FieldText is a single-line free-form string.
	FieldText FieldType = "text"

	// FieldNumber is a whole number.
	FieldNumber FieldType = "number"

	// FieldSelect is a single string chosen from a fixed option list.
	FieldSelect FieldType = "select"

	// FieldTags is an ordered list of short strings entered as a
	// comma-delimited line.
	FieldTags FieldType = "tags"

	// FieldTextarea is a multi-line free-form string.
	FieldTextarea FieldType = "textarea"
)

// Field is one entry of a template schema. Its Name doubles as the
// attribute key on every character record of the page.
type Field struct {
	// Name is the field label and the attribute key. Unique within a
	// template. A name that collides with a fixed character attribute
	// (id, name, image, images, createdAt, updatedAt) shadows it on the
	// wire; schema design is the user's responsibility.
	Name string `json:"name"`

	// Type selects the field kind.
	Type FieldType `json:"type"`

	// Value is the default used when a record has no stored attribute for
	// this field.
	Value FieldValue `json:"value"`

	// Options lists the allowed values for select fields. Empty for all
	// other kinds.
	Options []string `json:"options,omitempty"`

	// Required is enforced at form-input level only; stored records are
	// never re-validated against it.
	Required bool `json:"required"`
}

// Default returns the field's default value. For select fields with no
// explicit default the first option wins.
func (f Field) Default() FieldValue {
	if f.Type == FieldSelect && f.Value.String() == "" && len(f.Options) > 0 {
		return TextValue(f.Options[0])
	}
	return f.Value
}

// Template is an ordered field list shared by every character of a page.
type Template struct {
	Fields []Field `json:"fields"`
}

// DefaultTemplate returns the built-in 5-field schema used whenever a page
// has no template of its own.
func DefaultTemplate() *Template {
	return &Template{
		Fields: []Field{
			{Name: "age", Type: FieldNumber, Value: IntValue(25), Required: true},
			{Name: "race", Type: FieldSelect, Value: TextValue("Human"), Options: []string{"Human", "Elf", "Dwarf", "Halfling", "Orc"}, Required: true},
			{Name: "class", Type: FieldSelect, Value: TextValue("Warrior"), Options: []string{"Warrior", "Mage", "Rogue", "Cleric", "Ranger"}, Required: true},
			{Name: "tags", Type: FieldTags, Value: ListValue([]string{"brave", "just"}), Required: false},
			{Name: "description", Type: FieldTextarea, Value: TextValue("Describe the character..."), Required: true},
		},
	}
}

// ParseFieldValue converts raw form input into a typed attribute value
// according to the field kind:
//
//   - number: parsed as an integer, 0 on any parse failure;
//   - tags: comma-split, segments trimmed, empty segments dropped,
//     order and duplicates preserved;
//   - text, textarea, select: passed through as-is.
//
// It never fails; malformed input degrades to the kind's zero value.
func ParseFieldValue(f Field, raw string) FieldValue {
	switch f.Type {
	case FieldNumber:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return IntValue(0)
		}
		return IntValue(n)
	case FieldTags:
		return ListValue(SplitTags(raw))
	default:
		return TextValue(raw)
	}
}

// SplitTags turns a comma-delimited line into an ordered tag list.
// Segments are trimmed and empty segments dropped; duplicates survive.
func SplitTags(raw string) []string {
	tags := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
