package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── MarshalJSON ──────────────────────────────────────────────────────────────

func TestCharacter_MarshalJSON_FlattensAttributes(t *testing.T) {
	char := Character{
		ID:     7,
		Name:   "Aliya",
		Image:  "👸",
		Images: []string{},
		Attributes: map[string]FieldValue{
			"age":  IntValue(25),
			"race": TextValue("Human"),
			"tags": ListValue([]string{"brave", "just"}),
		},
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	raw, err := json.Marshal(char)
	require.NoError(t, err)

	var flat map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &flat))

	assert.JSONEq(t, `7`, string(flat["id"]))
	assert.JSONEq(t, `"Aliya"`, string(flat["name"]))
	assert.JSONEq(t, `25`, string(flat["age"]), "attributes sit next to envelope keys")
	assert.JSONEq(t, `"Human"`, string(flat["race"]))
	assert.JSONEq(t, `["brave","just"]`, string(flat["tags"]))
	assert.NotContains(t, flat, "updatedAt", "nil UpdatedAt is omitted")
}

func TestCharacter_MarshalJSON_AttributeShadowsEnvelopeKey(t *testing.T) {
	char := Character{
		ID:   1,
		Name: "real name",
		Attributes: map[string]FieldValue{
			"name": TextValue("shadowed"),
		},
	}

	raw, err := json.Marshal(char)
	require.NoError(t, err)

	var flat map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &flat))
	assert.JSONEq(t, `"shadowed"`, string(flat["name"]))
}

// ── UnmarshalJSON ────────────────────────────────────────────────────────────

func TestCharacter_UnmarshalJSON_SplitsEnvelopeAndAttributes(t *testing.T) {
	doc := `{
		"id": 2,
		"name": "Rex",
		"image": "🧙‍♂️",
		"images": ["character-creator/character-images/2/character-image-1.png"],
		"createdAt": "2026-01-02T03:04:05Z",
		"age": 35,
		"race": "Elf",
		"tags": ["mysterious", "wise"]
	}`

	var char Character
	require.NoError(t, json.Unmarshal([]byte(doc), &char))

	assert.Equal(t, int64(2), char.ID)
	assert.Equal(t, "Rex", char.Name)
	assert.Len(t, char.Images, 1)
	assert.Equal(t, IntValue(35), char.Attributes["age"])
	assert.Equal(t, TextValue("Elf"), char.Attributes["race"])
	assert.Equal(t, ListValue([]string{"mysterious", "wise"}), char.Attributes["tags"])
	assert.NotContains(t, char.Attributes, "id", "envelope keys never leak into the bag")
}

func TestCharacter_JSONRoundTrip_PreservesTypedAttributes(t *testing.T) {
	original := Character{
		ID:     3,
		Name:   "Mara",
		Image:  "🧝‍♀️",
		Images: []string{},
		Attributes: map[string]FieldValue{
			"age":   IntValue(19),
			"class": TextValue("Rogue"),
			"tags":  ListValue([]string{"quick"}),
		},
		CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Character
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, original.ID, decoded.ID)
	assert.Equal(t, original.Name, decoded.Name)
	assert.Equal(t, original.Attributes, decoded.Attributes)
	assert.True(t, original.CreatedAt.Equal(decoded.CreatedAt))
}

// ── helpers ──────────────────────────────────────────────────────────────────

func TestRandomEmoji_StaysInsidePalette(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.Contains(t, placeholderEmojis, RandomEmoji())
	}
}

func TestCharacter_AttributeOrDefault_FallsBackToSchema(t *testing.T) {
	char := Character{Attributes: map[string]FieldValue{"age": IntValue(40)}}
	age := Field{Name: "age", Type: FieldNumber, Value: IntValue(25)}
	race := Field{Name: "race", Type: FieldSelect, Options: []string{"Human", "Elf"}}

	assert.Equal(t, IntValue(40), char.AttributeOrDefault(age))
	assert.Equal(t, TextValue("Human"), char.AttributeOrDefault(race), "records predating a field use its default")
}
