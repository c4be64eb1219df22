package fsbox

import (
	"encoding/json"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
	"github.com/deepnoodle-ai/wonton/schema"
)

func TestSchemaJSON(t *testing.T) {
	t.Run("nil schema is an empty object", func(t *testing.T) {
		raw, err := SchemaJSON(nil)
		assert.NoError(t, err)

		var decoded map[string]any
		assert.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, "object", decoded["type"])
		assert.Equal(t, map[string]any{}, decoded["properties"])
	})

	t.Run("nested array items", func(t *testing.T) {
		s := &schema.Schema{
			Type:     schema.Object,
			Required: []string{"edits"},
			Properties: map[string]*schema.Property{
				"edits": {
					Type:        schema.Array,
					Description: "Edits to apply",
					Items: &schema.Property{
						Type:     schema.Object,
						Required: []string{"oldText"},
						Properties: map[string]*schema.Property{
							"oldText": {Type: schema.String},
						},
					},
				},
			},
		}
		raw, err := SchemaJSON(s)
		assert.NoError(t, err)

		var decoded map[string]any
		assert.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, []any{"edits"}, decoded["required"])
		edits := decoded["properties"].(map[string]any)["edits"].(map[string]any)
		assert.Equal(t, "array", edits["type"])
		assert.Equal(t, "Edits to apply", edits["description"])
		items := edits["items"].(map[string]any)
		assert.Equal(t, []any{"oldText"}, items["required"])
	})

	t.Run("does not modify the input", func(t *testing.T) {
		s := &schema.Schema{}
		_, err := SchemaJSON(s)
		assert.NoError(t, err)
		assert.Nil(t, s.Properties)
	})
}
