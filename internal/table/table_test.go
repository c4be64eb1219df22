package table

import (
	"bytes"
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"
)

func TestEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, New(&buf).Render())
	assert.Empty(t, buf.String())
}

func TestTableWithHeadersAndRows(t *testing.T) {
	var buf bytes.Buffer
	tbl := New(&buf, "Path", "Status")
	tbl.Append("/data/a.txt", "ALLOWED")
	tbl.Append("/etc", "DENIED", "dropped")
	assert.NoError(t, tbl.Render())
	assert.Equal(t, 2, tbl.Len())

	expected := "┌─────────────┬─────────┐\n" +
		"│ Path        │ Status  │\n" +
		"├─────────────┼─────────┤\n" +
		"│ /data/a.txt │ ALLOWED │\n" +
		"│ /etc        │ DENIED  │\n" +
		"└─────────────┴─────────┘\n"
	assert.Equal(t, expected, buf.String())
}

func TestTableIgnoresANSIAndCountsWideRunes(t *testing.T) {
	var buf bytes.Buffer
	tbl := New(&buf)
	tbl.Append("\x1b[32mok\x1b[0m", "x")
	tbl.Append("日本", "y")
	assert.NoError(t, tbl.Render())

	expected := "┌──────┬───┐\n" +
		"│ \x1b[32mok\x1b[0m   │ x │\n" +
		"│ 日本 │ y │\n" +
		"└──────┴───┘\n"
	assert.Equal(t, expected, buf.String())
}
