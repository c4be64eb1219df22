// Package table renders aligned text tables for terminal output. Cell widths
// ignore ANSI color codes and count wide runes as two columns.
package table

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// Table collects rows and writes them with a box border.
type Table struct {
	out     io.Writer
	headers []string
	rows    [][]string
	widths  []int
}

// New returns a table that renders to w.
func New(w io.Writer, headers ...string) *Table {
	t := &Table{out: w}
	if len(headers) > 0 {
		t.headers = headers
		t.grow(headers)
	}
	return t
}

// Append adds a row. Cells beyond the header count are dropped.
func (t *Table) Append(cells ...string) {
	if len(t.headers) > 0 && len(cells) > len(t.headers) {
		cells = cells[:len(t.headers)]
	}
	t.rows = append(t.rows, cells)
	t.grow(cells)
}

// Len returns the number of rows appended so far.
func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) grow(cells []string) {
	for i, cell := range cells {
		if i >= len(t.widths) {
			t.widths = append(t.widths, 0)
		}
		t.widths[i] = max(t.widths[i], displayWidth(cell))
	}
}

// Render writes the table. An empty table writes nothing.
func (t *Table) Render() error {
	if len(t.headers) == 0 && len(t.rows) == 0 {
		return nil
	}
	var b strings.Builder
	t.border(&b, "┌", "┬", "┐")
	if len(t.headers) > 0 {
		t.row(&b, t.headers)
		t.border(&b, "├", "┼", "┤")
	}
	for _, r := range t.rows {
		t.row(&b, r)
	}
	t.border(&b, "└", "┴", "┘")
	_, err := io.WriteString(t.out, b.String())
	return err
}

func (t *Table) border(b *strings.Builder, left, mid, right string) {
	b.WriteString(left)
	for i, w := range t.widths {
		if i > 0 {
			b.WriteString(mid)
		}
		b.WriteString(strings.Repeat("─", w+2))
	}
	b.WriteString(right)
	b.WriteString("\n")
}

func (t *Table) row(b *strings.Builder, cells []string) {
	b.WriteString("│")
	for i, w := range t.widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}
		fmt.Fprintf(b, " %s%s │", cell, strings.Repeat(" ", w-displayWidth(cell)))
	}
	b.WriteString("\n")
}

func displayWidth(s string) int {
	return runewidth.StringWidth(ansiRegex.ReplaceAllString(s, ""))
}
