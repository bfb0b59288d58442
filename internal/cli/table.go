package cli

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// Table is a simple column-aligned text table with optional word wrapping.
type Table struct {
	headers    []string
	rows       [][]string
	padding    int
	maxWidths  map[int]int
	flexColumn int // column that absorbs remaining terminal width, -1 if none
	flexMin    int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:    headers,
		rows:       make([][]string, 0),
		padding:    2,
		maxWidths:  make(map[int]int),
		flexColumn: -1,
	}
}

// SetColumnMaxWidth sets a maximum width for a column. Longer text wraps
// onto continuation lines.
func (t *Table) SetColumnMaxWidth(colIndex, maxWidth int) {
	t.maxWidths[colIndex] = maxWidth
}

// EnableTerminalAwareWidth sizes the given column to absorb whatever width
// the terminal has left after the fixed columns, but never below minWidth.
// When stdout is not a terminal the column is capped at minWidth.
func (t *Table) EnableTerminalAwareWidth(colIndex, minWidth int) {
	t.flexColumn = colIndex
	t.flexMin = minWidth
}

// AddRow adds a row to the table. Short rows are padded to the header
// count, long rows truncated.
func (t *Table) AddRow(row []string) {
	if len(row) != len(t.headers) {
		fixed := make([]string, len(t.headers))
		copy(fixed, row)
		t.rows = append(t.rows, fixed)
		return
	}
	t.rows = append(t.rows, row)
}

// Render formats the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	t.applyFlexWidth()

	// Wrap cells that exceed their column's max width.
	wrapped := make([][][]string, len(t.rows))
	for ri, row := range t.rows {
		wrapped[ri] = make([][]string, len(row))
		for ci, cell := range row {
			if max, ok := t.maxWidths[ci]; ok && max > 0 {
				wrapped[ri][ci] = wrapText(cell, max)
			} else {
				wrapped[ri][ci] = []string{cell}
			}
		}
	}

	widths := t.columnWidths(wrapped)
	gap := strings.Repeat(" ", t.padding)

	var b strings.Builder
	cells := make([]string, len(t.headers))

	for i, h := range t.headers {
		cells[i] = padRight(h, widths[i])
	}
	b.WriteString(strings.TrimRight(strings.Join(cells, gap), " "))
	b.WriteString("\n")

	for i, w := range widths {
		cells[i] = strings.Repeat("-", w)
	}
	b.WriteString(strings.Join(cells, gap))
	b.WriteString("\n")

	for _, row := range wrapped {
		lines := 1
		for _, cell := range row {
			if len(cell) > lines {
				lines = len(cell)
			}
		}
		for line := 0; line < lines; line++ {
			for ci := range t.headers {
				text := ""
				if ci < len(row) && line < len(row[ci]) {
					text = row[ci][line]
				}
				cells[ci] = padRight(text, widths[ci])
			}
			b.WriteString(strings.TrimRight(strings.Join(cells, gap), " "))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// applyFlexWidth resolves the terminal-aware column into a concrete max
// width before rendering.
func (t *Table) applyFlexWidth() {
	if t.flexColumn < 0 {
		return
	}

	termWidth := t.flexMin
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		fixed := 0
		for i := range t.headers {
			if i == t.flexColumn {
				continue
			}
			fixed += t.fixedColumnWidth(i) + t.padding
		}
		if remaining := w - fixed; remaining > termWidth {
			termWidth = remaining
		}
	}
	t.maxWidths[t.flexColumn] = termWidth
}

func (t *Table) fixedColumnWidth(colIndex int) int {
	width := len(t.headers[colIndex])
	for _, row := range t.rows {
		if colIndex < len(row) && len(row[colIndex]) > width {
			width = len(row[colIndex])
		}
	}
	if max, ok := t.maxWidths[colIndex]; ok && max > 0 && width > max {
		width = max
	}
	return width
}

func (t *Table) columnWidths(wrapped [][][]string) []int {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range wrapped {
		for ci, cell := range row {
			if ci >= len(widths) {
				continue
			}
			for _, line := range cell {
				if len(line) > widths[ci] {
					widths[ci] = len(line)
				}
			}
		}
	}
	return widths
}

// padRight pads a string with spaces on the right to reach width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// wrapText wraps text to fit width, breaking at word boundaries and
// splitting words longer than the width.
func wrapText(text string, width int) []string {
	if width <= 0 || len(text) <= width {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	var lines []string
	current := ""
	for _, word := range words {
		for len(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}

		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
