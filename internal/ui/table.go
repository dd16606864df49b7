package ui

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"golang.org/x/term"
)

const tableCellMaxWidth = 50
const tableCellEllipsis = "..."

// minLastColumnWidth is the narrowest the last column may be squeezed to
// when fitting a table into the viewport.
const minLastColumnWidth = 12

// tableViewportWidth reports the terminal width, or 0 when stdout is not a
// terminal.
var tableViewportWidth = func() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

// TableBuilder collects rows and renders a formatted table.
type TableBuilder struct {
	headers []string
	rows    [][]string
}

// NewTableBuilder returns a builder with preallocated rows.
func NewTableBuilder(headers []string, capacity int) *TableBuilder {
	return &TableBuilder{headers: headers, rows: make([][]string, 0, capacity)}
}

// AddRow appends a row to the table.
func (builder *TableBuilder) AddRow(row []string) {
	builder.rows = append(builder.rows, row)
}

// String renders the table output.
func (builder *TableBuilder) String() string {
	return FormatTable(builder.headers, builder.rows)
}

// FormatTable renders headers and rows as an aligned table.
//
// When stdout is a terminal, the last column is stretched or squeezed so
// every line spans the terminal width.
func FormatTable(headers []string, rows [][]string) string {
	normalizedHeaders := make([]string, len(headers))
	for i, header := range headers {
		normalizedHeaders[i] = normalizeTableCell(header)
	}

	normalizedRows := make([][]string, 0, len(rows))
	for _, row := range rows {
		normalizedRow := make([]string, len(row))
		for i, cell := range row {
			normalizedRow[i] = normalizeTableCell(cell)
		}
		normalizedRows = append(normalizedRows, normalizedRow)
	}

	widths := make([]int, len(normalizedHeaders))
	for i, header := range normalizedHeaders {
		widths[i] = displayWidth(header)
	}

	for _, row := range normalizedRows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if displayLen := displayWidth(cell); displayLen > widths[i] {
				widths[i] = displayLen
			}
		}
	}

	fill := fitLastColumn(widths, tableViewportWidth())

	var builder strings.Builder
	writeRow := func(row []string) {
		for i, cell := range row {
			last := i == len(row)-1
			if last && fill && i < len(widths) && displayWidth(cell) > widths[i] {
				cell = truncate.StringWithTail(cell, uint(widths[i]), tableCellEllipsis)
			}
			builder.WriteString(cell)
			if last && !fill {
				break
			}
			padding := 0
			if i < len(widths) {
				padding = widths[i] - displayWidth(cell)
			}
			if !last {
				padding += 2
			}
			if padding > 0 {
				builder.WriteString(strings.Repeat(" ", padding))
			}
		}
		builder.WriteByte('\n')
	}

	writeRow(normalizedHeaders)
	for _, row := range normalizedRows {
		writeRow(row)
	}

	return builder.String()
}

// fitLastColumn resizes the last column so a row spans viewport cells.
// It reports false, leaving widths untouched, when there is no viewport or
// the other columns leave too little room.
func fitLastColumn(widths []int, viewport int) bool {
	if viewport <= 0 || len(widths) == 0 {
		return false
	}
	fixed := 0
	for _, width := range widths[:len(widths)-1] {
		fixed += width + 2
	}
	available := viewport - fixed
	if available < minLastColumnWidth && available < widths[len(widths)-1] {
		return false
	}
	widths[len(widths)-1] = available
	return true
}

// TruncateTableCell limits cell width while preserving visible characters.
func TruncateTableCell(value string) string {
	value = normalizeTableCell(value)
	if displayWidth(value) <= tableCellMaxWidth {
		return value
	}
	return truncate.StringWithTail(value, tableCellMaxWidth, tableCellEllipsis)
}

func displayWidth(value string) int {
	return runewidth.StringWidth(stripANSICodes(value))
}

func normalizeTableCell(value string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(value)
}

func stripANSICodes(input string) string {
	var builder strings.Builder
	inEscape := false
	for i := 0; i < len(input); i++ {
		char := input[i]
		if inEscape {
			if char == 'm' {
				inEscape = false
			}
			continue
		}
		if char == '\x1b' {
			inEscape = true
			continue
		}
		builder.WriteByte(char)
	}
	return builder.String()
}
