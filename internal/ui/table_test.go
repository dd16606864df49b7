package ui

import (
	"strings"
	"testing"
)

func withViewportWidth(t *testing.T, width int) {
	t.Helper()
	original := tableViewportWidth
	tableViewportWidth = func() int { return width }
	t.Cleanup(func() {
		tableViewportWidth = original
	})
}

func TestTruncateTableCellCountsRunes(t *testing.T) {
	value := strings.Repeat("a", tableCellMaxWidth-1) + "é"

	got := TruncateTableCell(value)

	if got != value {
		t.Fatalf("expected value to remain untruncated, got %q", got)
	}
}

func TestTruncateTableCellTruncatesLongValues(t *testing.T) {
	value := strings.Repeat("a", tableCellMaxWidth+10)

	got := TruncateTableCell(value)

	if displayWidth(got) != tableCellMaxWidth {
		t.Fatalf("expected width %d, got %d", tableCellMaxWidth, displayWidth(got))
	}
	if !strings.HasSuffix(got, tableCellEllipsis) {
		t.Fatalf("expected ellipsis, got %q", got)
	}
}

func TestTruncateTableCellCountsWideRunes(t *testing.T) {
	value := strings.Repeat("日", tableCellMaxWidth/2+1)

	got := TruncateTableCell(value)

	if width := displayWidth(got); width > tableCellMaxWidth {
		t.Fatalf("expected width at most %d, got %d", tableCellMaxWidth, width)
	}
}

func TestTruncateTableCellNormalizesLineBreaks(t *testing.T) {
	value := "Hello\nWorld\r\nAgain\tTab"

	got := TruncateTableCell(value)

	if got != "Hello World Again Tab" {
		t.Fatalf("expected line breaks to normalize, got %q", got)
	}
}

func TestTruncateTableCellIgnoresANSICodes(t *testing.T) {
	value := "\x1b[1m\x1b[36m" + strings.Repeat("a", tableCellMaxWidth) + "\x1b[0m"

	got := TruncateTableCell(value)

	if got != value {
		t.Fatalf("expected value to remain untruncated, got %q", got)
	}
}

func TestFormatTableAlignsColumns(t *testing.T) {
	withViewportWidth(t, 0)

	builder := NewTableBuilder([]string{"ID", "TASK"}, 2)
	builder.AddRow([]string{"1", "buy milk"})
	builder.AddRow([]string{"12", "call mom"})

	expected := "ID  TASK\n1   buy milk\n12  call mom\n"
	if got := builder.String(); got != expected {
		t.Fatalf("expected %q, got %q", expected, got)
	}
}

func TestFormatTableNormalizesLineBreaks(t *testing.T) {
	withViewportWidth(t, 0)

	got := FormatTable([]string{"COL"}, [][]string{{"Hello\nWorld\r\nAgain\tTab"}})

	expected := "COL\nHello World Again Tab\n"
	if got != expected {
		t.Fatalf("expected normalized table output, got %q", got)
	}
}

func TestFormatTableUsesViewportWidth(t *testing.T) {
	withViewportWidth(t, 10)

	got := FormatTable([]string{"COL1", "COL2"}, [][]string{{"A", "B"}})

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	for _, line := range lines {
		if width := displayWidth(line); width != 10 {
			t.Fatalf("expected table width 10, got %d in %q", width, line)
		}
	}
}

func TestFormatTableSqueezesLastColumn(t *testing.T) {
	withViewportWidth(t, 20)

	got := FormatTable([]string{"ID", "TASK"}, [][]string{{"1", strings.Repeat("x", 40)}})

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", got)
	}
	if width := displayWidth(lines[1]); width != 20 {
		t.Fatalf("expected squeezed row width 20, got %d in %q", width, lines[1])
	}
	if !strings.HasSuffix(lines[1], tableCellEllipsis) {
		t.Fatalf("expected ellipsis, got %q", lines[1])
	}
}
