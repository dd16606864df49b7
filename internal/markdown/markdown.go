// Package markdown renders todo text for the terminal.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/muesli/reflow/indent"

	internalstrings "github.com/amonks/tasklist/internal/strings"
)

type textRenderer interface {
	Render(string) (string, error)
}

var (
	rendererMu sync.Mutex
	renderers  = map[int]textRenderer{}
)

// Render formats markdown text for terminal output, wrapped to width and
// shifted right by indent spaces. It returns "" for blank input.
func Render(width, indentBy int, input string) string {
	value := internalstrings.NormalizeNewlines(input)
	value = internalstrings.TrimTrailingNewlines(value)
	if strings.TrimSpace(value) == "" {
		return ""
	}
	if indentBy < 0 {
		indentBy = 0
	}
	renderWidth := max(width-indentBy, 1)

	rendered := value
	if renderer := markdownRenderer(renderWidth); renderer != nil {
		if formatted, err := renderer.Render(value); err == nil {
			rendered = formatted
		}
	}
	rendered = trimLines(rendered)
	if strings.TrimSpace(rendered) == "" {
		return ""
	}
	if indentBy == 0 {
		return rendered
	}
	return indent.String(rendered, uint(indentBy))
}

// SafeRender is Render, falling back to the trimmed input if the renderer
// panics.
func SafeRender(width, indentBy int, input string) (out string) {
	defer func() {
		if recover() != nil {
			out = internalstrings.TrimTrailingNewlines(internalstrings.NormalizeNewlines(input))
		}
	}()
	return Render(width, indentBy, input)
}

func markdownRenderer(width int) textRenderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached
	}
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	zero := uint(0)
	style.Document.Margin = &zero
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = created
	return created
}

// trimLines drops the padding glamour adds to the right of each line and
// the blank lines around the block.
func trimLines(value string) string {
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}
