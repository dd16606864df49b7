package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/BurntSushi/toml"

	internalstrings "github.com/amonks/tasklist/internal/strings"
	"github.com/amonks/tasklist/todo"
)

// TodoData represents the data used to render the TOML template.
type TodoData struct {
	// IsUpdate is true when editing an existing todo.
	IsUpdate bool
	// ID is the todo ID (only for updates).
	ID int
	// Task is the todo text, written below the front matter.
	Task string
	// Priority is the todo priority.
	Priority string
	// Status is the todo status.
	Status string
	// DeadLine is the deadline in todo.MinuteLayout form, or empty.
	DeadLine string
}

// DefaultCreateData returns TodoData for a new todo with the given defaults.
func DefaultCreateData(priority todo.Priority, status todo.Status, deadline time.Time) TodoData {
	return TodoData{
		Priority: string(priority),
		Status:   string(status),
		DeadLine: formatDeadLine(deadline),
	}
}

// DataFromTodo creates TodoData from an existing todo for editing.
func DataFromTodo(t todo.Todo) TodoData {
	return TodoData{
		IsUpdate: true,
		ID:       t.ID,
		Task:     t.Task,
		Priority: string(t.Priority),
		Status:   string(t.Status),
		DeadLine: formatDeadLine(t.DeadLine),
	}
}

func formatDeadLine(deadline time.Time) string {
	if deadline.IsZero() {
		return ""
	}
	return deadline.Local().Format(todo.MinuteLayout)
}

var todoTemplate = template.Must(template.New("todo").Funcs(template.FuncMap{
	"join": func(values []string) string { return strings.Join(values, ", ") },
}).Parse(`{{- if .Data.IsUpdate }}# editing todo {{ .Data.ID }}
{{ end -}}
priority = {{ printf "%q" .Data.Priority }} # {{ join .Priorities }}
status = {{ printf "%q" .Data.Status }} # {{ join .Statuses }}
deadline = {{ printf "%q" .Data.DeadLine }} # RFC 3339, YYYY-MM-DDTHH:MM, or YYYY-MM-DD
---
{{ .Data.Task }}
`))

// RenderTodoTOML renders the todo data as a TOML string for editing.
func RenderTodoTOML(data TodoData) (string, error) {
	priorities := make([]string, 0, 3)
	for _, p := range todo.ValidPriorities() {
		priorities = append(priorities, string(p))
	}
	statuses := make([]string, 0, 3)
	for _, s := range todo.ValidStatuses() {
		statuses = append(statuses, string(s))
	}

	var buf bytes.Buffer
	err := todoTemplate.Execute(&buf, struct {
		Data       TodoData
		Priorities []string
		Statuses   []string
	}{data, priorities, statuses})
	if err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTodo is the validated result of an editing session.
type ParsedTodo struct {
	Task     string
	Priority todo.Priority
	Status   todo.Status
	DeadLine time.Time
}

type frontMatter struct {
	Priority string `toml:"priority"`
	Status   string `toml:"status"`
	DeadLine string `toml:"deadline"`
}

// ParseTodoTOML parses the editor output. Times without a zone are read in
// loc.
func ParseTodoTOML(content string, loc *time.Location) (*ParsedTodo, error) {
	header, body := splitFrontmatter(internalstrings.NormalizeNewlines(content))

	var fm frontMatter
	if _, err := toml.Decode(header, &fm); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}

	parsed := ParsedTodo{Task: strings.TrimSpace(body)}
	if err := todo.ValidateTask(parsed.Task); err != nil {
		return nil, err
	}

	var err error
	if parsed.Priority, err = todo.ParsePriority(fm.Priority); err != nil {
		return nil, err
	}
	if parsed.Status, err = todo.ParseStatus(fm.Status); err != nil {
		return nil, err
	}
	if strings.TrimSpace(fm.DeadLine) == "" {
		return nil, todo.ErrMissingDeadLine
	}
	if parsed.DeadLine, err = todo.ParseTime(fm.DeadLine, loc); err != nil {
		return nil, err
	}

	return &parsed, nil
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			return strings.Join(lines[:i], "\n"), strings.Join(lines[i+1:], "\n")
		}
	}
	return content, ""
}

func createTodoTempFile() (*os.File, error) {
	return os.CreateTemp("", "tl-todo-*.md")
}

// EditTodo opens the editor on data and returns the parsed result.
func EditTodo(data TodoData, loc *time.Location) (*ParsedTodo, error) {
	content, err := RenderTodoTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := createTodoTempFile()
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTodoTOML(string(edited), loc)
}

// ToNewTodo converts the parsed result into a todo to create.
func (p *ParsedTodo) ToNewTodo(createdAt time.Time) todo.NewTodo {
	return todo.NewTodo{
		Task:      p.Task,
		Priority:  p.Priority,
		Status:    p.Status,
		DeadLine:  p.DeadLine,
		CreatedAt: createdAt,
	}
}

// ToEditPatch converts the parsed result into a patch that sets every field.
func (p *ParsedTodo) ToEditPatch() todo.EditPatch {
	return todo.EditPatch{
		Task:     todo.StringPtr(p.Task),
		Priority: todo.PriorityPtr(p.Priority),
		Status:   todo.StatusPtr(p.Status),
		DeadLine: todo.TimePtr(p.DeadLine),
	}
}
