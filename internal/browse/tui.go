// Package browse implements `tl browse`, a terminal browser over a todo
// session.
//
// The browser finds its session in the context passed to Run, reads the
// derived view from it and changes state only through Dispatch. OnChange is
// subscribed to the session, and the CLI uses it to persist state.
package browse

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/amonks/tasklist/internal/state"
	"github.com/amonks/tasklist/internal/ui"
	"github.com/amonks/tasklist/todo"
)

// Options configures the browser.
type Options struct {
	// Now is used to render relative deadlines. Defaults to time.Now.
	Now func() time.Time

	// OnChange is called after every dispatch with the resulting snapshot.
	// An error is shown in the status line and does not stop the browser.
	// An error wrapping state.ErrStateChanged triggers Reload.
	OnChange func(todo.Snapshot) error

	// Reload returns a fresh session over the persisted state. It backs the
	// r key. If nil, reloading is unavailable.
	Reload func() (*todo.Session, error)
}

// saver subscribes OnChange to a session and keeps the error from the most
// recent call.
type saver struct {
	onChange    func(todo.Snapshot) error
	err         error
	unsubscribe func()
}

func (s *saver) attach(session *todo.Session) {
	s.detach()
	s.unsubscribe = session.Subscribe(func(snapshot todo.Snapshot) {
		s.err = s.onChange(snapshot)
	})
}

func (s *saver) detach() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
)

type model struct {
	session     *todo.Session
	saver       *saver
	reload      func() (*todo.Session, error)
	now         func() time.Time
	width       int
	height      int
	todoList    list.Model
	snapshot    todo.Snapshot
	selectedID  int
	showHelp    bool
	status      string
	statusLevel statusLevel
}

// Run opens the browser over the session installed in ctx with
// todo.WithSession and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	session, err := todo.SessionFromContext(ctx)
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	m := newModel(session, opts)
	if m.saver != nil {
		defer m.saver.detach()
	}
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	return err
}

func newModel(session *todo.Session, opts Options) model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	todoList := list.New(nil, newTodoItemDelegate(now), 0, 0)
	todoList.SetShowTitle(false)
	todoList.SetShowStatusBar(false)
	todoList.SetFilteringEnabled(false)
	todoList.SetShowHelp(false)
	todoList.SetShowPagination(false)

	m := model{
		session:  session,
		reload:   opts.Reload,
		now:      now,
		todoList: todoList,
	}
	if opts.OnChange != nil {
		m.saver = &saver{onChange: opts.OnChange}
		m.saver.attach(session)
	}
	m.refresh(session.Snapshot())
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.showHelp {
		switch key {
		case "?", "esc":
			m.showHelp = false
		case "ctrl+c", "q":
			return m, tea.Quit
		}
		return m, nil
	}

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "?":
		m.showHelp = true
	case "up", "k":
		m.moveSelection(-1)
	case "down", "j":
		m.moveSelection(1)
	case "home", "g":
		m.moveSelection(-len(m.todoList.Items()))
	case "end", "G":
		m.moveSelection(len(m.todoList.Items()))
	case " ":
		m.cycleStatus()
	case "x":
		m.removeSelected()
	case "s":
		m.cycleSortKey()
	case "o":
		m.toggleOrder()
	case "p":
		m.cyclePriorityFilter()
	case "K":
		m.moveTodo(-1)
	case "J":
		m.moveTodo(1)
	case "r":
		m.reloadFromDisk()
	}
	return m, nil
}

// dispatch applies action through the session and refreshes the list from
// the resulting snapshot.
func (m *model) dispatch(action todo.Action, message string) {
	if m.saver != nil {
		m.saver.err = nil
	}
	snapshot := m.session.Dispatch(action)
	m.refresh(snapshot)
	m.setStatus(message, statusInfo)
	if m.saver == nil || m.saver.err == nil {
		return
	}

	err := m.saver.err
	if !errors.Is(err, state.ErrStateChanged) || m.reload == nil {
		m.setStatus(fmt.Sprintf("Save failed: %v", err), statusError)
		return
	}
	if err := m.replaceSession(); err != nil {
		m.setStatus(fmt.Sprintf("Reload failed: %v", err), statusError)
		return
	}
	m.setStatus("Todos changed outside the browser; reloaded and discarded the last change", statusError)
}

func (m *model) reloadFromDisk() {
	if m.reload == nil {
		return
	}
	if err := m.replaceSession(); err != nil {
		m.setStatus(fmt.Sprintf("Reload failed: %v", err), statusError)
		return
	}
	m.setStatus(fmt.Sprintf("Reloaded %d todos", len(m.snapshot.State.Todos)), statusInfo)
}

// replaceSession swaps in a fresh session from Reload and moves the OnChange
// subscription over to it.
func (m *model) replaceSession() error {
	session, err := m.reload()
	if err != nil {
		return err
	}
	m.session = session
	if m.saver != nil {
		m.saver.attach(session)
	}
	m.refresh(session.Snapshot())
	return nil
}

func (m *model) refresh(snapshot todo.Snapshot) {
	m.snapshot = snapshot
	previous := m.todoList.Index()

	items := make([]list.Item, 0, len(snapshot.View))
	selected := -1
	for i, item := range snapshot.View {
		items = append(items, todoItem{todo: item})
		if item.ID == m.selectedID {
			selected = i
		}
	}
	m.todoList.SetItems(items)

	if len(items) == 0 {
		m.selectedID = 0
		return
	}
	if selected < 0 {
		selected = min(max(previous, 0), len(items)-1)
	}
	m.todoList.Select(selected)
	m.selectedID = snapshot.View[selected].ID
}

func (m *model) moveSelection(delta int) {
	items := m.todoList.Items()
	if len(items) == 0 {
		return
	}
	next := min(max(m.todoList.Index()+delta, 0), len(items)-1)
	m.todoList.Select(next)
	if item, ok := m.currentTodo(); ok {
		m.selectedID = item.ID
	}
}

func (m model) currentTodo() (todo.Todo, bool) {
	item := m.todoList.SelectedItem()
	if item == nil {
		return todo.Todo{}, false
	}
	current, ok := item.(todoItem)
	return current.todo, ok
}

func (m *model) cycleStatus() {
	item, ok := m.currentTodo()
	if !ok {
		return
	}
	next := item.Status.Next()
	m.dispatch(todo.SetStatus{ID: item.ID, Status: next}, fmt.Sprintf("Todo %d is %s", item.ID, next))
}

func (m *model) removeSelected() {
	item, ok := m.currentTodo()
	if !ok {
		return
	}
	m.selectedID = 0
	m.dispatch(todo.Remove{ID: item.ID}, fmt.Sprintf("Removed todo %d", item.ID))
}

func (m *model) cycleSortKey() {
	current := m.snapshot.State.Sort
	keys := todo.ValidSortKeys()
	next := keys[(slices.Index(keys, current.SortBy)+1)%len(keys)]
	m.dispatch(todo.Sort{Options: todo.SortOptions{SortBy: next, Order: current.Order}}, "Sort by "+next.String())
}

func (m *model) toggleOrder() {
	current := m.snapshot.State.Sort
	order := todo.OrderDesc
	if current.Order == todo.OrderDesc {
		order = todo.OrderAsc
	}
	m.dispatch(todo.Sort{Options: todo.SortOptions{SortBy: current.SortBy, Order: order}}, "Order "+string(order))
}

// priorityFilterCycle is the sequence stepped through by the p key.
// An empty selection shows every priority.
var priorityFilterCycle = [][]todo.Priority{
	{},
	{todo.PriorityHigh},
	{todo.PriorityMedium},
	{todo.PriorityLow},
}

func (m *model) cyclePriorityFilter() {
	current := m.snapshot.State.Filters.Priority
	next := priorityFilterCycle[0]
	for i, step := range priorityFilterCycle {
		if slices.Equal(step, current) {
			next = priorityFilterCycle[(i+1)%len(priorityFilterCycle)]
			break
		}
	}
	m.dispatch(todo.Filter{Patch: todo.FilterPatch{Priority: todo.Priorities(next...)}}, "Priority filter: "+describePriorities(next))
}

// moveTodo swaps the selected todo with its neighbor in canonical order.
func (m *model) moveTodo(delta int) {
	item, ok := m.currentTodo()
	if !ok {
		return
	}
	todos := m.snapshot.State.Todos
	index := slices.IndexFunc(todos, func(t todo.Todo) bool { return t.ID == item.ID })
	target := index + delta
	if index < 0 || target < 0 || target >= len(todos) {
		return
	}
	reordered := slices.Clone(todos)
	reordered[index], reordered[target] = reordered[target], reordered[index]

	direction := "down"
	if delta < 0 {
		direction = "up"
	}
	m.dispatch(todo.Reorder{Todos: reordered}, fmt.Sprintf("Moved todo %d %s", item.ID, direction))
}

func (m *model) resize() {
	contentHeight := max(m.height-3, 1)
	leftWidth, _ := splitWidths(m.width)
	m.todoList.SetSize(max(leftWidth-4, 1), max(contentHeight-2, 1))
}

func splitWidths(width int) (int, int) {
	left := width * 3 / 5
	if left < 30 {
		left = 30
	}
	if left > width-20 {
		left = width / 2
	}
	right := width - left
	if right < 20 {
		right = 20
		left = width - right
	}
	return left, right
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading todos..."
	}
	if m.showHelp {
		modal := lipgloss.NewStyle().Border(borderASCII).Padding(1, 2).Render(helpContent())
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	}

	contentHeight := max(m.height-3, 1)
	leftWidth, rightWidth := splitWidths(m.width)

	listContent := m.todoList.View()
	if len(m.todoList.Items()) == 0 {
		listContent = valueMuted.Render("No todos found.")
	}
	listPane := paneStyle.Width(max(leftWidth-2, 0)).Height(contentHeight).Render(listContent)
	detailPane := paneStyle.Width(max(rightWidth-2, 0)).Height(contentHeight).Render(m.detailView(max(rightWidth-4, 1)))
	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)

	return strings.Join([]string{m.renderTitle(), content, m.renderSelectionLine(), m.renderStatusLine()}, "\n")
}

func (m model) renderTitle() string {
	title := titleStyle.Render("tasklist")
	hint := valueMuted.Render("Press ? for help")
	spacer := strings.Repeat(" ", max(m.width-lipgloss.Width(title)-lipgloss.Width(hint), 1))
	return titleBarStyle.Width(m.width).Render(title + spacer + hint)
}

func (m model) detailView(width int) string {
	item, ok := m.currentTodo()
	if !ok {
		return valueMuted.Render("Nothing selected")
	}
	now := m.now()
	lines := []string{
		labelStyle.Render(fmt.Sprintf("Todo %d", item.ID)),
		"",
		wordwrap.String(item.Task, width),
		"",
		labelStyle.Render("Priority: ") + string(item.Priority),
		labelStyle.Render("Status:   ") + string(item.Status),
		labelStyle.Render("Due:      ") + ui.FormatTimestamp(item.DeadLine) + " (" + ui.FormatDueShort(item.DeadLine, now) + ")",
		labelStyle.Render("Created:  ") + ui.FormatTimeAgo(item.CreatedAt, now),
		labelStyle.Render("Updated:  ") + ui.FormatTimeAgo(item.UpdatedAt, now),
	}
	return strings.Join(lines, "\n")
}

// renderSelectionLine summarizes the active filter and sort.
func (m model) renderSelectionLine() string {
	state := m.snapshot.State
	sort := "none"
	if state.Sort.SortBy != todo.SortNone {
		sort = state.Sort.SortBy.String() + " " + string(state.Sort.Order)
	}
	text := fmt.Sprintf("filter: priority=%s | sort: %s | showing %d of %d",
		describePriorities(state.Filters.Priority), sort, len(m.snapshot.View), len(state.Todos))
	return valueMuted.Render(text)
}

func (m model) renderStatusLine() string {
	if strings.TrimSpace(m.status) == "" {
		return ""
	}
	style := valueMuted
	if m.statusLevel == statusError {
		style = statusErrorStyle
	} else if m.statusLevel == statusInfo {
		style = statusSuccessStyle
	}
	return style.Render(m.status)
}

func (m *model) setStatus(text string, level statusLevel) {
	m.status = text
	m.statusLevel = level
}

func describePriorities(priorities []todo.Priority) string {
	if len(priorities) == 0 {
		return "all"
	}
	names := make([]string, 0, len(priorities))
	for _, p := range priorities {
		names = append(names, string(p))
	}
	return strings.Join(names, ",")
}

func helpContent() string {
	sections := []string{
		labelStyle.Render("Navigation"),
		"up/down or j/k: move selection",
		"home/end or g/G: first/last todo",
		"",
		labelStyle.Render("Todo"),
		"space: cycle status",
		"x: remove todo",
		"K/J: move todo up/down",
		"",
		labelStyle.Render("View"),
		"s: cycle sort key",
		"o: toggle ascending/descending",
		"p: cycle priority filter",
		"r: reload from disk",
		"",
		labelStyle.Render("Help"),
		"?: toggle help",
		"q or ctrl+c: quit",
	}
	return strings.Join(sections, "\n")
}
