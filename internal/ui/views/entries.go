package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/todocmd/internal/models"
	"github.com/tgienger/todocmd/internal/ui/keys"
	"github.com/tgienger/todocmd/internal/ui/styles"
	"github.com/tgienger/todocmd/internal/workspace"
)

// CommitFunc persists a changed workspace
type CommitFunc func(next workspace.Workspace) error

// EntryListView shows the todo entries, optionally limited to one project
type EntryListView struct {
	ws      *workspace.Workspace
	commit  CommitFunc
	project string
	matches []workspace.Match
	styles  *styles.Styles
	keys    keys.KeyMap

	width  int
	height int

	// UI state
	cursor      int
	scrollY     int
	searching   bool
	searchInput textinput.Model
	status      string
	statusErr   bool

	// Read-only breakdown of the selected entry
	viewingEntry bool

	// Delete confirmation
	confirmingDelete bool

	// Help popup (shown with ? at narrow widths)
	showHelpPopup bool
}

// NewEntryListView creates a view over ws. An empty project lists every
// entry.
func NewEntryListView(ws *workspace.Workspace, commit CommitFunc, project string) *EntryListView {
	search := textinput.New()
	search.Placeholder = "Search..."
	search.CharLimit = 100

	v := &EntryListView{
		ws:          ws,
		commit:      commit,
		project:     project,
		styles:      styles.NewStyles(),
		keys:        keys.DefaultKeyMap(),
		searchInput: search,
	}
	v.refresh()
	return v
}

// BackToProjects signals to go back to project list
type BackToProjects struct{}

// EntriesChanged is sent after a successful commit
type EntriesChanged struct{}

func (v *EntryListView) Init() tea.Cmd {
	return nil
}

func (v *EntryListView) query() workspace.Query {
	q := workspace.Query{Words: strings.Fields(v.searchInput.Value())}
	if v.project != "" {
		q.Projects = []string{v.project}
	}
	return q
}

func (v *EntryListView) refresh() {
	v.matches = workspace.Filter(v.ws.Todo, v.query())
	if v.cursor >= len(v.matches) {
		v.cursor = max(0, len(v.matches)-1)
	}
	v.ensureVisible()
}

func (v *EntryListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.searchInput.Width = clamp(styles.ContentWidth(v.width)-12, 10, 40)
		v.ensureVisible()
		return v, nil

	case tea.KeyMsg:
		// Handle help popup first - any key closes it
		if v.showHelpPopup {
			v.showHelpPopup = false
			return v, nil
		}

		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}

		if v.viewingEntry {
			if key.Matches(msg, v.keys.Back) || key.Matches(msg, v.keys.Enter) {
				v.viewingEntry = false
			}
			return v, nil
		}

		if v.searching {
			return v.updateSearch(msg)
		}

		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *EntryListView) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back), key.Matches(msg, v.keys.Enter):
		v.searching = false
		v.searchInput.Blur()
		return v, nil
	}
	var cmd tea.Cmd
	v.searchInput, cmd = v.searchInput.Update(msg)
	v.refresh()
	return v, cmd
}

func (v *EntryListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit
	case key.Matches(msg, v.keys.Back):
		return v, func() tea.Msg { return BackToProjects{} }
	case key.Matches(msg, v.keys.Help):
		v.showHelpPopup = true
	case key.Matches(msg, v.keys.Search):
		v.searching = true
		return v, v.searchInput.Focus()
	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
			v.ensureVisible()
		}
	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.matches)-1 {
			v.cursor++
			v.ensureVisible()
		}
	case key.Matches(msg, v.keys.Enter):
		if len(v.matches) > 0 {
			v.viewingEntry = true
		}
	case key.Matches(msg, v.keys.Complete):
		if m, ok := v.selected(); ok {
			return v, v.apply(func(w workspace.Workspace) (workspace.Workspace, error) {
				return w.Complete(m.Index)
			}, "completed")
		}
	case key.Matches(msg, v.keys.Delete):
		if len(v.matches) > 0 {
			v.confirmingDelete = true
		}
	}
	return v, nil
}

func (v *EntryListView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.confirmingDelete = false
		if m, ok := v.selected(); ok {
			return v, v.apply(func(w workspace.Workspace) (workspace.Workspace, error) {
				return w.Remove(m.Index)
			}, "deleted")
		}
	case "n", "N", "esc":
		v.confirmingDelete = false
	}
	return v, nil
}

func (v *EntryListView) selected() (workspace.Match, bool) {
	if v.cursor < 0 || v.cursor >= len(v.matches) {
		return workspace.Match{}, false
	}
	return v.matches[v.cursor], true
}

// apply runs op on the current workspace and commits the result
func (v *EntryListView) apply(op func(workspace.Workspace) (workspace.Workspace, error), verb string) tea.Cmd {
	m, _ := v.selected()
	next, err := op(*v.ws)
	if err == nil {
		err = v.commit(next)
	}
	if err != nil {
		v.status = "Error: " + err.Error()
		v.statusErr = true
		return nil
	}
	v.status = fmt.Sprintf("%s: %s", verb, m.Entry.String())
	v.statusErr = false
	v.refresh()
	return func() tea.Msg { return EntriesChanged{} }
}

// ensureVisible keeps the cursor inside the scrolled window
func (v *EntryListView) ensureVisible() {
	visible := v.visibleItems()
	if v.cursor < v.scrollY {
		v.scrollY = v.cursor
	}
	if v.cursor >= v.scrollY+visible {
		v.scrollY = v.cursor - visible + 1
	}
	if v.scrollY < 0 {
		v.scrollY = 0
	}
}

func (v *EntryListView) visibleItems() int {
	return max(v.height-10, 1)
}

// View renders the view
func (v *EntryListView) View() string {
	if v.showHelpPopup {
		return v.renderHelpPopup()
	}

	if v.confirmingDelete {
		return v.renderDeleteConfirm()
	}

	if v.viewingEntry {
		return v.renderEntryView()
	}

	var b strings.Builder
	b.WriteString(v.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(v.renderEntryList())
	b.WriteString("\n")
	if v.status != "" {
		statusStyle := v.styles.TitleMuted
		if v.statusErr {
			statusStyle = v.styles.Error
		}
		b.WriteString(statusStyle.Render(v.status))
		b.WriteString("\n")
	}
	b.WriteString(v.renderHelp())

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *EntryListView) renderHeader() string {
	s := v.styles

	titleText := "All tasks"
	if v.project != "" {
		titleText = "+" + v.project
	}
	title := s.Title.Render(fmt.Sprintf("%s (%d)", titleText, len(v.matches)))

	searchStyle := s.Input
	if v.searching {
		searchStyle = s.InputFocused
	}
	searchBox := searchStyle.Render(v.searchInput.View())

	return lipgloss.JoinVertical(lipgloss.Left, title, searchBox)
}

func (v *EntryListView) renderEntryList() string {
	s := v.styles

	if len(v.matches) == 0 {
		return s.TitleMuted.Render("Nothing to do.")
	}

	width := styles.ContentWidth(v.width) - 2
	end := min(v.scrollY+v.visibleItems(), len(v.matches))

	var items []string
	for i := v.scrollY; i < end; i++ {
		m := v.matches[i]
		line := s.EntryIndex.Render(fmt.Sprintf("%d", m.Index)) + s.RenderEntry(m.Entry)
		if i == v.cursor {
			line = s.ListSelected.Padding(0).Width(max(width, 20)).Render(line)
		}
		items = append(items, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func (v *EntryListView) renderEntryView() string {
	m, ok := v.selected()
	if !ok {
		return ""
	}
	s := v.styles

	rows := []string{
		s.Title.MarginBottom(1).Render(fmt.Sprintf("Task %d", m.Index)),
		s.RenderEntry(m.Entry),
		"",
	}
	for _, el := range m.Entry.Elements {
		label := s.TitleMuted.Width(12).Render(el.Kind().String())
		rows = append(rows, label+s.Elements[el.Kind()].Render(describe(el)))
	}
	rows = append(rows, "", s.Help.Render(s.HelpKey.Render("esc")+" back"))

	padded := lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return styles.CenterView(padded, v.width, v.height)
}

// describe spells out the payload of an element for the detail view
func describe(el models.Element) string {
	switch el := el.(type) {
	case models.Recurrence:
		unit := map[models.RecurrenceUnit]string{
			models.UnitDay:         "day",
			models.UnitBusinessDay: "business day",
			models.UnitWeek:        "week",
			models.UnitMonth:       "month",
			models.UnitYear:        "year",
		}[el.Unit]
		if el.Count != 1 {
			unit += "s"
		}
		from := "completion"
		if el.Plus {
			from = "due date"
		}
		return fmt.Sprintf("every %d %s from %s", el.Count, unit, from)
	case models.Text:
		return el.Content
	default:
		return models.Value(el)
	}
}

func (v *EntryListView) renderHelp() string {
	contentWidth := styles.ContentWidth(v.width)
	// At narrow widths, show hint to press ? for help
	if contentWidth > 0 && contentWidth < 50 {
		return v.styles.Help.Render(v.styles.HelpKey.Render("?") + " help")
	}

	return v.styles.Help.Render(
		fmt.Sprintf("%s view • %s done • %s del • %s search • %s back • %s quit",
			v.styles.HelpKey.Render("↵"),
			v.styles.HelpKey.Render("x"),
			v.styles.HelpKey.Render("d"),
			v.styles.HelpKey.Render("/"),
			v.styles.HelpKey.Render("esc"),
			v.styles.HelpKey.Render("q"),
		),
	)
}

func (v *EntryListView) renderHelpPopup() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	helpItems := []string{
		s.HelpItem("↵", "view task"),
		s.HelpItem("x", "complete task"),
		s.HelpItem("d", "delete task"),
		s.HelpItem("/", "search"),
		s.HelpItem("esc", "back"),
		s.HelpItem("q", "quit"),
		"",
		s.TitleMuted.Render("Press any key to close"),
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{s.Title.Render("Keyboard Shortcuts"), ""}, helpItems...)...,
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.FilterBar.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *EntryListView) renderDeleteConfirm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	target := ""
	if m, ok := v.selected(); ok {
		target = m.Entry.String()
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render("Delete Task?"),
		"",
		s.TitleMuted.Render(target),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Yes "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}
