package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/tgienger/todocmd/internal/db"
	"github.com/tgienger/todocmd/internal/ui/views"
	"github.com/tgienger/todocmd/internal/workspace"
)

const lastProjectKey = "last_project"

// Currently active view
type View int

const (
	ViewProjects View = iota
	ViewEntries
)

type App struct {
	db          *db.DB
	ws          *workspace.Workspace
	sink        workspace.Sink
	logger      *log.Logger
	currentView View
	projectList *views.ProjectListView
	entryList   *views.EntryListView
	width       int
	height      int
}

// Creates a new application
func NewApp(database *db.DB, ws *workspace.Workspace, sink workspace.Sink, logger *log.Logger) *App {
	return &App{
		db:          database,
		ws:          ws,
		sink:        sink,
		logger:      logger,
		currentView: ViewProjects,
		projectList: views.NewProjectListView(database),
	}
}

func (a *App) Init() tea.Cmd {
	// Reopen the last project if it still exists
	last, err := a.db.GetSetting(lastProjectKey)
	if err == nil && last != "" {
		for _, name := range a.ws.Todo.Projects() {
			if name == last {
				return a.openProject(last)
			}
		}
	}

	return a.projectList.Init()
}

// Commit saves next, makes it current and reindexes it
func (a *App) Commit(next workspace.Workspace) error {
	if err := next.Save(a.sink); err != nil {
		return err
	}
	*a.ws = next
	if err := a.db.Sync(db.ListTodo, next.Todo); err != nil {
		a.logger.Warn("failed to reindex todo list", "err", err)
	}
	if err := a.db.Sync(db.ListDone, next.Done); err != nil {
		a.logger.Warn("failed to reindex done list", "err", err)
	}
	return nil
}

func (a *App) openProject(name string) tea.Cmd {
	a.currentView = ViewEntries
	a.entryList = views.NewEntryListView(a.ws, a.Commit, name)

	if err := a.db.SetSetting(lastProjectKey, name); err != nil {
		a.logger.Debug("failed to remember project", "err", err)
	}

	// Initialize entry list with window size
	return tea.Batch(
		a.entryList.Init(),
		func() tea.Msg {
			return tea.WindowSizeMsg{Width: a.width, Height: a.height}
		},
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Always update project list size since it persists
		a.projectList.Update(msg)

	case views.SelectedProject:
		return a, a.openProject(msg.Name)

	case views.BackToProjects:
		a.currentView = ViewProjects
		a.db.SetSetting(lastProjectKey, "")
		return a, tea.Batch(
			a.projectList.Init(),
			func() tea.Msg {
				return tea.WindowSizeMsg{Width: a.width, Height: a.height}
			},
		)

	case views.EntriesChanged:
		// project counts are stale
		return a, a.projectList.Init()

	case error:
		a.logger.Error("ui", "err", msg)
		return a, nil
	}

	var cmd tea.Cmd
	switch a.currentView {
	case ViewProjects:
		_, cmd = a.projectList.Update(msg)
	case ViewEntries:
		_, cmd = a.entryList.Update(msg)
	}

	return a, cmd
}

func (a *App) View() string {
	switch a.currentView {
	case ViewEntries:
		if a.entryList != nil {
			return a.entryList.View()
		}
	}
	return a.projectList.View()
}
