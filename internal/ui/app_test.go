package ui

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/tgienger/todocmd/internal/db"
	"github.com/tgienger/todocmd/internal/models"
	"github.com/tgienger/todocmd/internal/todotxt"
	"github.com/tgienger/todocmd/internal/ui/views"
	"github.com/tgienger/todocmd/internal/workspace"
)

type recordingSink struct {
	writes int
	todo   models.Collection
}

func (s *recordingSink) Write(todo, done models.Collection) error {
	s.writes++
	s.todo = todo
	return nil
}

func newTestApp(t *testing.T, todo string) (*App, *workspace.Workspace, *recordingSink, *db.DB) {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "index.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	ws := &workspace.Workspace{Todo: todotxt.ParseCollection(todo)}
	if err := database.Sync(db.ListTodo, ws.Todo); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	sink := &recordingSink{}
	return NewApp(database, ws, sink, log.New(io.Discard)), ws, sink, database
}

func TestCommitSavesAndReindexes(t *testing.T) {
	app, ws, sink, database := newTestApp(t, "a +Garden\nb +Garden\n")

	next, err := ws.Complete(1)
	if err != nil {
		t.Fatal(err)
	}
	if err := app.Commit(next); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	if sink.writes != 1 || sink.todo.String() != "b +Garden\n" {
		t.Errorf("sink got %d writes, todo %q", sink.writes, sink.todo.String())
	}
	if ws.Done.String() != "a +Garden\n" {
		t.Errorf("workspace not updated: done = %q", ws.Done.String())
	}

	projects, err := database.ListProjects()
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 1 || projects[0].Open != 1 || projects[0].Done != 1 {
		t.Errorf("projects = %+v", projects)
	}
}

func TestSelectProjectSwitchesView(t *testing.T) {
	app, _, _, database := newTestApp(t, "a +Garden\n")

	app.Update(views.SelectedProject{Name: "Garden"})
	if app.currentView != ViewEntries || app.entryList == nil {
		t.Fatal("expected entries view")
	}
	if v, _ := database.GetSetting(lastProjectKey); v != "Garden" {
		t.Errorf("last project = %q", v)
	}

	app.Update(views.BackToProjects{})
	if app.currentView != ViewProjects {
		t.Error("expected projects view")
	}
}

func TestInitReopensLastProject(t *testing.T) {
	app, _, _, database := newTestApp(t, "a +Garden\n")
	if err := database.SetSetting(lastProjectKey, "Garden"); err != nil {
		t.Fatal(err)
	}
	app.Init()
	if app.currentView != ViewEntries {
		t.Error("expected the last project to reopen")
	}
}
