package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tgienger/todocmd/internal/models"
	"github.com/tgienger/todocmd/internal/todotxt"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := Open(filepath.Join(t.TempDir(), "index", "index.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func syncLists(t *testing.T, database *DB, todo, done string) {
	t.Helper()
	if err := database.Sync(ListTodo, todotxt.ParseCollection(todo)); err != nil {
		t.Fatalf("Sync todo failed: %v", err)
	}
	if err := database.Sync(ListDone, todotxt.ParseCollection(done)); err != nil {
		t.Fatalf("Sync done failed: %v", err)
	}
}

func TestNewUsesDataHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	database, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer database.Close()

	if _, err := os.Stat(filepath.Join(dir, "todocmd", "index.db")); err != nil {
		t.Errorf("index not created under XDG_DATA_HOME: %v", err)
	}
}

func TestSettings(t *testing.T) {
	database := openTestDB(t)

	v, err := database.GetSetting("last_project")
	if err != nil || v != "" {
		t.Fatalf("GetSetting on empty = %q, %v", v, err)
	}
	if err := database.SetSetting("last_project", "Garden"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := database.SetSetting("last_project", "Home"); err != nil {
		t.Fatalf("SetSetting update failed: %v", err)
	}
	if v, _ := database.GetSetting("last_project"); v != "Home" {
		t.Errorf("GetSetting = %q, want Home", v)
	}
}

func TestSyncAndSummaries(t *testing.T) {
	database := openTestDB(t)
	syncLists(t, database,
		"fix fence +Garden @home\nwater +Garden +Garden\ncall mom +Family @phone\n",
		"weed +Garden\nbuy seeds +Shop @town\n",
	)

	projects, err := database.ListProjects()
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	want := []models.Summary{
		{Kind: models.KindProject, Name: "Garden", Open: 2, Done: 1},
		{Kind: models.KindProject, Name: "Family", Open: 1, Done: 0},
		{Kind: models.KindProject, Name: "Shop", Open: 0, Done: 1},
	}
	if len(projects) != len(want) {
		t.Fatalf("got %d projects: %+v", len(projects), projects)
	}
	for i := range want {
		if projects[i] != want[i] {
			t.Errorf("project %d = %+v, want %+v", i, projects[i], want[i])
		}
	}

	contexts, err := database.ListContexts()
	if err != nil {
		t.Fatalf("ListContexts failed: %v", err)
	}
	if len(contexts) != 3 || contexts[0].Name != "home" {
		t.Errorf("contexts = %+v", contexts)
	}
}

func TestSyncReplacesList(t *testing.T) {
	database := openTestDB(t)
	syncLists(t, database, "a +P\nb +P\n", "c +P\n")
	syncLists(t, database, "b +P\n", "c +P\na +P\n")

	if n, _ := database.EntryCount(ListTodo); n != 1 {
		t.Errorf("todo count = %d, want 1", n)
	}
	if n, _ := database.EntryCount(ListDone); n != 2 {
		t.Errorf("done count = %d, want 2", n)
	}

	entries, err := database.EntriesTagged(models.KindProject, "P")
	if err != nil {
		t.Fatalf("EntriesTagged failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries", len(entries))
	}
	if entries[0].List != ListTodo || entries[0].Raw != "b +P" || entries[0].Position != 1 {
		t.Errorf("first entry = %+v", entries[0])
	}
	if entries[2].List != ListDone || entries[2].Raw != "a +P" || entries[2].Position != 2 {
		t.Errorf("last entry = %+v", entries[2])
	}
}

func TestEntriesTaggedByDate(t *testing.T) {
	database := openTestDB(t)
	syncLists(t, database, "pay rent due:2024-02-01\nfile taxes t:2024-02-01\n", "")

	entries, err := database.EntriesTagged(models.KindDue, "2024-02-01")
	if err != nil {
		t.Fatalf("EntriesTagged failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Raw != "pay rent due:2024-02-01" {
		t.Errorf("entries = %+v", entries)
	}
}
