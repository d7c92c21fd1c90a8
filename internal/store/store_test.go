package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tgienger/todocmd/internal/todotxt"
	"github.com/tgienger/todocmd/internal/workspace"
)

var (
	_ workspace.Source = (*FileStore)(nil)
	_ workspace.Sink   = (*FileStore)(nil)
)

func TestReadMissingFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "todo.txt"), filepath.Join(dir, "done.txt"), nil)

	todo, err := s.ReadTodo()
	if err != nil || todo != "" {
		t.Errorf("ReadTodo() = %q, %v", todo, err)
	}
	done, err := s.ReadDone()
	if err != nil || done != "" {
		t.Errorf("ReadDone() = %q, %v", done, err)
	}
}

func TestWriteThenRead(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "lists", "todo.txt"), filepath.Join(dir, "lists", "done.txt"), nil)

	todo := todotxt.ParseCollection("call mom @phone\n+Garden water plants rec:+1w\n")
	done := todotxt.ParseCollection("pay rent due:2024-01-01\n")

	if err := s.Write(todo, done); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := s.ReadTodo()
	if err != nil {
		t.Fatalf("ReadTodo failed: %v", err)
	}
	if got != todo.String() {
		t.Errorf("ReadTodo() = %q, want %q", got, todo.String())
	}
	got, err = s.ReadDone()
	if err != nil {
		t.Fatalf("ReadDone failed: %v", err)
	}
	if got != "pay rent due:2024-01-01\n" {
		t.Errorf("ReadDone() = %q", got)
	}

	entries, err := os.ReadDir(filepath.Join(dir, "lists"))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected only the two list files, found %d entries", len(entries))
	}
}

func TestWorkspaceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	todoPath := filepath.Join(dir, "todo.txt")
	if err := os.WriteFile(todoPath, []byte("one +a\n\ntwo @b\n"), 0644); err != nil {
		t.Fatal(err)
	}
	s := New(todoPath, filepath.Join(dir, "done.txt"), nil)

	w, err := workspace.Load(s)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	next, err := w.Complete(1)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if err := next.Save(s); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := workspace.Load(s)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Todo.String() != "two @b\n" || reloaded.Done.String() != "one +a\n" {
		t.Errorf("got todo %q, done %q", reloaded.Todo.String(), reloaded.Done.String())
	}
}
