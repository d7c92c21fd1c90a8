// Package workspace holds the todo and done collections of one run and the
// operations the command line applies to them.
package workspace

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/tgienger/todocmd/internal/models"
	"github.com/tgienger/todocmd/internal/todotxt"
)

// ErrNoSuchEntry is returned when an entry index is out of range
var ErrNoSuchEntry = errors.New("no such entry")

// Source supplies the raw text of the todo and done files
type Source interface {
	ReadTodo() (string, error)
	ReadDone() (string, error)
}

// Sink accepts the collections to write back
type Sink interface {
	Write(todo, done models.Collection) error
}

// Workspace is the parsed todo and done lists
type Workspace struct {
	Todo models.Collection
	Done models.Collection
}

// Load reads both lists from src and parses them.
func Load(src Source) (*Workspace, error) {
	todo, err := src.ReadTodo()
	if err != nil {
		return nil, fmt.Errorf("read todo list: %w", err)
	}
	done, err := src.ReadDone()
	if err != nil {
		return nil, fmt.Errorf("read done list: %w", err)
	}
	return &Workspace{
		Todo: todotxt.ParseCollection(todo),
		Done: todotxt.ParseCollection(done),
	}, nil
}

// Save hands both lists to sink.
func (w *Workspace) Save(sink Sink) error {
	return sink.Write(w.Todo, w.Done)
}

// Add parses line and appends it to the todo list. A line without tokens
// leaves the workspace unchanged.
func (w Workspace) Add(line string) Workspace {
	entry := todotxt.ParseEntry(strings.TrimSpace(line))
	if len(entry.Elements) == 0 {
		return w
	}
	return w.Append(entry)
}

// Append adds entries to the end of the todo list.
func (w Workspace) Append(entries ...models.Entry) Workspace {
	w.Todo.Entries = append(slices.Clip(w.Todo.Entries), entries...)
	return w
}

// Complete moves todo entry index (1-based) to the end of the done list.
func (w Workspace) Complete(index int) (Workspace, error) {
	entry, rest, err := without(w.Todo, index)
	if err != nil {
		return w, err
	}
	w.Todo = rest
	w.Done.Entries = append(slices.Clip(w.Done.Entries), entry)
	return w, nil
}

// Remove drops todo entry index (1-based).
func (w Workspace) Remove(index int) (Workspace, error) {
	_, rest, err := without(w.Todo, index)
	if err != nil {
		return w, err
	}
	w.Todo = rest
	return w, nil
}

func without(c models.Collection, index int) (models.Entry, models.Collection, error) {
	if index < 1 || index > c.Len() {
		return models.Entry{}, c, fmt.Errorf("%w: %d", ErrNoSuchEntry, index)
	}
	entries := make([]models.Entry, 0, c.Len()-1)
	entries = append(entries, c.Entries[:index-1]...)
	entries = append(entries, c.Entries[index:]...)
	return c.Entries[index-1], models.Collection{Entries: entries}, nil
}

// Query selects entries. Every non-empty criterion must hold.
type Query struct {
	Projects  []string
	Contexts  []string
	Words     []string
	DueBefore *models.Date
}

// Match is an entry selected by Filter along with its 1-based line index
type Match struct {
	Index int
	Entry models.Entry
}

// Filter returns the entries of c matching q, in order.
func Filter(c models.Collection, q Query) []Match {
	var out []Match
	for i, e := range c.Entries {
		if q.matches(e) {
			out = append(out, Match{Index: i + 1, Entry: e})
		}
	}
	return out
}

func (q Query) matches(e models.Entry) bool {
	for _, p := range q.Projects {
		if !e.HasProject(p) {
			return false
		}
	}
	for _, c := range q.Contexts {
		if !e.HasContext(c) {
			return false
		}
	}
	if len(q.Words) > 0 {
		text := strings.ToLower(e.Text())
		for _, w := range q.Words {
			if !strings.Contains(text, strings.ToLower(w)) {
				return false
			}
		}
	}
	if q.DueBefore != nil {
		due, ok := e.Due()
		if !ok || !due.Before(*q.DueBefore) {
			return false
		}
	}
	return true
}
