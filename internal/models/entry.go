package models

import "strings"

// Entry is one task line decomposed into elements, in source order.
// Raw is the line the entry was parsed from; it is empty for entries built
// in code.
type Entry struct {
	Elements []Element
	Raw      string
}

// String renders the entry as a todo.txt line. A parsed entry renders as
// its source line, so unchanged lines are written back byte for byte.
func (e Entry) String() string {
	if e.Raw != "" {
		return e.Raw
	}
	parts := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		parts[i] = el.String()
	}
	return strings.Join(parts, " ")
}

// Equal reports whether both entries hold equal elements in the same order.
// Raw is not compared.
func (e Entry) Equal(o Entry) bool {
	if len(e.Elements) != len(o.Elements) {
		return false
	}
	for i := range e.Elements {
		if e.Elements[i] != o.Elements[i] {
			return false
		}
	}
	return true
}

// Projects returns the project names of the entry in order.
func (e Entry) Projects() []string {
	var names []string
	for _, el := range e.Elements {
		if p, ok := el.(Project); ok {
			names = append(names, p.Name)
		}
	}
	return names
}

// Contexts returns the context names of the entry in order.
func (e Entry) Contexts() []string {
	var names []string
	for _, el := range e.Elements {
		if c, ok := el.(Context); ok {
			names = append(names, c.Name)
		}
	}
	return names
}

// HasProject reports whether the entry is tagged +name.
func (e Entry) HasProject(name string) bool {
	for _, el := range e.Elements {
		if el == (Project{Name: name}) {
			return true
		}
	}
	return false
}

// HasContext reports whether the entry is tagged @name.
func (e Entry) HasContext(name string) bool {
	for _, el := range e.Elements {
		if el == (Context{Name: name}) {
			return true
		}
	}
	return false
}

// Due returns the first due date of the entry.
func (e Entry) Due() (Date, bool) {
	for _, el := range e.Elements {
		if d, ok := el.(Due); ok {
			return d.Date, true
		}
	}
	return Date{}, false
}

// Threshold returns the first threshold date of the entry.
func (e Entry) Threshold() (Date, bool) {
	for _, el := range e.Elements {
		if t, ok := el.(Threshold); ok {
			return t.Date, true
		}
	}
	return Date{}, false
}

// Recurrence returns the first recurrence rule of the entry.
func (e Entry) Recurrence() (Recurrence, bool) {
	for _, el := range e.Elements {
		if r, ok := el.(Recurrence); ok {
			return r, true
		}
	}
	return Recurrence{}, false
}

// Text joins the plain text tokens of the entry with single spaces.
func (e Entry) Text() string {
	var words []string
	for _, el := range e.Elements {
		if t, ok := el.(Text); ok {
			words = append(words, t.Content)
		}
	}
	return strings.Join(words, " ")
}

// Collection is the ordered list of entries of one todo.txt file
type Collection struct {
	Entries []Entry
}

func (c Collection) Len() int { return len(c.Entries) }

// String renders the collection as file content, one entry per line.
func (c Collection) String() string {
	if len(c.Entries) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range c.Entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (c Collection) Equal(o Collection) bool {
	if len(c.Entries) != len(o.Entries) {
		return false
	}
	for i := range c.Entries {
		if !c.Entries[i].Equal(o.Entries[i]) {
			return false
		}
	}
	return true
}

// Projects returns the distinct project names in first-seen order.
func (c Collection) Projects() []string {
	return c.distinct(Entry.Projects)
}

// Contexts returns the distinct context names in first-seen order.
func (c Collection) Contexts() []string {
	return c.distinct(Entry.Contexts)
}

func (c Collection) distinct(names func(Entry) []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range c.Entries {
		for _, n := range names(e) {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}

// Summary aggregates the entries tagged with one project or context
type Summary struct {
	Kind Kind
	Name string
	Open int
	Done int
}

// IndexedEntry is an entry as stored in the index
type IndexedEntry struct {
	ID       int64
	List     string
	Position int
	Raw      string
}
