package models

import "testing"

func TestElementString(t *testing.T) {
	tests := []struct {
		el   Element
		want string
	}{
		{Project{Name: "Garden"}, "+Garden"},
		{Project{}, "+"},
		{Context{Name: "home"}, "@home"},
		{Due{Date: Date{Year: 2020, Month: 7, Day: 2}}, "due:2020-07-02"},
		{Threshold{Date: Date{Year: 999, Month: 13, Day: 40}}, "t:0999-13-40"},
		{Recurrence{Plus: true, Count: 1, Unit: UnitWeek}, "rec:+1w"},
		{Recurrence{Count: 10, Unit: UnitBusinessDay}, "rec:10b"},
		{Text{Content: "due:2020-x-22"}, "due:2020-x-22"},
	}
	for _, tt := range tests {
		if got := tt.el.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.el, got, tt.want)
		}
	}
}

func TestElementEquality(t *testing.T) {
	if Element(Project{Name: "Foo"}) == Element(Project{Name: "foo"}) {
		t.Error("project names must compare case-sensitively")
	}
	if Element(Project{Name: "x"}) == Element(Context{Name: "x"}) {
		t.Error("different variants with the same payload must differ")
	}
	d := Date{Year: 2020, Month: 7, Day: 22}
	if Element(Due{Date: d}) == Element(Threshold{Date: d}) {
		t.Error("due and threshold with the same date must differ")
	}
	if Element(Recurrence{Plus: true, Count: 1, Unit: UnitWeek}) != Element(Recurrence{Plus: true, Count: 1, Unit: UnitWeek}) {
		t.Error("identical recurrences must be equal")
	}
}

func TestRecurrenceUnitLetters(t *testing.T) {
	for _, c := range []byte("dbwmy") {
		u, ok := ParseRecurrenceUnit(c)
		if !ok {
			t.Fatalf("ParseRecurrenceUnit(%q) failed", c)
		}
		if u.Letter() != c {
			t.Errorf("unit %v letter = %q, want %q", u, u.Letter(), c)
		}
	}
	for _, c := range []byte("DxW0") {
		if _, ok := ParseRecurrenceUnit(c); ok {
			t.Errorf("ParseRecurrenceUnit(%q) should fail", c)
		}
	}
	if UnitMonth.String() != "M" {
		t.Errorf("UnitMonth.String() = %q", UnitMonth.String())
	}
}

func TestDateBefore(t *testing.T) {
	a := Date{Year: 2020, Month: 7, Day: 22}
	tests := []struct {
		b    Date
		want bool
	}{
		{Date{Year: 2021, Month: 1, Day: 1}, true},
		{Date{Year: 2020, Month: 8, Day: 1}, true},
		{Date{Year: 2020, Month: 7, Day: 23}, true},
		{a, false},
		{Date{Year: 2020, Month: 7, Day: 21}, false},
		{Date{Year: 2019, Month: 12, Day: 31}, false},
	}
	for _, tt := range tests {
		if got := a.Before(tt.b); got != tt.want {
			t.Errorf("%v.Before(%v) = %v, want %v", a, tt.b, got, tt.want)
		}
	}
}

func TestEntryAccessors(t *testing.T) {
	e := Entry{Elements: []Element{
		Text{Content: "call"},
		Project{Name: "Home"},
		Text{Content: "mom"},
		Context{Name: "phone"},
		Due{Date: Date{Year: 2024, Month: 1, Day: 5}},
		Recurrence{Count: 1, Unit: UnitMonth},
		Project{Name: "Family"},
	}}

	if got := e.Text(); got != "call mom" {
		t.Errorf("Text() = %q", got)
	}
	if got := e.Projects(); len(got) != 2 || got[0] != "Home" || got[1] != "Family" {
		t.Errorf("Projects() = %v", got)
	}
	if !e.HasContext("phone") || e.HasContext("Phone") {
		t.Error("HasContext mismatch")
	}
	if d, ok := e.Due(); !ok || d != (Date{Year: 2024, Month: 1, Day: 5}) {
		t.Errorf("Due() = %v, %v", d, ok)
	}
	if _, ok := e.Threshold(); ok {
		t.Error("Threshold() should be absent")
	}
	if r, ok := e.Recurrence(); !ok || r.Unit != UnitMonth {
		t.Errorf("Recurrence() = %v, %v", r, ok)
	}
	if got := e.String(); got != "call +Home mom @phone due:2024-01-05 rec:1m +Family" {
		t.Errorf("String() = %q", got)
	}
}

func TestCollectionString(t *testing.T) {
	var empty Collection
	if empty.String() != "" {
		t.Errorf("empty collection renders %q", empty.String())
	}

	c := Collection{Entries: []Entry{
		{Elements: []Element{Text{Content: "a"}, Project{Name: "P"}}},
		{Elements: []Element{Context{Name: "c"}, Project{Name: "P"}, Project{Name: "Q"}}},
	}}
	if got := c.String(); got != "a +P\n@c +P +Q\n" {
		t.Errorf("String() = %q", got)
	}
	if got := c.Projects(); len(got) != 2 || got[0] != "P" || got[1] != "Q" {
		t.Errorf("Projects() = %v", got)
	}
	if !c.Equal(c) {
		t.Error("collection must equal itself")
	}
	if c.Equal(Collection{Entries: c.Entries[:1]}) {
		t.Error("collections of different length must differ")
	}
}
