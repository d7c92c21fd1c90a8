package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Date is a year-month-day triple as written in a todo.txt tag.
// No calendar validation is performed.
type Date struct {
	Year  uint16
	Month uint8
	Day   uint8
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Before reports whether d sorts strictly before o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// Kind identifies an Element variant
type Kind int

const (
	KindText Kind = iota
	KindProject
	KindContext
	KindDue
	KindThreshold
	KindRecurrence
)

var kindNames = [...]string{
	KindText:       "text",
	KindProject:    "project",
	KindContext:    "context",
	KindDue:        "due",
	KindThreshold:  "threshold",
	KindRecurrence: "recurrence",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// RecurrenceUnit is the time unit of a rec: rule
type RecurrenceUnit int

const (
	UnitDay RecurrenceUnit = iota
	UnitBusinessDay
	UnitWeek
	UnitMonth
	UnitYear
)

const unitLetters = "dbwmy"

// Letter returns the lowercase letter used for u in a rec: tag.
func (u RecurrenceUnit) Letter() byte {
	if u < 0 || int(u) >= len(unitLetters) {
		return '?'
	}
	return unitLetters[u]
}

func (u RecurrenceUnit) String() string {
	return strings.ToUpper(string(u.Letter()))
}

// ParseRecurrenceUnit maps a unit letter (d, b, w, m, y) to its unit.
func ParseRecurrenceUnit(c byte) (RecurrenceUnit, bool) {
	i := strings.IndexByte(unitLetters, c)
	if i < 0 {
		return 0, false
	}
	return RecurrenceUnit(i), true
}

// Element is one classified token of an entry. The set of implementations
// is closed: Project, Context, Due, Threshold, Recurrence and Text.
type Element interface {
	Kind() Kind
	// String renders the token form of the element.
	String() string
	element()
}

// Project is a +project tag
type Project struct {
	Name string
}

// Context is an @context tag
type Context struct {
	Name string
}

// Due is a due:YYYY-MM-DD tag
type Due struct {
	Date Date
}

// Threshold is a t:YYYY-MM-DD tag
type Threshold struct {
	Date Date
}

// Recurrence is a rec:[+]N<unit> rule. Plus marks a strict recurrence,
// counted from the previous due date rather than the completion date.
type Recurrence struct {
	Plus  bool
	Count uint32
	Unit  RecurrenceUnit
}

// Text is any token that is not a recognized tag, kept verbatim.
type Text struct {
	Content string
}

func (Project) Kind() Kind    { return KindProject }
func (Context) Kind() Kind    { return KindContext }
func (Due) Kind() Kind        { return KindDue }
func (Threshold) Kind() Kind  { return KindThreshold }
func (Recurrence) Kind() Kind { return KindRecurrence }
func (Text) Kind() Kind       { return KindText }

func (p Project) String() string   { return "+" + p.Name }
func (c Context) String() string   { return "@" + c.Name }
func (d Due) String() string       { return "due:" + d.Date.String() }
func (t Threshold) String() string { return "t:" + t.Date.String() }
func (t Text) String() string      { return t.Content }

func (r Recurrence) String() string {
	var b strings.Builder
	b.WriteString("rec:")
	if r.Plus {
		b.WriteByte('+')
	}
	b.WriteString(strconv.FormatUint(uint64(r.Count), 10))
	b.WriteByte(r.Unit.Letter())
	return b.String()
}

func (Project) element()    {}
func (Context) element()    {}
func (Due) element()        {}
func (Threshold) element()  {}
func (Recurrence) element() {}
func (Text) element()       {}

// Value returns the payload of e as it is stored in the index: the name for
// projects and contexts, the date for due and threshold tags and the token
// itself otherwise.
func Value(e Element) string {
	switch e := e.(type) {
	case Project:
		return e.Name
	case Context:
		return e.Name
	case Due:
		return e.Date.String()
	case Threshold:
		return e.Date.String()
	default:
		return e.String()
	}
}
