// Package todotxt parses todo.txt text into the models value tree.
package todotxt

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tgienger/todocmd/internal/models"
)

// Tag prefixes
const (
	ProjectPrefix    = "+"
	ContextPrefix    = "@"
	DuePrefix        = "due:"
	ThresholdPrefix  = "t:"
	RecurrencePrefix = "rec:"
)

// ParsingError is returned by a single rule that rejects its input
type ParsingError struct {
	Rule    string
	Input   string
	Message string
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("%s: %s: %q", e.Rule, e.Message, e.Input)
}

// Rule classifies a token or rejects it with a *ParsingError.
type Rule func(token string) (models.Element, error)

var rules = []Rule{
	ParseProject,
	ParseContext,
	ParseDue,
	ParseThreshold,
	ParseRecurrence,
	ParseText,
}

// Rules returns the rules ParseElement tries, in priority order.
// The last rule never fails.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// ParseElement classifies a single token. It never fails: a token no tag
// rule accepts, including one whose prefix matches but whose content is
// malformed, becomes Text holding the token unchanged.
func ParseElement(token string) models.Element {
	for _, rule := range rules {
		if el, err := rule(token); err == nil {
			return el
		}
	}
	return models.Text{Content: token}
}

// ParseProject accepts +name. The name may be empty.
func ParseProject(token string) (models.Element, error) {
	name, ok := strings.CutPrefix(token, ProjectPrefix)
	if !ok {
		return nil, &ParsingError{Rule: "project", Input: token, Message: "missing + prefix"}
	}
	return models.Project{Name: name}, nil
}

// ParseContext accepts @name. The name may be empty.
func ParseContext(token string) (models.Element, error) {
	name, ok := strings.CutPrefix(token, ContextPrefix)
	if !ok {
		return nil, &ParsingError{Rule: "context", Input: token, Message: "missing @ prefix"}
	}
	return models.Context{Name: name}, nil
}

// ParseDue accepts due:YYYY-MM-DD.
func ParseDue(token string) (models.Element, error) {
	d, err := parseDateTag("due", DuePrefix, token)
	if err != nil {
		return nil, err
	}
	return models.Due{Date: d}, nil
}

// ParseThreshold accepts t:YYYY-MM-DD.
func ParseThreshold(token string) (models.Element, error) {
	d, err := parseDateTag("threshold", ThresholdPrefix, token)
	if err != nil {
		return nil, err
	}
	return models.Threshold{Date: d}, nil
}

func parseDateTag(rule, prefix, token string) (models.Date, error) {
	s, ok := strings.CutPrefix(token, prefix)
	if !ok {
		return models.Date{}, &ParsingError{Rule: rule, Input: token, Message: "missing " + prefix + " prefix"}
	}
	d, err := ParseDate(s)
	var perr *ParsingError
	if errors.As(err, &perr) {
		return models.Date{}, &ParsingError{Rule: rule, Input: token, Message: perr.Message}
	}
	return d, err
}

// ParseDate splits s on '-' into exactly three unsigned decimal fields.
// Month and day are not range checked.
func ParseDate(s string) (models.Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return models.Date{}, &ParsingError{Rule: "date", Input: s, Message: "error parsing date"}
	}
	year, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return models.Date{}, &ParsingError{Rule: "date", Input: s, Message: "error parsing year"}
	}
	month, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return models.Date{}, &ParsingError{Rule: "date", Input: s, Message: "error parsing month"}
	}
	day, err := strconv.ParseUint(parts[2], 10, 8)
	if err != nil {
		return models.Date{}, &ParsingError{Rule: "date", Input: s, Message: "error parsing day"}
	}
	return models.Date{Year: uint16(year), Month: uint8(month), Day: uint8(day)}, nil
}

var recurrenceRegex = regexp.MustCompile(`^(\+?)(\d+)(.)$`)

// ParseRecurrence accepts rec:[+]N<unit> with unit one of d, b, w, m, y.
func ParseRecurrence(token string) (models.Element, error) {
	s, ok := strings.CutPrefix(token, RecurrencePrefix)
	if !ok {
		return nil, &ParsingError{Rule: "recurrence", Input: token, Message: "missing rec: prefix"}
	}
	m := recurrenceRegex.FindStringSubmatch(s)
	if m == nil {
		return nil, &ParsingError{Rule: "recurrence", Input: token, Message: "error parsing recurrence"}
	}
	count, err := strconv.ParseUint(m[2], 10, 32)
	if err != nil {
		return nil, &ParsingError{Rule: "recurrence", Input: token, Message: "error parsing count"}
	}
	unit, ok := models.ParseRecurrenceUnit(m[3][0])
	if !ok {
		return nil, &ParsingError{Rule: "recurrence", Input: token, Message: "error parsing unit"}
	}
	return models.Recurrence{Plus: m[1] == "+", Count: uint32(count), Unit: unit}, nil
}

// ParseText accepts any token.
func ParseText(token string) (models.Element, error) {
	return models.Text{Content: token}, nil
}
