package todotxt

import (
	"bufio"
	"io"
	"strings"

	"github.com/tgienger/todocmd/internal/models"
)

// ParseEntry splits line on runs of whitespace and classifies each token.
// A single line holding at least one token keeps its text in Raw.
func ParseEntry(line string) models.Entry {
	tokens := strings.Fields(line)
	entry := models.Entry{Elements: make([]models.Element, 0, len(tokens))}
	if len(tokens) > 0 && !strings.ContainsAny(line, "\r\n") {
		entry.Raw = line
	}
	for _, tok := range tokens {
		entry.Elements = append(entry.Elements, ParseElement(tok))
	}
	return entry
}

// ParseCollection parses file content, one entry per line. Lines holding no
// token are skipped.
func ParseCollection(content string) models.Collection {
	var c models.Collection
	for _, line := range strings.Split(content, "\n") {
		c = appendLine(c, line)
	}
	return c
}

// ReadCollection is ParseCollection over a reader. Lines may be of any
// length; the only error it returns is one from r.
func ReadCollection(r io.Reader) (models.Collection, error) {
	var c models.Collection
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		c = appendLine(c, strings.TrimSuffix(line, "\n"))
		if err == io.EOF {
			return c, nil
		}
		if err != nil {
			return models.Collection{}, err
		}
	}
}

func appendLine(c models.Collection, line string) models.Collection {
	entry := ParseEntry(strings.TrimSuffix(line, "\r"))
	if len(entry.Elements) == 0 {
		return c
	}
	c.Entries = append(c.Entries, entry)
	return c
}
