// Package userdict reads rows of a Rime user dictionary out of remote markup
// and appends them to the local dictionary file.
package userdict

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyField = errors.New("dictionary entry field is empty")
	ErrLineBreak  = errors.New("dictionary entry field contains a line break")
)

// Entry is one row of the user dictionary: a display text and the input code typed for it.
type Entry struct {
	Display string
	Code    string
}

func NewEntry(display, code string) (Entry, error) {
	display = strings.TrimSpace(display)
	code = strings.TrimSpace(code)
	if display == "" || code == "" {
		return Entry{}, fmt.Errorf("display %q, code %q: %w", display, code, ErrEmptyField)
	}
	// One entry is one line on disk.
	if strings.ContainsAny(display, "\r\n") || strings.ContainsAny(code, "\r\n") {
		return Entry{}, fmt.Errorf("display %q, code %q: %w", display, code, ErrLineBreak)
	}
	return Entry{
		Display: display,
		Code:    code,
	}, nil
}

// String returns the entry in the on-disk format, without the line terminator.
func (e Entry) String() string {
	return e.Display + "\t" + e.Code
}

// ParseLine parses a line written by Entry.String, splitting on the first tab.
func ParseLine(line string) (Entry, error) {
	line = strings.TrimRight(line, "\r\n")
	display, code, found := strings.Cut(line, "\t")
	if !found {
		return Entry{}, fmt.Errorf("line %q has no tab separator", line)
	}
	if display == "" || code == "" {
		return Entry{}, fmt.Errorf("line %q: %w", line, ErrEmptyField)
	}
	return Entry{
		Display: display,
		Code:    code,
	}, nil
}
