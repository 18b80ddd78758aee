package nav

import (
	"strings"

	"github.com/pkg/errors"
)

// Selector is a compound simple selector such as "a.nav-link" or "#brand".
type Selector struct {
	Tag     string
	ID      string
	Classes []string
}

// ParseSelector accepts an optional tag followed by any number of #id and
// .class parts. Combinators and attribute selectors are not supported.
func ParseSelector(s string) (Selector, error) {
	var sel Selector
	s = strings.TrimSpace(s)
	if s == "" {
		return sel, errors.New("empty selector")
	}
	if strings.ContainsAny(s, " >+~[],:") {
		return sel, errors.Errorf("unsupported selector %q", s)
	}

	i := strings.IndexAny(s, ".#")
	if i < 0 {
		sel.Tag = s
		return sel, nil
	}
	sel.Tag = s[:i]
	for rest := s[i:]; rest != ""; {
		kind := rest[0]
		rest = rest[1:]
		end := strings.IndexAny(rest, ".#")
		if end < 0 {
			end = len(rest)
		}
		name := rest[:end]
		rest = rest[end:]
		if name == "" {
			return sel, errors.Errorf("empty name in selector %q", s)
		}
		if kind == '#' {
			sel.ID = name
		} else {
			sel.Classes = append(sel.Classes, name)
		}
	}
	return sel, nil
}

// Match reports whether e satisfies every part of the selector.
func (s Selector) Match(e *Element) bool {
	if e == nil {
		return false
	}
	if s.Tag != "" && s.Tag != "*" && !strings.EqualFold(s.Tag, e.Tag) {
		return false
	}
	if s.ID != "" && s.ID != e.ID {
		return false
	}
	for _, c := range s.Classes {
		if !e.HasClass(c) {
			return false
		}
	}
	return true
}

// Matches reports whether e matches sel. Invalid selectors match nothing.
func (e *Element) Matches(sel string) bool {
	s, err := ParseSelector(sel)
	if err != nil {
		return false
	}
	return s.Match(e)
}
