package redact

import (
	"strings"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
)

// Placeholder replaces every redacted span.
const Placeholder = "[redacted]"

// Matcher finds and replaces secrets in a line of text.
// A Matcher is immutable after construction and safe for concurrent use.
// The zero value and a nil *Matcher redact nothing.
type Matcher struct {
	patterns []string
	ac       *ahocorasick.AhoCorasick
}

// New builds a Matcher for the given secrets.
//
// Duplicates and empty strings are dropped. The remaining order determines
// priority when two secrets match at the same position.
func New(patterns []string) *Matcher {
	seen := make(map[string]struct{}, len(patterns))
	unique := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}

	m := &Matcher{patterns: unique}
	if len(unique) == 0 {
		return m
	}

	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: false,
		MatchOnlyWholeWords:  false,
		MatchKind:            ahocorasick.LeftMostFirstMatch,
		DFA:                  true,
	})
	ac := builder.Build(unique)
	m.ac = &ac

	return m
}

// Len returns the number of distinct secrets the Matcher redacts.
func (m *Matcher) Len() int {
	if m == nil {
		return 0
	}
	return len(m.patterns)
}

// Apply returns line with every secret replaced by Placeholder.
func (m *Matcher) Apply(line string) string {
	if m == nil || m.ac == nil || line == "" {
		return line
	}

	matches := m.ac.FindAll(line)
	if len(matches) == 0 {
		return line
	}

	var b strings.Builder
	b.Grow(len(line))

	last := 0
	for _, match := range matches {
		start, end := match.Start(), match.End()
		// FindAll yields non-overlapping matches in order for leftmost
		// match kinds; the guard keeps the output well-formed regardless.
		if start < last {
			continue
		}
		b.WriteString(line[last:start])
		b.WriteString(Placeholder)
		last = end
	}
	b.WriteString(line[last:])

	return b.String()
}
