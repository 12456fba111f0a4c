// Package redact removes known secret strings from captured command output.
//
// A Matcher is built once from a set of secrets and then applied to each
// line of output. All secrets are matched in a single pass over the line
// using an Aho-Corasick automaton, so the cost of Apply depends on the line
// length and not on how many secrets are configured.
//
// # Basic Usage
//
//	m := redact.New([]string{"hunter2", "sk-live-abc"})
//	fmt.Println(m.Apply("password=hunter2")) // "password=[redacted]"
//
// # Matching Rules
//
// Matching is case-sensitive and exact. Matches never overlap; when several
// secrets could match at the same position the one added first wins, and
// scanning resumes after the end of the replaced span.
//
// # Limitations
//
// Matching operates on one line at a time. A secret that contains a newline,
// or whose bytes are split across two lines of output, is not redacted.
package redact
