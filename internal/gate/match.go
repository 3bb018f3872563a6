// Package gate implements the ordered guardrail chain applied to each
// candidate item: the negative-scope hard gate, the competitor and
// irrelevant-entity gate, and the advisory category fence. Order is a
// correctness property: a hard exclusion is never overridden by a later
// soft signal.
package gate

import "strings"

// normalize lowercases and collapses all whitespace runs to single spaces.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// tokens splits a normalized string into its words.
func tokens(s string) []string {
	return strings.Fields(normalize(s))
}

// containsPhrase reports whether the normalized needle occurs as a
// substring of the normalized haystack. This is the exact-match semantics
// of negative-scope entries: case-insensitive, whitespace-normalized.
func containsPhrase(haystack, needle string) bool {
	n := normalize(needle)
	if n == "" {
		return false
	}
	return strings.Contains(normalize(haystack), n)
}

// containsAllTokens reports whether every token of the needle appears as a
// whole token of the haystack, in any order. This is the semantic-match
// approximation used for match_type=semantic entries.
func containsAllTokens(haystack, needle string) bool {
	need := tokens(needle)
	if len(need) == 0 {
		return false
	}
	have := make(map[string]bool)
	for _, t := range tokens(haystack) {
		have[t] = true
	}
	for _, t := range need {
		if !have[t] {
			return false
		}
	}
	return true
}

// containsToken reports whether the needle occurs as a whole token.
func containsToken(haystack, needle string) bool {
	n := normalize(needle)
	if n == "" {
		return false
	}
	for _, t := range tokens(haystack) {
		if t == n {
			return true
		}
	}
	return false
}
