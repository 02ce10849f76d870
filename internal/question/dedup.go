package question

import "strings"

// DedupSet tracks every question already issued, keyed by its normalized
// text. It lives for the whole process by default so sequential sessions
// do not repeat each other; callers that want per-session variety call
// Clear between sessions.
//
// No synchronization: generation is strictly sequential, one in-flight
// request at a time.
type DedupSet struct {
	seen map[string]struct{}
}

// NewDedupSet creates an empty DedupSet.
func NewDedupSet() *DedupSet {
	return &DedupSet{seen: make(map[string]struct{})}
}

// Normalize lowers and trims question text for duplicate comparison.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Contains reports whether the normalized text was already issued.
func (s *DedupSet) Contains(text string) bool {
	_, ok := s.seen[Normalize(text)]
	return ok
}

// Add records the normalized text as issued.
func (s *DedupSet) Add(text string) {
	s.seen[Normalize(text)] = struct{}{}
}

// Len returns the number of distinct questions issued so far.
func (s *DedupSet) Len() int {
	return len(s.seen)
}

// Clear empties the set.
func (s *DedupSet) Clear() {
	s.seen = make(map[string]struct{})
}
