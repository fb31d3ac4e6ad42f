// Package dispatch selects a handler from an ordered list of rules.
//
// Rules are evaluated in the order they were added and the first one whose
// predicate matches wins. A selector always ends with a fallback, so every key
// resolves to something; the fallback decides what "unknown" means.
package dispatch

import "strings"

// Rule pairs a predicate with the handler it selects.
type Rule[K, H any] struct {
	Name    string
	Matches func(K) bool
	Handler H
}

// Selector evaluates rules first-match-wins and falls back to a default.
type Selector[K, H any] struct {
	rules    []Rule[K, H]
	fallback Rule[K, H]
}

// New creates a selector whose fallback is always evaluated last.
func New[K, H any](fallbackName string, fallback H, rules ...Rule[K, H]) *Selector[K, H] {
	return &Selector[K, H]{
		rules: append([]Rule[K, H](nil), rules...),
		fallback: Rule[K, H]{
			Name:    fallbackName,
			Matches: func(K) bool { return true },
			Handler: fallback,
		},
	}
}

// Add appends a rule after the existing ones and before the fallback.
func (s *Selector[K, H]) Add(rule Rule[K, H]) {
	s.rules = append(s.rules, rule)
}

// Select returns the handler of the first matching rule, the rule name, and
// whether a rule other than the fallback matched.
func (s *Selector[K, H]) Select(key K) (H, string, bool) {
	for _, r := range s.rules {
		if r.Matches != nil && r.Matches(key) {
			return r.Handler, r.Name, true
		}
	}
	return s.fallback.Handler, s.fallback.Name, false
}

// Names lists rule names in evaluation order, fallback last.
func (s *Selector[K, H]) Names() []string {
	names := make([]string, 0, len(s.rules)+1)
	for _, r := range s.rules {
		names = append(names, r.Name)
	}
	return append(names, s.fallback.Name)
}

// EqualFold returns a predicate matching name case-insensitively.
func EqualFold(name string) func(string) bool {
	return func(key string) bool {
		return strings.EqualFold(key, name)
	}
}

// Exact returns a predicate matching name exactly.
func Exact(name string) func(string) bool {
	return func(key string) bool {
		return key == name
	}
}
