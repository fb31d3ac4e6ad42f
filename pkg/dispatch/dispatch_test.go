package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelector_FirstMatchWins(t *testing.T) {
	s := New("default", "unknown",
		Rule[string, string]{Name: "short", Matches: func(k string) bool { return len(k) < 4 }, Handler: "short"},
		Rule[string, string]{Name: "dog", Matches: EqualFold("dog"), Handler: "dog"},
	)

	tests := []struct {
		key         string
		wantHandler string
		wantName    string
		wantMatched bool
	}{
		{key: "dog", wantHandler: "short", wantName: "short", wantMatched: true},
		{key: "DOGS", wantHandler: "unknown", wantName: "default", wantMatched: false},
		{key: "cat", wantHandler: "short", wantName: "short", wantMatched: true},
		{key: "elephant", wantHandler: "unknown", wantName: "default", wantMatched: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			h, name, matched := s.Select(tt.key)
			assert.Equal(t, tt.wantHandler, h)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantMatched, matched)
		})
	}
}

func TestSelector_AddKeepsFallbackLast(t *testing.T) {
	s := New[string, int]("fallback", -1)
	s.Add(Rule[string, int]{Name: "one", Matches: Exact("one"), Handler: 1})
	s.Add(Rule[string, int]{Name: "two", Matches: Exact("two"), Handler: 2})

	assert.Equal(t, []string{"one", "two", "fallback"}, s.Names())

	h, _, ok := s.Select("two")
	assert.True(t, ok)
	assert.Equal(t, 2, h)

	h, _, ok = s.Select("three")
	assert.False(t, ok)
	assert.Equal(t, -1, h)
}

func TestSelector_NilPredicateIsSkipped(t *testing.T) {
	s := New("fallback", "f", Rule[string, string]{Name: "broken", Handler: "b"})
	h, _, ok := s.Select("anything")
	assert.False(t, ok)
	assert.Equal(t, "f", h)
}

func TestEqualFold(t *testing.T) {
	match := EqualFold("Manager")
	assert.True(t, match("manager"))
	assert.True(t, match("MANAGER"))
	assert.False(t, match("managers"))
}
