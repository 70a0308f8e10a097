package tutor

import (
	"strings"

	"github.com/sandevgo/taalbot/internal/service/state"
)

// args consumes command arguments left to right. A token that does not
// match the slot being tried stays in place for the next slot.
type args struct {
	tokens []string
}

func newArgs(tokens []string) *args {
	clean := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			clean = append(clean, t)
		}
	}
	return &args{tokens: clean}
}

func (a *args) empty() bool {
	return len(a.tokens) == 0
}

func (a *args) level() (state.Level, bool) {
	if a.empty() {
		return "", false
	}
	l, ok := state.ParseLevel(a.tokens[0])
	if ok {
		a.tokens = a.tokens[1:]
	}
	return l, ok
}

func (a *args) style() (state.Style, bool) {
	if a.empty() {
		return "", false
	}
	s, ok := state.ParseStyle(a.tokens[0])
	if ok {
		a.tokens = a.tokens[1:]
	}
	return s, ok
}

func (a *args) subMode() (state.SubMode, bool) {
	if a.empty() {
		return "", false
	}
	m, ok := state.ParseSubMode(a.tokens[0])
	if ok {
		a.tokens = a.tokens[1:]
	}
	return m, ok
}

// rest joins the remaining tokens, or returns def when nothing is left.
func (a *args) rest(def string) string {
	if a.empty() {
		return def
	}
	s := strings.Join(a.tokens, " ")
	a.tokens = nil
	return s
}

// next consumes and returns the first token, or "" when none is left.
func (a *args) next() string {
	if a.empty() {
		return ""
	}
	t := a.tokens[0]
	a.tokens = a.tokens[1:]
	return t
}
