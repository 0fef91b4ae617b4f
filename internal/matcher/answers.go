package matcher

import (
	"sort"

	"github.com/samber/lo"
)

// AnswerSet is the set of installed package names with at least one
// qualifying update
type AnswerSet struct {
	names map[string]struct{}
}

// NewAnswerSet creates an empty answer set
func NewAnswerSet() *AnswerSet {
	return &AnswerSet{names: make(map[string]struct{})}
}

// Add records name. Adding a name twice has no effect.
func (a *AnswerSet) Add(name string) {
	a.names[name] = struct{}{}
}

// Has reports whether name is in the set
func (a *AnswerSet) Has(name string) bool {
	_, ok := a.names[name]
	return ok
}

// Len returns the number of names in the set
func (a *AnswerSet) Len() int {
	return len(a.names)
}

// Names returns the names in the set, sorted
func (a *AnswerSet) Names() []string {
	names := lo.Keys(a.names)
	sort.Strings(names)
	return names
}
