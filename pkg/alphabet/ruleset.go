package alphabet

import (
	"strings"

	"github.com/assetnote/pwdgen/pkg/ascii"
	"github.com/assetnote/pwdgen/pkg/convert"
)

// RuleSet is a union of character classes and literal characters
type RuleSet struct {
	classes  []ascii.Class
	literals []byte
}

// AddPredicate adds a class to the set
func (r *RuleSet) AddPredicate(c ascii.Class) {
	for _, v := range r.classes {
		if v == c {
			return
		}
	}
	r.classes = append(r.classes, c)
}

// AddLiterals adds every byte of s to the set of literal characters
func (r *RuleSet) AddLiterals(s string) {
	r.literals = convert.UniqueBytes(append(r.literals, s...))
}

// Matches reports whether c belongs to any class or equals any literal.
// An empty set matches nothing
func (r RuleSet) Matches(c byte) bool {
	for _, v := range r.classes {
		if v.Contains(c) {
			return true
		}
	}
	for _, v := range r.literals {
		if v == c {
			return true
		}
	}
	return false
}

// Empty is true when the set holds neither classes nor literals
func (r RuleSet) Empty() bool {
	return len(r.classes) == 0 && len(r.literals) == 0
}

func (r RuleSet) Predicates() []ascii.Class {
	return append([]ascii.Class(nil), r.classes...)
}

func (r RuleSet) Literals() []byte {
	return append([]byte(nil), r.literals...)
}

// String renders the set in the token syntax accepted by ParseRule
func (r RuleSet) String() string {
	parts := make([]string, 0, len(r.classes)+1)
	for _, v := range r.classes {
		parts = append(parts, ClassPrefix+v.String())
	}
	if len(r.literals) > 0 {
		parts = append(parts, convert.Printable(r.literals))
	}
	return strings.Join(parts, " ")
}
