package alphabet

import (
	"github.com/assetnote/pwdgen/pkg/ascii"
)

// DefaultClass is accepted when no accept and no exclude rule was supplied
const DefaultClass = ascii.Graph

// Rules pairs the accept and exclude rule sets of an alphabet
type Rules struct {
	Accept  RuleSet
	Exclude RuleSet
}

// ApplyDefault accepts DefaultClass when both rule sets are empty and reports whether it did.
// Supplying only exclude rules leaves the accept set empty, which selects nothing
func (r *Rules) ApplyDefault() bool {
	if !r.Accept.Empty() || !r.Exclude.Empty() {
		return false
	}
	r.Accept.AddPredicate(DefaultClass)
	return true
}

// Selectable reports whether c is accepted and not excluded
func Selectable(c byte, accept, exclude RuleSet) bool {
	return accept.Matches(c) && !exclude.Matches(c)
}

func (r Rules) Selectable(c byte) bool {
	return Selectable(c, r.Accept, r.Exclude)
}

// Table evaluates the rules once for every value in the ascii domain
func (r Rules) Table() Table {
	var t Table
	for c := 0; c <= ascii.Max; c++ {
		t[c] = r.Selectable(byte(c))
	}
	return t
}

func (r Rules) String() string {
	return "accept=[" + r.Accept.String() + "] exclude=[" + r.Exclude.String() + "]"
}

// Table is a frozen membership lookup indexed by candidate value
type Table [ascii.Max + 1]bool

// Contains reports whether c is selectable. Values outside the ascii domain never are
func (t Table) Contains(c byte) bool {
	return int(c) < len(t) && t[c]
}

// Size is the number of selectable values
func (t Table) Size() int {
	n := 0
	for _, v := range t {
		if v {
			n++
		}
	}
	return n
}

// Chars returns the selectable values in ascending order
func (t Table) Chars() []byte {
	ret := make([]byte, 0, len(t))
	for c, v := range t {
		if v {
			ret = append(ret, byte(c))
		}
	}
	return ret
}
