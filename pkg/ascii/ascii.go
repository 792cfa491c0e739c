package ascii

import (
	"fmt"
	"strings"
)

// Max is the largest code point in the ascii domain
const Max = 0x7F

// Class is a named character class over the ascii domain
type Class int

const (
	Alnum Class = iota
	Alpha
	ASCII
	Blank
	Cntrl
	Digit
	Graph
	Lower
	Print
	Punct
	Space
	Upper
	XDigit

	numClasses
)

var (
	ErrUnknownPredicate = fmt.Errorf("unknown predicate")

	names = [numClasses]string{
		Alnum:  "isalnum",
		Alpha:  "isalpha",
		ASCII:  "isascii",
		Blank:  "isblank",
		Cntrl:  "iscntrl",
		Digit:  "isdigit",
		Graph:  "isgraph",
		Lower:  "islower",
		Print:  "isprint",
		Punct:  "ispunct",
		Space:  "isspace",
		Upper:  "isupper",
		XDigit: "isxdigit",
	}

	descriptions = [numClasses]string{
		Alnum:  "letters and digits",
		Alpha:  "letters",
		ASCII:  "every 7 bit value",
		Blank:  "space and horizontal tab",
		Cntrl:  "control characters",
		Digit:  "decimal digits",
		Graph:  "visible characters, excluding space",
		Lower:  "lowercase letters",
		Print:  "visible characters and space",
		Punct:  "visible characters that are not letters or digits",
		Space:  "whitespace",
		Upper:  "uppercase letters",
		XDigit: "hexadecimal digits",
	}
)

// Classes returns every known class in a stable order
func Classes() []Class {
	ret := make([]Class, 0, numClasses)
	for c := Class(0); c < numClasses; c++ {
		ret = append(ret, c)
	}
	return ret
}

// Resolve will return the class for the name. Both the ctype form (isdigit) and the
// short form (digit) are accepted. Names are case sensitive.
func Resolve(name string) (Class, error) {
	for c, n := range names {
		if name == n || name == strings.TrimPrefix(n, "is") {
			return Class(c), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPredicate, name)
}

func (c Class) valid() bool {
	return c >= 0 && c < numClasses
}

// String returns the ctype name of the class, e.g. isgraph
func (c Class) String() string {
	if !c.valid() {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return names[c]
}

// Description is a short human readable explanation of the class
func (c Class) Description() string {
	if !c.valid() {
		return ""
	}
	return descriptions[c]
}

// Contains reports whether b is a member of the class. Values above Max are never members.
func (c Class) Contains(b byte) bool {
	if b > Max {
		return false
	}

	switch c {
	case Alnum:
		return isAlpha(b) || isDigit(b)
	case Alpha:
		return isAlpha(b)
	case ASCII:
		return true
	case Blank:
		return b == ' ' || b == '\t'
	case Cntrl:
		return b < 0x20 || b == 0x7F
	case Digit:
		return isDigit(b)
	case Graph:
		return isGraph(b)
	case Lower:
		return isLower(b)
	case Print:
		return b == ' ' || isGraph(b)
	case Punct:
		return isGraph(b) && !isAlpha(b) && !isDigit(b)
	case Space:
		return b == ' ' || (b >= '\t' && b <= '\r')
	case Upper:
		return isUpper(b)
	case XDigit:
		return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
	}
	return false
}

// Members returns every value in [0, Max] that belongs to the class in ascending order
func (c Class) Members() []byte {
	ret := make([]byte, 0)
	for b := 0; b <= Max; b++ {
		if c.Contains(byte(b)) {
			ret = append(ret, byte(b))
		}
	}
	return ret
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isAlpha(b byte) bool { return isLower(b) || isUpper(b) }
func isGraph(b byte) bool { return b > ' ' && b < 0x7F }
