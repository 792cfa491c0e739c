package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueBytes(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"nil", nil, nil},
		{"no dupes", []byte("abc"), []byte("abc")},
		{"dupes keep order", []byte("abcabx"), []byte("abcx")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UniqueBytes(tt.in))
		})
	}
}

func TestUniqueStrings(t *testing.T) {
	assert.Equal(t, []string{"@isdigit", "ab"}, UniqueStrings([]string{"@isdigit", "ab", "@isdigit"}))
}

func TestPrintable(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"plain", []byte("aZ9!"), "aZ9!"},
		{"space kept", []byte("a b"), "a b"},
		{"whitespace escaped", []byte("\t\n\r"), `\t\n\r`},
		{"control", []byte{0x00, 0x7F}, `\x00\x7f`},
		{"backslash", []byte(`\`), `\\`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Printable(tt.in))
		})
	}
}
