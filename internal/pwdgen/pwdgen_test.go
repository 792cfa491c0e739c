package pwdgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/assetnote/pwdgen/pkg/ascii"
	"github.com/assetnote/pwdgen/pkg/entropy"
	"github.com/assetnote/pwdgen/pkg/generator"
	"github.com/assetnote/pwdgen/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetOutput(io.Discard)
}

type fakePrompter struct {
	answer bool
	asked  int
}

func (f *fakePrompter) Confirm(label string) (bool, error) {
	f.asked++
	return f.answer, nil
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{"simple", "8", 8, false},
		{"zero", "0", 0, false},
		{"leading zero", "012", 12, false},
		{"negative", "-1", 0, true},
		{"sign", "+1", 0, true},
		{"letters", "8a", 0, true},
		{"empty", "", 0, true},
		{"overflow", "99999999999999999999", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLength(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLength)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromString(t *testing.T) {
	for in, want := range map[string]Format{"pretty": Pretty, "TEXT": Plain, "plain": Plain, "json": JSON} {
		got, err := FormatFromString(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := FormatFromString("xml")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestNewOptions(t *testing.T) {
	o, err := NewOptions()
	require.NoError(t, err)
	assert.Equal(t, DefaultLength, o.Length)
	assert.Equal(t, DefaultCount, o.Count)
	assert.Equal(t, entropy.NameCrypto, o.Source)

	o, err = NewOptions(Accept("a", "@isdigit"), Accept("a"), Exclude("x"), LengthString("12"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "@isdigit"}, o.Accept)
	assert.Equal(t, []string{"x"}, o.Exclude)
	assert.Equal(t, 12, o.Length)

	_, err = NewOptions(LengthString("twelve"))
	assert.ErrorIs(t, err, ErrInvalidLength)
	_, err = NewOptions(Length(-1))
	assert.ErrorIs(t, err, ErrInvalidLength)
	_, err = NewOptions(Count(0))
	assert.Error(t, err)
	_, err = NewOptions(MaxRetries(-1))
	assert.Error(t, err)
}

func TestRunCycle(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(),
		Writer(&out),
		Length(5),
		Count(3),
		Accept("ab"),
		Source(entropy.NameCycle),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"ababa", "babab", "ababa"}, lines(out.String()))
}

func TestRunDefault(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), Writer(&out)))
	got := lines(out.String())
	require.Len(t, got, 1)
	assert.Len(t, got[0], DefaultLength)
	for i := 0; i < len(got[0]); i++ {
		assert.True(t, ascii.Graph.Contains(got[0][i]))
	}
}

func TestRunZeroLength(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), Writer(&out), Length(0), Count(2)))
	assert.Equal(t, "\n\n", out.String())
}

func TestRunJSON(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(),
		Writer(&out),
		Length(4),
		Count(2),
		Accept("@isdigit"),
		OutputFormat(JSON),
	)
	require.NoError(t, err)

	got := lines(out.String())
	require.Len(t, got, 2)
	for i, l := range got {
		var rec struct {
			ID           string  `json:"id"`
			Index        int     `json:"index"`
			Value        string  `json:"value"`
			Length       int     `json:"length"`
			AlphabetSize int     `json:"alphabet_size"`
			EntropyBits  float64 `json:"entropy_bits"`
		}
		require.NoError(t, json.Unmarshal([]byte(l), &rec), l)
		assert.NotEmpty(t, rec.ID)
		assert.Equal(t, i, rec.Index)
		assert.Len(t, rec.Value, 4)
		assert.Equal(t, 4, rec.Length)
		assert.Equal(t, 10, rec.AlphabetSize)
		assert.InDelta(t, 13.29, rec.EntropyBits, 0.001)
	}
}

func TestRunTemplate(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(),
		Writer(&out),
		Length(2),
		Count(2),
		Accept("ab"),
		Source(entropy.NameCycle),
		Template("{{index}}:{{value}} ({{size}} chars, {{bits}} bits)"),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"0:ab (2 chars, 2 bits)", "1:ab (2 chars, 2 bits)"}, lines(out.String()))

	err = Run(context.Background(), Writer(&out), Template("{{nope}}"))
	assert.ErrorIs(t, err, ErrUnknownTag)
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{"unknown class", []Option{Accept("@isfoo")}, ascii.ErrUnknownPredicate},
		{"only exclude", []Option{Exclude("abc")}, generator.ErrNonTerminating},
		{"overlap", []Option{Accept("@isdigit"), Exclude("@isalnum")}, generator.ErrNonTerminating},
		{"exhausted file", []Option{Source("testdata/short.bin"), Length(64)}, entropy.ErrSourceExhausted},
		{"exhausted mid batch", []Option{Source("testdata/short.bin"), Length(4), Count(3)}, entropy.ErrSourceExhausted},
		{"budget", []Option{Accept("~"), MaxRetries(3), Source(entropy.NameCycle)}, generator.ErrRetryBudget},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			err := Run(context.Background(), append(tt.opts, Writer(&out))...)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Empty(t, out.String())
		})
	}
}

func TestRunWeakAlphabetPrompt(t *testing.T) {
	var out bytes.Buffer
	p := &fakePrompter{answer: false}
	err := Run(context.Background(), Writer(&out), Accept("ab"), Interactive(true), WithPrompter(p))
	assert.ErrorIs(t, err, ErrDeclined)
	assert.Equal(t, 1, p.asked)
	assert.Empty(t, out.String())

	p.answer = true
	require.NoError(t, Run(context.Background(), Writer(&out), Accept("ab"), Interactive(true), WithPrompter(p)))
	assert.Equal(t, 2, p.asked)

	// never asked without interactive mode or with a large alphabet
	require.NoError(t, Run(context.Background(), Writer(&out), Accept("ab"), WithPrompter(p)))
	require.NoError(t, Run(context.Background(), Writer(&out), Interactive(true), WithPrompter(p)))
	assert.Equal(t, 2, p.asked)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := Run(ctx, Writer(&out))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestListClasses(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, ListClasses(&out, Plain))
	got := lines(out.String())
	assert.Len(t, got, len(ascii.Classes()))
	assert.Equal(t, "isdigit\t10\t0123456789", got[ascii.Digit])

	out.Reset()
	require.NoError(t, ListClasses(&out, JSON))
	var entries []struct {
		Name    string `json:"name"`
		Count   int    `json:"count"`
		Members string `json:"members"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	assert.Len(t, entries, len(ascii.Classes()))
	assert.Equal(t, "isxdigit", entries[ascii.XDigit].Name)
	assert.Equal(t, 22, entries[ascii.XDigit].Count)

	out.Reset()
	require.NoError(t, ListClasses(&out, Pretty))
	assert.Contains(t, out.String(), "isgraph")
	assert.Contains(t, out.String(), "MEMBERS")
}

func TestDescribeAlphabet(t *testing.T) {
	o, err := NewOptions(Accept("@isdigit"), Exclude("0"))
	require.NoError(t, err)
	g, err := NewGenerator(o)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, DescribeAlphabet(&out, Plain, g, 4))
	assert.Contains(t, out.String(), "alphabet\t123456789\n")
	assert.Contains(t, out.String(), "size\t9\n")

	out.Reset()
	require.NoError(t, DescribeAlphabet(&out, JSON, g, 4))
	var s struct {
		Alphabet string  `json:"alphabet"`
		Size     int     `json:"alphabet_size"`
		Bits     float64 `json:"entropy_bits"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &s))
	assert.Equal(t, "123456789", s.Alphabet)
	assert.Equal(t, 9, s.Size)
	assert.InDelta(t, 12.68, s.Bits, 0.001)

	out.Reset()
	require.NoError(t, DescribeAlphabet(&out, Pretty, g, 4))
	assert.Contains(t, out.String(), "@isdigit")
}
