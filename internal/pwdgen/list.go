package pwdgen

import (
	"fmt"
	"io"
	"strconv"

	"github.com/assetnote/pwdgen/pkg/ascii"
	"github.com/assetnote/pwdgen/pkg/convert"
	"github.com/assetnote/pwdgen/pkg/generator"
	humanize "github.com/dustin/go-humanize"
	"github.com/francoispqt/gojay"
	"github.com/olekukonko/tablewriter"
)

type classEntry struct {
	class ascii.Class
}

func (c classEntry) MarshalJSONObject(enc *gojay.Encoder) {
	members := c.class.Members()
	enc.StringKey("name", c.class.String())
	enc.StringKey("description", c.class.Description())
	enc.IntKey("count", len(members))
	enc.StringKey("members", string(members))
}

func (c classEntry) IsNil() bool { return false }

type classEntries []classEntry

func (c classEntries) MarshalJSONArray(enc *gojay.Encoder) {
	for _, v := range c {
		enc.Object(v)
	}
}

func (c classEntries) IsNil() bool { return c == nil }

// ListClasses writes every known character class with its members
func ListClasses(w io.Writer, format Format) error {
	classes := ascii.Classes()

	switch format {
	case Plain:
		for _, c := range classes {
			members := c.Members()
			fmt.Fprintln(w, TabString(c.String(), strconv.Itoa(len(members)), convert.Printable(members)))
		}
	case JSON:
		entries := make(classEntries, 0, len(classes))
		for _, c := range classes {
			entries = append(entries, classEntry{class: c})
		}
		data, err := gojay.MarshalJSONArray(entries)
		if err != nil {
			return fmt.Errorf("failed to encode classes: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return err
		}
	case Pretty:
		fallthrough
	default:
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"name", "description", "count", "members"})
		table.SetAutoWrapText(false)
		for _, c := range classes {
			members := c.Members()
			table.Append([]string{c.String(), c.Description(), strconv.Itoa(len(members)), convert.Printable(members)})
		}
		table.Render()
	}
	return nil
}

type alphabetSummary struct {
	accept  string
	exclude string
	chars   []byte
	length  int
	bits    float64
}

func (a alphabetSummary) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("accept", a.accept)
	enc.StringKey("exclude", a.exclude)
	enc.StringKey("alphabet", string(a.chars))
	enc.IntKey("alphabet_size", len(a.chars))
	enc.IntKey("length", a.length)
	enc.Float64Key("bits_per_char", RoundBits(generator.EntropyBits(len(a.chars), 1)))
	enc.Float64Key("entropy_bits", RoundBits(a.bits))
}

func (a alphabetSummary) IsNil() bool { return false }

// DescribeAlphabet writes the selectable characters of g and the entropy of a value of length
func DescribeAlphabet(w io.Writer, format Format, g *generator.Generator, length int) error {
	rules := g.Rules()
	s := alphabetSummary{
		accept:  rules.Accept.String(),
		exclude: rules.Exclude.String(),
		chars:   g.Alphabet(),
		length:  length,
		bits:    g.Bits(length),
	}
	perChar := humanize.Ftoa(RoundBits(generator.EntropyBits(len(s.chars), 1)))
	total := humanize.Ftoa(RoundBits(s.bits))

	switch format {
	case Plain:
		fmt.Fprintln(w, TabString("accept", s.accept))
		fmt.Fprintln(w, TabString("exclude", s.exclude))
		fmt.Fprintln(w, TabString("alphabet", convert.Printable(s.chars)))
		fmt.Fprintln(w, TabString("size", strconv.Itoa(len(s.chars))))
		fmt.Fprintln(w, TabString("bits/char", perChar))
		fmt.Fprintln(w, TabString("bits", total))
	case JSON:
		data, err := gojay.MarshalJSONObject(s)
		if err != nil {
			return fmt.Errorf("failed to encode alphabet: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return err
		}
	case Pretty:
		fallthrough
	default:
		table := tablewriter.NewWriter(w)
		table.SetAutoWrapText(false)
		table.SetHeader([]string{"property", "value"})
		table.AppendBulk([][]string{
			{"accept", s.accept},
			{"exclude", s.exclude},
			{"alphabet", convert.Printable(s.chars)},
			{"size", humanize.Comma(int64(len(s.chars)))},
			{"bits per char", perChar},
			{"bits for length " + strconv.Itoa(length), total},
		})
		table.Render()
	}
	return nil
}
