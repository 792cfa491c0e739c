package pwdgen

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/assetnote/pwdgen/pkg/convert"
	"github.com/assetnote/pwdgen/pkg/entropy"
)

const (
	DefaultLength = 8
	DefaultCount  = 1
	DefaultSource = entropy.NameCrypto

	// WeakAlphabetSize is the alphabet size under which a warning is logged
	// and, in interactive mode, a confirmation is requested
	WeakAlphabetSize = 16
)

var (
	ErrInvalidLength = fmt.Errorf("invalid length")
)

type Options struct {
	Length      int
	Accept      []string
	Exclude     []string
	Count       int
	Source      string
	MaxRetries  int64
	Template    string
	Progress    bool
	Interactive bool
	Output      Format

	Writer   io.Writer
	Prompter Prompter
}

type Option func(o *Options) error

func NewDefaultOptions() *Options {
	return &Options{
		Length:   DefaultLength,
		Count:    DefaultCount,
		Source:   DefaultSource,
		Output:   Pretty,
		Writer:   os.Stdout,
		Prompter: &TerminalPrompter{},
	}
}

func (o Options) String() string {
	p := map[string]interface{}{
		"Length":      o.Length,
		"Accept":      o.Accept,
		"Exclude":     o.Exclude,
		"Count":       o.Count,
		"Source":      o.Source,
		"MaxRetries":  o.MaxRetries,
		"Template":    o.Template,
		"Progress":    o.Progress,
		"Interactive": o.Interactive,
		"Output":      o.Output,
	}
	ret := make([]string, 0)
	for k, v := range p {
		ret = append(ret, fmt.Sprintf("%s: %v", k, v))
	}
	return strings.Join(ret, "\n")
}

// Validate will ensure the options are sane after all the flags are applied
func (o Options) Validate() error {
	if o.Length < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, o.Length)
	}
	if o.Count < 1 {
		return fmt.Errorf("count is too low (%d)", o.Count)
	}
	if o.MaxRetries < 0 {
		return fmt.Errorf("max retries cannot be negative (%d)", o.MaxRetries)
	}
	if o.Writer == nil {
		return fmt.Errorf("no output writer")
	}
	return nil
}

// ParseLength parses a length made only of decimal digits
func ParseLength(in string) (int, error) {
	if in == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidLength)
	}
	ret := 0
	for i := 0; i < len(in); i++ {
		if in[i] < '0' || in[i] > '9' {
			return 0, fmt.Errorf("%w %q", ErrInvalidLength, in)
		}
		d := int(in[i] - '0')
		if ret > (math.MaxInt32-d)/10 {
			return 0, fmt.Errorf("%w %q: too large", ErrInvalidLength, in)
		}
		ret = ret*10 + d
	}
	return ret, nil
}

func Length(n int) Option {
	return func(o *Options) error {
		o.Length = n
		return nil
	}
}

// LengthString parses the length with ParseLength
func LengthString(in string) Option {
	return func(o *Options) error {
		n, err := ParseLength(in)
		if err != nil {
			return err
		}
		o.Length = n
		return nil
	}
}

func Accept(tokens ...string) Option {
	return func(o *Options) error {
		o.Accept = convert.UniqueStrings(append(o.Accept, tokens...))
		return nil
	}
}

func Exclude(tokens ...string) Option {
	return func(o *Options) error {
		o.Exclude = convert.UniqueStrings(append(o.Exclude, tokens...))
		return nil
	}
}

func Count(n int) Option {
	return func(o *Options) error {
		o.Count = n
		return nil
	}
}

func Source(name string) Option {
	return func(o *Options) error {
		o.Source = name
		return nil
	}
}

func MaxRetries(n int64) Option {
	return func(o *Options) error {
		o.MaxRetries = n
		return nil
	}
}

func Template(t string) Option {
	return func(o *Options) error {
		o.Template = t
		return nil
	}
}

func ProgressBarEnabled(v bool) Option {
	return func(o *Options) error {
		o.Progress = v
		return nil
	}
}

func Interactive(v bool) Option {
	return func(o *Options) error {
		o.Interactive = v
		return nil
	}
}

func OutputFormat(f Format) Option {
	return func(o *Options) error {
		o.Output = f
		return nil
	}
}

func Writer(w io.Writer) Option {
	return func(o *Options) error {
		o.Writer = w
		return nil
	}
}

func WithPrompter(p Prompter) Option {
	return func(o *Options) error {
		o.Prompter = p
		return nil
	}
}
