package generator

import (
	"context"
	"fmt"
	"math"

	"github.com/assetnote/pwdgen/pkg/alphabet"
	"github.com/assetnote/pwdgen/pkg/entropy"
)

// CandidateMask keeps the low 7 bits of a raw byte
const CandidateMask = 0x7F

var (
	ErrNonTerminating = fmt.Errorf("alphabet selects no characters")
	ErrRetryBudget    = fmt.Errorf("retry budget exhausted")
	ErrInvalidLength  = fmt.Errorf("invalid length")
)

// Generator draws values from a frozen alphabet
type Generator struct {
	rules  alphabet.Rules
	table  alphabet.Table
	config Config
}

// Stats describes the work done by one Generate call
type Stats struct {
	Draws    int64
	Rejected int64
}

// New freezes rules into a lookup table. Later changes to rules do not affect the Generator
func New(rules alphabet.Rules, opts ...ConfigOption) *Generator {
	c := NewDefaultConfig()
	for _, o := range opts {
		o(c)
	}
	return &Generator{
		rules:  rules,
		table:  rules.Table(),
		config: *c,
	}
}

func (g *Generator) Rules() alphabet.Rules {
	return g.rules
}

// Alphabet returns the selectable characters in ascending order
func (g *Generator) Alphabet() []byte {
	return g.table.Chars()
}

// Size is the number of selectable characters
func (g *Generator) Size() int {
	return g.table.Size()
}

// Bits is the entropy of a value of the given length, log2(size) per character
func (g *Generator) Bits(length int) float64 {
	return EntropyBits(g.Size(), length)
}

// EntropyBits returns length*log2(size), or 0 when no value can be generated
func EntropyBits(size int, length int) float64 {
	if size <= 0 || length <= 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(size))
}

// Generate draws a value of exactly length characters from src
func (g *Generator) Generate(ctx context.Context, length int, src entropy.Source) (string, error) {
	v, _, err := g.GenerateStats(ctx, length, src)
	return v, err
}

// GenerateStats is Generate that also reports how many bytes were drawn and rejected
func (g *Generator) GenerateStats(ctx context.Context, length int, src entropy.Source) (string, Stats, error) {
	var stats Stats
	if length < 0 {
		return "", stats, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	if length == 0 {
		return "", stats, nil
	}
	if g.table.Size() == 0 {
		return "", stats, fmt.Errorf("%w: %s", ErrNonTerminating, g.rules)
	}

	out := make([]byte, 0, length)
	for len(out) < length {
		if err := ctx.Err(); err != nil {
			return "", stats, err
		}

		b, err := src.NextByte()
		if err != nil {
			return "", stats, err
		}
		stats.Draws++

		c := b & CandidateMask
		if !g.table[c] {
			stats.Rejected++
			if g.config.MaxRetries > 0 && stats.Rejected > g.config.MaxRetries {
				return "", stats, fmt.Errorf("%w: rejected %d candidates", ErrRetryBudget, stats.Rejected)
			}
			continue
		}
		out = append(out, c)
	}
	return string(out), stats, nil
}

// Generate builds a Generator for rules and draws a single value
func Generate(ctx context.Context, length int, rules alphabet.Rules, src entropy.Source, opts ...ConfigOption) (string, error) {
	return New(rules, opts...).Generate(ctx, length, src)
}
