package pwdgen

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/assetnote/pwdgen/pkg/alphabet"
	"github.com/assetnote/pwdgen/pkg/entropy"
	errors2 "github.com/assetnote/pwdgen/pkg/errors"
	"github.com/assetnote/pwdgen/pkg/generator"
	"github.com/assetnote/pwdgen/pkg/log"
	humanize "github.com/dustin/go-humanize"
	"github.com/segmentio/ksuid"
	"github.com/valyala/bytebufferpool"
)

var (
	ErrDeclined = fmt.Errorf("generation declined")
)

// NewOptions applies opts over the defaults and validates the result
func NewOptions(opts ...Option) (*Options, error) {
	o := NewDefaultOptions()
	for _, v := range opts {
		if err := v(o); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// NewGenerator builds the alphabet from the accept and exclude tokens of o.
// Every invalid token is logged before the aggregated error is returned
func NewGenerator(o *Options) (*generator.Generator, error) {
	rules, err := alphabet.Build(o.Accept, o.Exclude)
	if err != nil {
		errors2.PrintError(err, 0)
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	log.Debug().Str("rules", rules.String()).Msg("alphabet built")
	return generator.New(rules, generator.MaxRetries(o.MaxRetries)), nil
}

// Run generates Count values and writes them to the configured writer.
// Nothing is written unless the whole batch succeeds
func Run(ctx context.Context, opts ...Option) error {
	o, err := NewOptions(opts...)
	if err != nil {
		return err
	}
	log.Debug().Msgf("Options loaded: \n%s", o)

	g, err := NewGenerator(o)
	if err != nil {
		return err
	}

	if err := checkWeak(o, g); err != nil {
		return err
	}

	// the batch is written only once every value has been generated
	batch := bytebufferpool.Get()
	defer bytebufferpool.Put(batch)

	emitter, err := NewEmitter(batch, o.Output, o.Template)
	if err != nil {
		return err
	}

	src, err := entropy.Open(o.Source)
	if err != nil {
		return err
	}
	defer src.Close()

	var bar *ProgressBar
	if o.Progress && o.Count > 1 {
		bar = NewProgress(os.Stderr, int64(o.Count))
		defer bar.Finish()
	}

	var (
		start = time.Now()
		total generator.Stats
		bits  = g.Bits(o.Length)
	)
	for i := 0; i < o.Count; i++ {
		v, stats, err := g.GenerateStats(ctx, o.Length, src)
		total.Draws += stats.Draws
		total.Rejected += stats.Rejected
		if err != nil {
			return fmt.Errorf("failed to generate value %d: %w", i, err)
		}

		r := &Record{
			ID:           ksuid.New().String(),
			Index:        i,
			Value:        v,
			AlphabetSize: g.Size(),
			EntropyBits:  bits,
		}
		if err := emitter.Emit(r); err != nil {
			return fmt.Errorf("failed to format value %d: %w", i, err)
		}
		bar.Incr(1)
	}

	if _, err := o.Writer.Write(batch.B); err != nil {
		return fmt.Errorf("failed to write values: %w", err)
	}

	log.Debug().
		Str("values", humanize.Comma(int64(o.Count))).
		Str("draws", humanize.Comma(total.Draws)).
		Str("rejected", humanize.Comma(total.Rejected)).
		Str("bits", humanize.Ftoa(RoundBits(bits))).
		Dur("duration", time.Since(start)).
		Msg("generation complete")
	return nil
}

func checkWeak(o *Options, g *generator.Generator) error {
	size := g.Size()
	if o.Length == 0 || size == 0 || size >= WeakAlphabetSize {
		return nil
	}

	log.Warn().
		Int("alphabet_size", size).
		Str("bits", humanize.Ftoa(RoundBits(g.Bits(o.Length)))).
		Msg("alphabet is small, generated values are easy to guess")
	if !o.Interactive {
		return nil
	}

	ok, err := o.Prompter.Confirm(fmt.Sprintf("Only %d characters selectable. Generate anyway", size))
	if err != nil {
		return fmt.Errorf("failed to prompt: %w", err)
	}
	if !ok {
		return ErrDeclined
	}
	return nil
}
