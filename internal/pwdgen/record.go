package pwdgen

import (
	"math"

	"github.com/francoispqt/gojay"
)

// Record is one generated value with the facts about the alphabet it came from
type Record struct {
	ID           string
	Index        int
	Value        string
	AlphabetSize int
	EntropyBits  float64
}

// RoundBits rounds entropy to two decimals for display
func RoundBits(v float64) float64 {
	return math.Round(v*100) / 100
}

func (r *Record) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("id", r.ID)
	enc.IntKey("index", r.Index)
	enc.StringKey("value", r.Value)
	enc.IntKey("length", len(r.Value))
	enc.IntKey("alphabet_size", r.AlphabetSize)
	enc.Float64Key("entropy_bits", RoundBits(r.EntropyBits))
}

func (r *Record) IsNil() bool {
	return r == nil
}

var _ gojay.MarshalerJSONObject = &Record{}

// Strings encodes as a json array of strings
type Strings []string

func (s Strings) MarshalJSONArray(enc *gojay.Encoder) {
	for _, v := range s {
		enc.String(v)
	}
}

func (s Strings) IsNil() bool {
	return s == nil
}
