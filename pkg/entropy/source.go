package entropy

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
)

const (
	// NameCrypto reads from the operating system csprng through crypto/rand
	NameCrypto = "crypto"
	// NameURandom reads /dev/urandom directly
	NameURandom = "urandom"
	// NameCycle is a deterministic 0..255 cycle. Never use it for real values
	NameCycle = "cycle"

	URandomPath = "/dev/urandom"

	bufferSize = 64
)

var (
	ErrSourceExhausted = fmt.Errorf("entropy source exhausted")
	ErrSourceError     = fmt.Errorf("entropy source failed")
)

// Source yields one random byte per call
type Source interface {
	NextByte() (byte, error)
}

// SourceCloser is a Source holding a resource that must be released
type SourceCloser interface {
	Source
	io.Closer
}

// ReaderSource adapts an io.Reader into a Source
type ReaderSource struct {
	r *bufio.Reader
	c io.Closer
}

// NewReaderSource buffers r. Reads are never larger than a small buffer so little entropy is wasted
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: bufio.NewReaderSize(r, bufferSize)}
}

// NewCryptoSource reads from crypto/rand
func NewCryptoSource() *ReaderSource {
	return NewReaderSource(rand.Reader)
}

// OpenFile opens a character device or file, typically /dev/urandom
func OpenFile(path string) (*ReaderSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open entropy source")
	}
	s := NewReaderSource(f)
	s.c = f
	return s, nil
}

// Open resolves a source by name: crypto, urandom, cycle or a file path
func Open(name string) (SourceCloser, error) {
	switch name {
	case NameCrypto, "":
		return NewCryptoSource(), nil
	case NameURandom:
		return OpenFile(URandomPath)
	case NameCycle:
		return &CycleSource{}, nil
	default:
		return OpenFile(name)
	}
}

func (s *ReaderSource) NextByte() (byte, error) {
	b, err := s.r.ReadByte()
	if err == nil {
		return b, nil
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return 0, ErrSourceExhausted
	}
	return 0, fmt.Errorf("%w: %v", ErrSourceError, err)
}

func (s *ReaderSource) Close() error {
	if s.c == nil {
		return nil
	}
	return s.c.Close()
}

// CycleSource deterministically yields 0, 1, ..., 255, 0, 1, ...
type CycleSource struct {
	next byte
}

func (s *CycleSource) NextByte() (byte, error) {
	b := s.next
	s.next++
	return b, nil
}

func (s *CycleSource) Close() error { return nil }

// LimitedSource yields at most N bytes from Source and then fails with ErrSourceExhausted
type LimitedSource struct {
	Source Source
	N      int64
}

func (s *LimitedSource) NextByte() (byte, error) {
	if s.N <= 0 {
		return 0, ErrSourceExhausted
	}
	s.N--
	return s.Source.NextByte()
}

// CountingSource records how many bytes were drawn from Source
type CountingSource struct {
	Source Source
	Count  int64
}

func (s *CountingSource) NextByte() (byte, error) {
	b, err := s.Source.NextByte()
	if err == nil {
		s.Count++
	}
	return b, err
}

// SyncSource serialises access to a shared source, one byte at a time
type SyncSource struct {
	mu  sync.Mutex
	src SourceCloser
}

func NewSyncSource(src SourceCloser) *SyncSource {
	return &SyncSource{src: src}
}

func (s *SyncSource) NextByte() (byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.NextByte()
}

func (s *SyncSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Close()
}
