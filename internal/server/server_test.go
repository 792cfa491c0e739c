package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/assetnote/pwdgen/pkg/ascii"
	"github.com/assetnote/pwdgen/pkg/entropy"
	"github.com/assetnote/pwdgen/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

func init() {
	log.SetOutput(io.Discard)
}

type response struct {
	Values       []string `json:"values"`
	Length       int      `json:"length"`
	AlphabetSize int      `json:"alphabet_size"`
	EntropyBits  float64  `json:"entropy_bits"`
	Error        string   `json:"error"`
}

func memoryServer(t *testing.T, opts ...ConfigOption) *fasthttp.Client {
	t.Helper()
	ln := fasthttputil.NewInmemoryListener()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- New(opts...).Serve(ctx, ln)
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("server did not shut down")
		}
	})

	return &fasthttp.Client{
		Dial: func(addr string) (net.Conn, error) {
			return ln.Dial()
		},
	}
}

func get(t *testing.T, c *fasthttp.Client, uri string) (int, response) {
	t.Helper()
	status, body, err := c.Get(nil, "http://pwdgen"+uri)
	require.NoError(t, err)

	var r response
	require.NoError(t, json.Unmarshal(body, &r), string(body))
	return status, r
}

func TestGenerate(t *testing.T) {
	c := memoryServer(t)

	status, r := get(t, c, "/generate?length=12&count=3&accept=@isdigit&accept=xy&exclude=0")
	assert.Equal(t, fasthttp.StatusOK, status)
	assert.Equal(t, 12, r.Length)
	assert.Equal(t, 11, r.AlphabetSize)
	require.Len(t, r.Values, 3)
	for _, v := range r.Values {
		assert.Len(t, v, 12)
		for i := 0; i < len(v); i++ {
			assert.Contains(t, "123456789xy", string(v[i]))
		}
	}
}

func TestGenerateDefaults(t *testing.T) {
	c := memoryServer(t)

	status, r := get(t, c, "/generate")
	assert.Equal(t, fasthttp.StatusOK, status)
	require.Len(t, r.Values, 1)
	assert.Len(t, r.Values[0], 8)
	assert.Equal(t, 94, r.AlphabetSize)
	for i := 0; i < len(r.Values[0]); i++ {
		assert.True(t, ascii.Graph.Contains(r.Values[0][i]))
	}
}

func TestGenerateCycleSource(t *testing.T) {
	c := memoryServer(t, Source(entropy.NameCycle))

	status, r := get(t, c, "/generate?length=5&accept=ab")
	assert.Equal(t, fasthttp.StatusOK, status)
	assert.Equal(t, []string{"ababa"}, r.Values)
}

func TestGenerateErrors(t *testing.T) {
	c := memoryServer(t, MaxLength(64), MaxCount(2), MaxRetries(10), Source(entropy.NameCycle))

	tests := []struct {
		name   string
		uri    string
		status int
	}{
		{"unknown class", "/generate?accept=@isfoo", fasthttp.StatusBadRequest},
		{"empty rule", "/generate?accept=", fasthttp.StatusBadRequest},
		{"bad length", "/generate?length=-1", fasthttp.StatusBadRequest},
		{"length too large", "/generate?length=65", fasthttp.StatusBadRequest},
		{"count too large", "/generate?count=3", fasthttp.StatusBadRequest},
		{"count zero", "/generate?count=0", fasthttp.StatusBadRequest},
		{"only exclude", "/generate?exclude=abc", fasthttp.StatusUnprocessableEntity},
		{"retry budget", "/generate?accept=~", fasthttp.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, r := get(t, c, tt.uri)
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, r.Error)
			assert.Empty(t, r.Values)
		})
	}
}

func TestServeSourceFailure(t *testing.T) {
	ln := fasthttputil.NewInmemoryListener()
	err := New(Source("/nonexistent/entropy")).Serve(context.Background(), ln)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entropy")
}

func TestGenerateFileSourceIsShared(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entropy.bin")
	require.NoError(t, os.WriteFile(path, []byte("abcdefghij"), 0600))
	c := memoryServer(t, Source(path))

	tests := []struct {
		status int
		values []string
	}{
		{fasthttp.StatusOK, []string{"abcde"}},
		{fasthttp.StatusOK, []string{"fghij"}},
		{fasthttp.StatusServiceUnavailable, nil},
	}
	for i, tt := range tests {
		status, r := get(t, c, "/generate?length=5&accept=@islower")
		assert.Equal(t, tt.status, status, "request %d", i)
		assert.Equal(t, tt.values, r.Values, "request %d", i)
	}
}

func TestServeConcurrentShutdown(t *testing.T) {
	ln := fasthttputil.NewInmemoryListener()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- New(MaxRetries(0)).Serve(ctx, ln)
	}()

	c := &fasthttp.Client{
		Dial: func(addr string) (net.Conn, error) {
			return ln.Dial()
		},
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				status, _, err := c.Get(nil, "http://pwdgen/generate?length=32&count=4")
				if err != nil {
					return
				}
				// requests caught by the shutdown are cancelled
				assert.Contains(t, []int{fasthttp.StatusOK, fasthttp.StatusServiceUnavailable}, status)
			}
		}()
	}

	// shut down while requests may still be in flight
	time.Sleep(10 * time.Millisecond)
	cancel()
	wg.Wait()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestClassesAndHealth(t *testing.T) {
	c := memoryServer(t)

	status, body, err := c.Get(nil, "http://pwdgen/classes")
	require.NoError(t, err)
	assert.Equal(t, fasthttp.StatusOK, status)
	var classes []map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &classes))
	assert.Len(t, classes, len(ascii.Classes()))

	status, body, err = c.Get(nil, "http://pwdgen/health")
	require.NoError(t, err)
	assert.Equal(t, fasthttp.StatusOK, status)
	assert.Equal(t, "ok", strings.TrimSpace(string(body)))

	status, _, err = c.Get(nil, "http://pwdgen/missing")
	require.NoError(t, err)
	assert.Equal(t, fasthttp.StatusNotFound, status)
}
