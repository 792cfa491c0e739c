package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/assetnote/pwdgen/internal/pwdgen"
	"github.com/assetnote/pwdgen/pkg/alphabet"
	"github.com/assetnote/pwdgen/pkg/ascii"
	pctx "github.com/assetnote/pwdgen/pkg/context"
	"github.com/assetnote/pwdgen/pkg/entropy"
	"github.com/assetnote/pwdgen/pkg/generator"
	"github.com/assetnote/pwdgen/pkg/log"
	"github.com/fasthttp/router"
	"github.com/francoispqt/gojay"
	"github.com/valyala/fasthttp"
)

var (
	ErrBadRequest = fmt.Errorf("bad request")
)

type Server struct {
	config Config
	router *router.Router

	// set by Serve before any request is handled
	base context.Context
	src  *entropy.SyncSource
}

func New(opts ...ConfigOption) *Server {
	c := NewDefaultConfig()
	for _, o := range opts {
		o(c)
	}
	s := &Server{config: *c, base: context.Background()}

	r := router.New()
	r.GET("/generate", s.Generate)
	r.GET("/classes", s.Classes)
	r.GET("/health", s.Health)
	s.router = r
	return s
}

func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	s.router.Handler(ctx)
	log.Debug().
		Bytes("method", ctx.Method()).
		Bytes("uri", ctx.RequestURI()).
		Int("status", ctx.Response.StatusCode()).
		Msg("handled request")
}

// Serve opens the entropy source and accepts connections on ln until ctx is cancelled.
// Every request draws from the same source and is cancelled along with ctx
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	src, err := entropy.Open(s.config.Source)
	if err != nil {
		ln.Close()
		return fmt.Errorf("failed to open entropy source %q: %w", s.config.Source, err)
	}
	s.src = entropy.NewSyncSource(src)
	defer s.src.Close()
	s.base = ctx

	srv := &fasthttp.Server{
		Handler: s.Handler,
		Name:    "pwdgen",
	}
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(); err != nil {
			log.Error().Err(err).Msg("failed to shut down server")
		}
	}()

	log.Info().Str("addr", ln.Addr().String()).Msg("serving")
	return srv.Serve(ln)
}

// ListenAndServe listens on the configured address and serves until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Listen)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Listen, err)
	}
	return s.Serve(ctx, ln)
}

type generateResponse struct {
	values pwdgen.Strings
	length int
	size   int
	bits   float64
}

func (g *generateResponse) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ArrayKey("values", g.values)
	enc.IntKey("length", g.length)
	enc.IntKey("alphabet_size", g.size)
	enc.Float64Key("entropy_bits", pwdgen.RoundBits(g.bits))
}

func (g *generateResponse) IsNil() bool { return g == nil }

type errorResponse struct {
	err string
}

func (e *errorResponse) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("error", e.err)
}

func (e *errorResponse) IsNil() bool { return e == nil }

func writeJSON(ctx *fasthttp.RequestCtx, status int, v gojay.MarshalerJSONObject) {
	data, err := gojay.MarshalJSONObject(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal response")
		ctx.Error("internal error", fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.Write(append(data, '\n'))
}

// statusFor maps a generation error to an http status
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, ascii.ErrUnknownPredicate),
		errors.Is(err, alphabet.ErrEmptyRule),
		errors.Is(err, pwdgen.ErrInvalidLength):
		return fasthttp.StatusBadRequest
	case errors.Is(err, generator.ErrNonTerminating),
		errors.Is(err, generator.ErrRetryBudget):
		return fasthttp.StatusUnprocessableEntity
	}
	return fasthttp.StatusServiceUnavailable
}

func peekStrings(args *fasthttp.Args, key string) []string {
	ret := make([]string, 0)
	for _, v := range args.PeekMulti(key) {
		ret = append(ret, string(v))
	}
	return ret
}

func (s *Server) parseInt(args *fasthttp.Args, key string, def int, max int) (int, error) {
	v := args.Peek(key)
	if len(v) == 0 {
		return def, nil
	}
	n, err := pwdgen.ParseLength(string(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrBadRequest, key, err)
	}
	if n > max {
		return 0, fmt.Errorf("%w: %s above maximum of %d", ErrBadRequest, key, max)
	}
	return n, nil
}

// Generate handles GET /generate
func (s *Server) Generate(ctx *fasthttp.RequestCtx) {
	resp, err := s.generate(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("generation failed")
		writeJSON(ctx, statusFor(err), &errorResponse{err: err.Error()})
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (s *Server) generate(ctx *fasthttp.RequestCtx) (*generateResponse, error) {
	args := ctx.QueryArgs()
	length, err := s.parseInt(args, "length", pwdgen.DefaultLength, s.config.MaxLength)
	if err != nil {
		return nil, err
	}
	count, err := s.parseInt(args, "count", 1, s.config.MaxCount)
	if err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: count must be at least 1", ErrBadRequest)
	}

	rules, err := alphabet.Build(peekStrings(args, "accept"), peekStrings(args, "exclude"))
	if err != nil {
		return nil, err
	}
	g := generator.New(rules, generator.MaxRetries(s.config.MaxRetries))

	if s.src == nil {
		return nil, fmt.Errorf("%w: server is not serving", entropy.ErrSourceError)
	}

	// never derive from the RequestCtx, fasthttp recycles it once the handler returns
	gctx, cancel := pctx.WithTimeout(s.base, s.config.Timeout)
	defer cancel()

	resp := &generateResponse{
		values: make(pwdgen.Strings, 0, count),
		length: length,
		size:   g.Size(),
		bits:   g.Bits(length),
	}
	for i := 0; i < count; i++ {
		v, err := g.Generate(gctx, length, s.src)
		if err != nil {
			return nil, err
		}
		resp.values = append(resp.values, v)
	}
	return resp, nil
}

// Classes handles GET /classes
func (s *Server) Classes(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("application/json")
	if err := pwdgen.ListClasses(ctx, pwdgen.JSON); err != nil {
		log.Error().Err(err).Msg("failed to list classes")
		ctx.Error("internal error", fasthttp.StatusInternalServerError)
	}
}

// Health handles GET /health
func (s *Server) Health(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	ctx.WriteString("ok\n")
	ctx.SetStatusCode(fasthttp.StatusOK)
}
