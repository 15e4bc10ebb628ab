package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	logging "github.com/ipfs/go-log/v2"

	"sigvault/internal/domain"
)

var log = logging.Logger("sigvault/httpapi")

// maxBodyBytes caps request bodies; documents travel base64-encoded inside them.
const maxBodyBytes = 16 << 20

// Services are the domain operations the server exposes.
type Services struct {
	Identities domain.IdentityService
	Vault      domain.KeyVault
	Signer     domain.SigningService
	Verifier   domain.VerificationService
}

// Options tune the transport.
type Options struct {
	// RateLimitRPS and RateLimitBurst size the per-client token bucket; a
	// non-positive value disables limiting.
	RateLimitRPS   float64
	RateLimitBurst int

	// Metrics receives request and domain counters. NewMetrics is used when nil.
	Metrics *Metrics
}

// Server is the HTTP front of sigvault.
type Server struct {
	svc     Services
	limiter *rateLimiter
	metrics *Metrics
	mux     *http.ServeMux
	now     func() time.Time
}

// New returns a Server routing to svc.
func New(svc Services, opts Options) *Server {
	m := opts.Metrics
	if m == nil {
		m = NewMetrics()
	}
	s := &Server{
		svc:     svc,
		limiter: newRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst),
		metrics: m,
		mux:     http.NewServeMux(),
		now:     time.Now,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /api/user/create", s.handleCreateUser)
	s.mux.HandleFunc("GET /api/user/{nif}", s.handleGetUser)
	s.mux.HandleFunc("DELETE /api/user/{nif}", s.handleDeleteUser)
	s.mux.HandleFunc("POST /api/userkeys/generate-keys/{nif}", s.handleGenerateKeys)
	s.mux.HandleFunc("GET /api/userkeys/{nif}", s.handleGetKeys)
	s.mux.HandleFunc("POST /api/sign", s.handleSign)
	s.mux.HandleFunc("POST /api/signature/verify", s.handleVerify)

	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeText(w, http.StatusOK, "ok")
	})
	s.mux.Handle("GET /metrics", s.metrics.Handler())
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := s.now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	if !s.limiter.allow(clientKey(r), start) {
		s.metrics.rateLimited.Inc()
		writeJSON(rec, http.StatusTooManyRequests, ErrorBody{Error: "rate limit exceeded", Code: CodeRateLimited})
	} else {
		r.Body = http.MaxBytesReader(rec, r.Body, maxBodyBytes)
		s.mux.ServeHTTP(rec, r)
	}

	elapsed := s.now().Sub(start)
	route := r.Pattern
	if route == "" {
		route = "unmatched"
	}
	s.metrics.requests.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
	s.metrics.duration.WithLabelValues(route).Observe(elapsed.Seconds())
	log.Infof("%s %s from %s -> %d (%d bytes, %s)", r.Method, r.URL.Path, r.RemoteAddr, rec.status, rec.bytes, elapsed)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Infof("sigvault listening on %s", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Infof("sigvault stopped")
	return nil
}

// statusRecorder captures the status and size of a response.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.wroteHeader {
		r.status = code
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}
