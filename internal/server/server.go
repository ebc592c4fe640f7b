// Package server exposes the calculators over HTTP as a small JSON API.
package server

import (
	"context"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/alexiusacademia/gocable/internal/batch"
	"github.com/alexiusacademia/gocable/internal/cable"
	"github.com/alexiusacademia/gocable/internal/ec2"
	"github.com/alexiusacademia/gocable/internal/frame"
	"github.com/alexiusacademia/gocable/internal/report"
	"github.com/alexiusacademia/gocable/internal/version"
)

// ipRateLimiter hands out one token-bucket limiter per client IP.
type ipRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	r        rate.Limit
	burst    int
}

func newIPRateLimiter(r rate.Limit, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		r:        r,
		burst:    burst,
	}
}

func (l *ipRateLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(l.r, l.burst)
		l.limiters[ip] = lim
	}
	return lim
}

func (l *ipRateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !l.get(ip).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}

// New assembles the router with all calculator routes and middleware.
func New() *mux.Router {
	cableH := &cable.Handler{}
	anchorsH := &ec2.Handler{}
	frameH := &frame.Handler{}
	batchH := &batch.Handler{}
	reportH := &report.Handler{}

	r := mux.NewRouter()
	r.Use(logMiddleware)
	r.Use(corsMiddleware)
	r.Use(newIPRateLimiter(rate.Limit(10), 20).middleware)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", health).Methods(http.MethodGet)

	tools := api.PathPrefix("/tools").Subrouter()
	tools.HandleFunc("/cable/calc", cableH.Calc).Methods(http.MethodPost, http.MethodOptions)
	tools.HandleFunc("/anchors/calc", anchorsH.Calc).Methods(http.MethodPost, http.MethodOptions)
	tools.HandleFunc("/frame/calc", frameH.Calc).Methods(http.MethodPost, http.MethodOptions)
	tools.HandleFunc("/batch/calc", batchH.Calc).Methods(http.MethodPost, http.MethodOptions)
	tools.HandleFunc("/batch/import", batchH.Import).Methods(http.MethodPost, http.MethodOptions)
	tools.HandleFunc("/report/pdf", reportH.Generate).Methods(http.MethodPost, http.MethodOptions)

	return r
}

// Run serves the API on addr until SIGINT/SIGTERM, then drains for up to
// ten seconds before returning.
func Run(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      New(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Print("shutting down")
	return srv.Shutdown(shutdownCtx)
}
