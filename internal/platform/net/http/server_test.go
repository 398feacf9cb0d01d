package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clubhouse/internal/platform/config"
	phttp "clubhouse/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestNewServer_DefaultsAndOptions(t *testing.T) {
	t.Setenv("API_PORT", "")
	hooked := false
	srv := phttp.NewServer(config.New(), phttp.WithMux(func(*chi.Mux) { hooked = true }))
	if srv.Addr() != ":4000" || !hooked {
		t.Fatalf("addr=%q hooked=%v", srv.Addr(), hooked)
	}

	t.Setenv("API_PORT", "8081")
	if got := phttp.NewServer(config.New()).Addr(); got != ":8081" {
		t.Fatalf("addr from env = %q", got)
	}
	if got := phttp.NewServer(config.New(), phttp.WithAddr("127.0.0.1:0")).Addr(); got != "127.0.0.1:0" {
		t.Fatalf("WithAddr = %q", got)
	}
}

func TestRouter_GroupRouteWith(t *testing.T) {
	t.Parallel()
	r := phttp.AdaptChi(chi.NewRouter())

	tag := func(k string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				w.Header().Set(k, "1")
				next.ServeHTTP(w, req)
			})
		}
	}
	r.Use(tag("X-Root"))
	r.Group(func(g phttp.Router) {
		g.Use(tag("X-Group"))
		g.Get("/g", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "g") })
	})
	r.Route("/api", func(sub phttp.Router) {
		sub.With(tag("X-With")).Post("/m", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusCreated) })
		sub.Put("/m", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusAccepted) })
		sub.Patch("/m", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
		sub.Delete("/m", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	})

	cases := []struct {
		method, path string
		code         int
		headers      []string
	}{
		{"GET", "/g", http.StatusOK, []string{"X-Root", "X-Group"}},
		{"POST", "/api/m", http.StatusCreated, []string{"X-Root", "X-With"}},
		{"PUT", "/api/m", http.StatusAccepted, []string{"X-Root"}},
		{"PATCH", "/api/m", http.StatusNoContent, nil},
		{"DELETE", "/api/m", http.StatusOK, nil},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(c.method, c.path, nil))
		if rec.Code != c.code {
			t.Fatalf("%s %s = %d", c.method, c.path, rec.Code)
		}
		for _, h := range c.headers {
			if rec.Header().Get(h) != "1" {
				t.Fatalf("%s %s missing %s", c.method, c.path, h)
			}
		}
	}
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("PUT", "/g", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("PUT /g = %d", rec.Code)
	}
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	t.Parallel()
	srv := phttp.NewServer(config.New(), phttp.WithAddr("127.0.0.1:0"))
	srv.Router().Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestServer_RunListenError(t *testing.T) {
	t.Parallel()
	srv := phttp.NewServer(config.New(), phttp.WithAddr("256.0.0.1:bad"))
	if err := srv.Run(context.Background()); err == nil {
		t.Fatalf("expected listen error")
	}
}

func TestMountProfiler(t *testing.T) {
	t.Parallel()
	on := phttp.AdaptChi(chi.NewRouter())
	phttp.MountProfiler(on, "/debug", true)
	rec := httptest.NewRecorder()
	on.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/debug/pprof/cmdline", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("profiler enabled: %d", rec.Code)
	}

	off := phttp.AdaptChi(chi.NewRouter())
	phttp.MountProfiler(off, "/debug", false)
	rec = httptest.NewRecorder()
	off.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/debug/pprof/cmdline", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("profiler disabled: %d", rec.Code)
	}
}

func TestURLParam(t *testing.T) {
	t.Parallel()
	r := phttp.AdaptChi(chi.NewRouter())
	var got string
	r.Get("/schedules/{id}", func(w http.ResponseWriter, req *http.Request) { got = phttp.URLParam(req, "id") })

	r.Mux().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/schedules/abc", nil))
	if got != "abc" {
		t.Fatalf("id = %q", got)
	}
	if phttp.URLParam(httptest.NewRequest("GET", "/", nil), "id") != "" {
		t.Fatal("no route context should give empty param")
	}
}
