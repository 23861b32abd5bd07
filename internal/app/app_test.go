package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/primedecor/backend/internal/config"
	"github.com/primedecor/backend/internal/metrics"
	testhelpers "github.com/primedecor/backend/internal/test"
	"github.com/primedecor/backend/internal/worker"
)

func newTestReaper() *worker.Reaper {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	m := metrics.New(prometheus.NewRegistry())
	return worker.NewReaper(testhelpers.OrderFacadeStub{}, 10*time.Millisecond, time.Minute, 1, 1, m, logger)
}

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{RunAddress: ":9999"}
	router := gin.New()
	server := newHTTPServer(serverParams{Config: cfg, Router: router})
	if server.Addr != ":9999" {
		t.Fatalf("expected address :9999, got %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatalf("expected handler to be router")
	}
}

func TestNewReaperUsesConfig(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	m := metrics.New(prometheus.NewRegistry())
	reaper := newReaper(reaperParams{
		Facade:  &StudioFacade{},
		Config:  &config.Config{ReaperInterval: 30 * time.Second, ReaperMinAge: 5 * time.Minute, ReaperBatch: 3, ReaperWorkerCount: 2},
		Metrics: m,
		Logger:  logger,
	})
	if reaper == nil {
		t.Fatal("expected reaper instance")
	}
}

func TestRegisterLifecycleStartStop(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	reaper := newTestReaper()
	cfg := &config.Config{ShutdownTimeout: 100 * time.Millisecond}

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     logger,
		Server:     server,
		Reaper:     reaper,
		Config:     cfg,
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one hook registered, got %d", len(recorder.Hooks))
	}

	hook := recorder.Hooks[0]
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := hook.OnStart(ctx); err != nil {
		t.Fatalf("on start failed: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = hook.OnStop(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected on stop to finish")
	}
}

func TestRegisterLifecycleShutdownOnServerError(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	server := &http.Server{Addr: "bad addr"}
	reaper := newTestReaper()

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     logger,
		Server:     server,
		Reaper:     reaper,
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	hook := recorder.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("on start returned error: %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(time.Second):
		t.Fatal("expected shutdown to be triggered on server error")
	}

	_ = hook.OnStop(context.Background())
}

func TestLifecycleRecorderAppend(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	recorder.Append(fx.Hook{})
	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected hook to be appended")
	}
}

func TestShutdownerStub(t *testing.T) {
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	if err := shutdowner.Shutdown(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	select {
	case <-shutdowner.Called:
	default:
		t.Fatal("expected shutdown notification")
	}
}
