package observability

import (
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/config"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/logging"
)

func TestStart_AllDisabledIsNoop(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		UptraceEnabled: true,
		ServiceName:    "citrus-league-scorer",
		AppEnv:         config.EnvStage,
	}
	shutdown, err := Start(cfg, "scorer", logging.NewNop())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := shutdown(t.Context()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestStart_PprofServesAndStops(t *testing.T) {
	t.Parallel()

	cfg := config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}
	shutdown, err := Start(cfg, "api", nil)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := shutdown(t.Context()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestStart_PprofPortInUseFails(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	go func() { _ = http.Serve(ln, http.NotFoundHandler()) }()

	cfg := config.Config{PprofEnabled: true, PprofAddr: ln.Addr().String()}
	if _, err := Start(cfg, "api", logging.NewNop()); err == nil {
		t.Fatalf("expected bind failure")
	}
}

func TestStartPprof_ExposesIndex(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()

	stop, err := startPprof(config.Config{PprofEnabled: true, PprofAddr: addr}, "api", logging.NewNop())
	if err != nil {
		t.Fatalf("start pprof: %v", err)
	}
	defer func() { _ = stop(t.Context()) }()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + addr + "/debug/pprof/")
	if err != nil {
		t.Fatalf("get pprof index: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
