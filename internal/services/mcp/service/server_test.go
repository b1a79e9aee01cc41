package service

import (
	"context"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/plushfoundry/mascotforge/internal/design"
)

func newTestDesignService(t *testing.T) *design.Service {
	t.Helper()

	catalog, err := design.LoadEmbedded()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return design.NewService(catalog)
}

func TestNewRequiresDesignService(t *testing.T) {
	t.Parallel()

	if _, err := New(nil, nil); err == nil {
		t.Fatal("expected error for nil design service")
	}
}

func TestRegisterDesignToolsNoPanic(t *testing.T) {
	t.Parallel()

	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "1.0"}, nil)
	registerDesignTools(server, newTestDesignService(t), nil)
}

func TestServeWithTransportRequiresServer(t *testing.T) {
	t.Parallel()

	var nilServer *Server
	if err := nilServer.serveWithTransport(context.Background(), &mcp.StdioTransport{}); err == nil {
		t.Fatal("expected error for nil server")
	}

	emptyServer := &Server{}
	if err := emptyServer.serveWithTransport(context.Background(), &mcp.StdioTransport{}); err == nil {
		t.Fatal("expected error for unconfigured server")
	}
}

func TestRunRejectsUnknownTransport(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), newTestDesignService(t), nil, Config{Transport: "carrier-pigeon"})
	if err == nil {
		t.Fatal("expected error for unknown transport")
	}
}

func TestServeHTTPStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	server, err := New(newTestDesignService(t), nil)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.ServeHTTP(ctx, "127.0.0.1:0")
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve http: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}
