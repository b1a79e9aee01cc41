package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/plushfoundry/mascotforge/internal/design"
	"github.com/plushfoundry/mascotforge/internal/platform/branding"
	"github.com/plushfoundry/mascotforge/internal/services/design/storage"
	"github.com/plushfoundry/mascotforge/internal/services/mcp/domain"
)

// serverVersion identifies the MCP server version.
const serverVersion = "0.1.0"

// serverName identifies this MCP server to clients.
var serverName = branding.AppName + " MCP"

// defaultShutdownTimeout bounds graceful HTTP server shutdown.
const defaultShutdownTimeout = 10 * time.Second

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP runs MCP over streamable HTTP for remote clients.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	Transport TransportKind
	HTTPAddr  string
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// New creates a configured MCP server with design tool handlers bound to the
// given design service and optional history store.
func New(svc *design.Service, store storage.DesignRecordStore) (*Server, error) {
	if svc == nil {
		return nil, fmt.Errorf("design service is required")
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	registerDesignTools(mcpServer, svc, store)
	return &Server{mcpServer: mcpServer}, nil
}

func registerDesignTools(server *mcp.Server, svc *design.Service, store storage.DesignRecordStore) {
	mcp.AddTool(server, domain.GenerateDesignTool(), domain.GenerateDesignHandler(svc, store))
	mcp.AddTool(server, domain.ArchetypeRulesTool(), domain.ArchetypeRulesHandler(svc))
	mcp.AddTool(server, domain.DesignHistoryTool(), domain.DesignHistoryHandler(store))
}

// Run is the service entrypoint for MCP and blocks until context cancellation.
func Run(ctx context.Context, svc *design.Service, store storage.DesignRecordStore, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	server, err := New(svc, store)
	if err != nil {
		return err
	}

	switch cfg.Transport {
	case TransportStdio:
		return server.Serve(ctx)
	case TransportHTTP:
		return server.ServeHTTP(ctx, cfg.HTTPAddr)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// Serve starts the MCP server on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
// Context cancellation is the normal shutdown path and is not reported as an error.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// ServeHTTP starts the MCP server over streamable HTTP on addr and blocks
// until the context ends or the listener fails.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if addr == "" {
		// Localhost-only by default; remote exposure requires an explicit address.
		addr = "localhost:8081"
	}
	if ctx == nil {
		ctx = context.Background()
	}

	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
	httpServer := &http.Server{Addr: addr, Handler: handler}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[MCP] HTTP transport listening on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown MCP HTTP server: %w", err)
		}
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve MCP HTTP: %w", err)
		}
		return nil
	}
}
