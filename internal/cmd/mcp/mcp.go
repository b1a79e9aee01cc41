// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/plushfoundry/mascotforge/internal/design"
	"github.com/plushfoundry/mascotforge/internal/platform/config"
	"github.com/plushfoundry/mascotforge/internal/platform/otel"
	"github.com/plushfoundry/mascotforge/internal/services/design/storage"
	designsqlite "github.com/plushfoundry/mascotforge/internal/services/design/storage/sqlite"
	"github.com/plushfoundry/mascotforge/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	Transport string `env:"MASCOTFORGE_MCP_TRANSPORT"  envDefault:"stdio"`
	HTTPAddr  string `env:"MASCOTFORGE_MCP_HTTP_ADDR"  envDefault:"localhost:8081"`
	StorePath string `env:"MASCOTFORGE_MCP_STORE_PATH"`
	DocsDir   string `env:"MASCOTFORGE_DESIGN_DOCS_DIR"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.StorePath, "store-path", cfg.StorePath, "SQLite design history path (empty disables history)")
	fs.StringVar(&cfg.DocsDir, "docs-dir", cfg.DocsDir, "directory overriding the embedded design documents")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP design server.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "mcp")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	catalog, err := loadCatalog(cfg.DocsDir)
	if err != nil {
		return err
	}
	svc := design.NewService(catalog)

	var store storage.DesignRecordStore
	if cfg.StorePath != "" {
		sqliteStore, err := designsqlite.Open(cfg.StorePath)
		if err != nil {
			return fmt.Errorf("open design store: %w", err)
		}
		defer func() {
			if err := sqliteStore.Close(); err != nil {
				log.Printf("close design store: %v", err)
			}
		}()
		store = sqliteStore
	}

	return service.Run(ctx, svc, store, service.Config{
		Transport: service.TransportKind(cfg.Transport),
		HTTPAddr:  cfg.HTTPAddr,
	})
}

func loadCatalog(docsDir string) (*design.Catalog, error) {
	if docsDir == "" {
		catalog, err := design.LoadEmbedded()
		if err != nil {
			return nil, fmt.Errorf("load embedded design documents: %w", err)
		}
		return catalog, nil
	}
	catalog, err := design.Load(os.DirFS(docsDir))
	if err != nil {
		return nil, fmt.Errorf("load design documents from %s: %w", docsDir, err)
	}
	return catalog, nil
}
