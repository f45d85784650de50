package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gtnh/gtpower/pkg/logging"
	"github.com/gtnh/gtpower/pkg/recipe"
	"github.com/gtnh/gtpower/pkg/server"
)

const (
	name           = "gtpowerd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/gtnh/gtpower/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Routes loads the embedded recipe catalog and returns the application
// handlers keyed by path. The catalog is fully built before any handler
// is returned.
func Routes(ctx context.Context) (map[string]http.HandlerFunc, error) {
	c, err := recipe.DefaultCatalog(ctx)
	if err != nil {
		return nil, err
	}
	m := c.Model()

	return map[string]http.HandlerFunc{
		"/v1/tiers":   m.HandleTiers,
		"/v1/power":   m.HandlePower,
		"/v1/recipes": c.HandleRecipes,
	}, nil
}

// Serve starts the API server and blocks until shutdown.
// It configures logging, loads the catalog, sets up routes, and handles
// graceful shutdown.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	r, err := Routes(ctx)
	if err != nil {
		slog.Error("failed to load recipe catalog", "error", err)
		return err
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(r),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
