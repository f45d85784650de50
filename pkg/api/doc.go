// Package api provides the HTTP API layer for the gtpower daemon.
//
// This package is a thin wrapper around pkg/server, configuring it with the
// tier, power and recipe handlers. The embedded recipe catalog is loaded once
// before the server starts listening; after that every handler only reads.
//
// # Usage
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET /v1/tiers   - the tier table with thresholds and recipe voltages
//   - GET /v1/power   - cost report for eut, duration, machineTier, overclock, unit, seconds
//   - GET /v1/recipes - recipes filtered by tier ceiling and category
//
// System endpoints:
//   - GET /health  - liveness
//   - GET /ready   - readiness
//   - GET /metrics - Prometheus metrics
//
// Example:
//
//	curl "http://localhost:8080/v1/recipes?tier=EV&seconds=true"
package api
