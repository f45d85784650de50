// Package cli implements the gtpower command-line interface.
//
// # Commands
//
// tiers - List the voltage tier table:
//
//	gtpower tiers [--thresholds FILE] [--format yaml|json|table]
//
// power - Classify and describe a recipe cost:
//
//	gtpower power --eut 480 --duration 100 [--machine-tier IV] [--overclock standard|perfect] [--unit eu|steam] [--seconds]
//
// recipes - Query the built-in recipe catalog:
//
//	gtpower recipes [--tier EV] [--category mixer] [--file extra.yaml] [--categories]
//
// cover - Evaluate machine controller cover modes:
//
//	gtpower cover modes
//	gtpower cover cycle --mode enable-on-signal [--reverse]
//	gtpower cover tick --mode safe-enable-on-signal --redstone 15 --shutdown --critical
//	gtpower cover press --mode enable-on-signal --button safe-mode
//	gtpower cover decode 00000003
//
// # Common Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--thresholds   Custom tier table file (env GTPOWER_THRESHOLDS)
//	--log-level    Log level: debug, info, warn, error (env LOG_LEVEL)
//
// A custom tier table file lists thresholds in tier order and optional names:
//
//	thresholds: [32, 128, 512, 2048]
//	names: [LV, MV, HV, EV]
//
// Logs are JSON on stderr; results go to stdout or --output.
package cli
