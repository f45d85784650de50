// Package errors provides structured error types for better observability
// and programmatic error handling across gtpower.
//
// Tier lookups, power computation and recipe construction report failures
// as *StructuredError values carrying one of the ErrCode* constants, so that
// callers (the CLI, the HTTP server) can classify them without string matching:
//
//	spec, err := model.Compute(-1, 100)
//	if errors.IsCode(err, errors.ErrCodeInvalidRecipeCost) {
//	    // malformed loader data
//	}
//
// None of the data errors (OUT_OF_RANGE, INVALID_RECIPE_COST,
// DUPLICATE_METADATA_KEY) are retryable.
package errors
