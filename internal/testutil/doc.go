// Package testutil contains helper builders used across tests to reduce
// boilerplate when constructing finalize-tracking elements and asserting
// lifecycle behaviors (how many elements were finalized, and in which order).
// These helpers are intentionally minimal and not intended for production
// usage.
package testutil
