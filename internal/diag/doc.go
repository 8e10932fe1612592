// Package diag defines the diagnostic model shared by the lexer and driver.
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// Producers emit through a diag.Reporter so emission stays decoupled from
// storage; diag.BagReporter aggregates diagnostics into a Bag, which supports
// sorting, deduplication and merging. Rendering lives in render.go (human,
// colorized) and golden.go (stable single-line form for tests).
//
// Keep the data model deterministic: diagnostics are serialised for caching
// and compared verbatim in golden tests.
package diag
