// Package internal contains the implementation packages of vlistdata.
//
// # Package Organization
//
// Packages are listed leaves first; each depends only on those above it.
//
//   - synth: seeded hash, field picking and user synthesis
//   - dataset: page windows, id lookup and parallel bulk fill
//   - validation: query parameter clamping, id parsing, host and origin checks
//   - errors: structured API errors and their JSON form
//   - logging: slog-backed structured logger
//   - version: build metadata
//   - config: Viper-backed configuration with validation
//   - server: HTTP routes, CORS, request ids and graceful shutdown
//
// # Determinism
//
// Nothing is stored. A user is a pure function of its id and the compiled-in
// reference tables, so pages are reproducible across requests, processes
// and machines. The only time-dependent behavior is the optional artificial
// delay applied by the server before it computes a response.
//
// # Testing Strategy
//
//   - Table-driven unit tests with testify
//   - Property tests with gopter, built with -tags property
//   - Fuzz tests for parameter parsing, configuration and the list route
package internal
