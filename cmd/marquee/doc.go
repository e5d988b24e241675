// Package main hosts the Marquee CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into export
// ingestion, catalog enrichment runs, database maintenance, the read-only
// HTTP API server, and configuration scaffolding. It centralizes
// configuration resolution, writer locking, and structured logging setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
