// Package pkg provides the core libraries for Pacgrid calendar animation.
//
// # Overview
//
// Pacgrid turns a GitHub contribution calendar into an animated SVG in
// which a chomper eats its way along the contribution dots. The pkg
// directory is organized into five main areas:
//
//  1. [contrib] - Contribution records, levels, and statistics
//  2. [grid] - The 7-row week-column calendar grid
//  3. [path] - Serpentine traversal planning and animation timing
//  4. [render] - SVG and JSON emitters (board, banner, theme)
//  5. [pipeline] - Orchestration (fetch → build → plan → render)
//
// # Architecture
//
// The typical data flow through Pacgrid:
//
//	GitHub GraphQL API (or seeded mock)
//	         ↓
//	    [contrib] package (dated, leveled records)
//	         ↓
//	    [grid] package (7 rows by up to 53 week columns)
//	         ↓
//	    [path] package (traversal order + schedule)
//	         ↓
//	    [render] package (animated SVG / layout JSON)
//
// Supporting packages: [integrations] wraps the GitHub API with caching
// and retries, [io] reads and writes contribution datasets as JSON,
// [httputil] provides the file cache and backoff helpers, [errors]
// carries typed error codes, and [buildinfo] exposes version metadata.
package pkg
