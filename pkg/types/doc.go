// Package types defines the core data model shared across the font
// installation pipeline: discovered font files, strategy outcomes,
// per-file results and the aggregated batch report.
//
// Everything in this package is plain data. Values are created by one
// component and read-only to everything downstream; none of the types
// reach into the OS.
package types
