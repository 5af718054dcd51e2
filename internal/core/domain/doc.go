// Package domain defines the core entities for Snipsurf.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A parsed snippet file with its front-matter fields
//   - Heading: A navigable heading inside a document body
//   - Metadata: The ordered, untyped front-matter mapping
//   - ScanConfig: The immutable scan options
//   - Catalog: The result of scanning every configured root
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
