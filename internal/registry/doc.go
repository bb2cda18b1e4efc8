// Package registry provides the central directory for page sections.
//
// The Registry stores the mapping between section identifiers and their
// loaded entries (descriptor plus renderable component), together with the
// loader table for sections that are resolved on demand. It answers
// enablement queries through the feature-flag service, produces the
// ordered view the composer renders from, validates declared dependencies,
// and coalesces concurrent load requests for the same identifier into a
// single underlying operation.
package registry
