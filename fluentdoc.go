// Package fluentdoc provides a CLI-based retrieval tool for the Ansys Fluent
// online documentation. It establishes an authorized browser session against
// the frame-embedded help viewer, builds a table-of-contents index per guide
// and version, resolves free-text queries to the best-matching section with a
// lexical scorer, and caches TOC indexes on disk to avoid repeated network
// round-trips.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, sqlite/, goquery/, fs/).
package fluentdoc
