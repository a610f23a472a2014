// Package file provides a TOML file-backed implementation of the
// driven.ConfigStore port.
//
// Configuration lives in ~/.docsight/config.toml by default. Nested
// TOML tables are flattened into dot-notation keys, so
//
//	[snapshot]
//	path = "sample_documents.json"
//
// is read back as "snapshot.path".
package file
