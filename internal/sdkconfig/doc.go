// Package sdkconfig loads the checkout document and resolves the upstream
// API base URL from it.
//
// The document is a TOML file read from disk on every call to [Load]; there
// is no cache and no shared mutable state, so concurrent loads are safe.
package sdkconfig
