// Package config provides configuration loading, merging, and validation
// facilities for the server process.
//
// Configuration is assembled from multiple sources. For every field the
// first source that sets a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file (-c / CONFIG)
//  4. Built-in defaults
//
// The checkout document itself (SDK version, secret key, environments) is
// not part of this configuration: it is re-read from disk on every request
// by package sdkconfig. This package only knows where that file lives.
package config
