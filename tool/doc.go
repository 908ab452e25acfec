// Package tool implements the request dispatch core of the text-utils server.
//
// The package is intentionally split by concern:
//   - descriptor: tool metadata and parameter specs
//   - registry: the immutable, startup-built descriptor table
//   - validate: argument normalization against parameter specs
//   - dispatch: resolve/validate/invoke/respond per call
//   - error: the four-kind failure taxonomy every call resolves to
//
// The package is transport-agnostic: HTTP and stdio adapters both feed
// decoded call requests through the same Dispatcher.
package tool
