// Package cli renders hub records for the terminal.
//
// It is presentation only: records arrive from the hub package unmodified
// in structure and order, and the machine-readable formats (json, yaml)
// emit them exactly as received. Table mode applies light normalization
// (timestamps, byte sizes, status coloring) for readability.
package cli
