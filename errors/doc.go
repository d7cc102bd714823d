// Package errors provides the structured error type shared by the flare
// packages. Every failure the kernel reports is an *AppError carrying a
// machine-readable ErrorCode; end-of-stream is never reported as an error.
package errors
