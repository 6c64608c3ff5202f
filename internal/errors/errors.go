// Package errors defines domain-level errors used throughout the application.
// These errors represent persistence and validation failures and are mapped to HTTP status codes at the API boundary.
//
// NOTE: Important for developers
// When adding a new error here, you MUST consider how it should be handled when returned from API endpoints.
//
// Unmapped errors will default to HTTP 500 Internal Server Error.
//
// Don't forget to:
// 1. Add your error to mapError (internal/daemon/api_server.go)
// 2. Add a test case to TestMapError (internal/daemon/api_server_test.go)
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrBadRequest indicates that the client provided invalid input or made a malformed request.
	// Recommended to map to HTTP 400 Bad Request.
	ErrBadRequest = errors.New("bad request")

	// ErrConfigPathNotFound indicates that the location of the configuration file could not be determined,
	// usually because the user's home directory is unknown.
	// Recommended to map to HTTP 500 Internal Server Error.
	ErrConfigPathNotFound = errors.New("configuration path not found")

	// ErrConfigNotFound indicates that an operation required an existing configuration file and there was none.
	// Recommended to map to HTTP 404 Not Found.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrRead indicates that the configuration file exists but could not be read.
	// Recommended to map to HTTP 500 Internal Server Error.
	ErrRead = errors.New("failed to read configuration")

	// ErrParse indicates that the configuration file is not valid JSON or does not match the document schema.
	// Recommended to map to HTTP 500 Internal Server Error.
	ErrParse = errors.New("failed to parse configuration")

	// ErrSerialize indicates that the configuration could not be encoded before writing.
	// Recommended to map to HTTP 500 Internal Server Error.
	ErrSerialize = errors.New("failed to serialize configuration")

	// ErrWrite indicates that the configuration file, a backup, or a directory could not be written.
	// Recommended to map to HTTP 500 Internal Server Error.
	ErrWrite = errors.New("failed to write configuration")

	// ErrFileNotFound indicates that a file named by the caller (e.g. a backup to restore) does not exist.
	// Recommended to map to HTTP 404 Not Found.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidProvider indicates that a provider operation referenced an unknown provider
	// or supplied a provider that failed validation.
	// Recommended to map to HTTP 400 Bad Request.
	ErrInvalidProvider = errors.New("invalid provider configuration")

	// ErrProviderNotFound indicates that a lookup referenced a provider ID that is not configured.
	// Recommended to map to HTTP 404 Not Found.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrIO indicates an unclassified I/O failure.
	// Recommended to map to HTTP 500 Internal Server Error.
	ErrIO = errors.New("IO error")
)

// NewErrFileNotFound returns an ErrFileNotFound for the given path.
func NewErrFileNotFound(path string) error {
	return fmt.Errorf("%w: %s", ErrFileNotFound, path)
}

// NewErrInvalidProvider returns an ErrInvalidProvider carrying the given reason.
func NewErrInvalidProvider(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidProvider, reason)
}
