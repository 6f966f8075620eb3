// Package errs defines the application's error types and utilities.
//
// Every error that reaches a client is rendered as an HTTPError so responses
// share one envelope: {"status": "fail"|"error", "message": "..."}.
package errs
