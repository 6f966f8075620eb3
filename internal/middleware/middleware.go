// Package middleware holds the echo middleware shared by every route.
//
// It covers request ids, the request-scoped logger, request logging, CORS,
// secure headers, panic recovery, rate limiting, New Relic tracing and the
// global error handler that renders every error as an errs.HTTPError.
package middleware
