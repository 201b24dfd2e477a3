// Package middleware provides HTTP middleware for the notification API:
// request ID propagation, panic recovery, and request logging.
//
// All middleware follows the standard func(http.Handler) http.Handler shape
// and composes with chi's Use chain.
package middleware
