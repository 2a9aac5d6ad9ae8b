// Package api contains client-side building blocks for talking to the
// token server.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Ping (liveness), Token (credentials-for-token exchange), and
//     CurrentUser (profile behind a bearer token).
//  2. A concrete HTTP implementation (see HTTPClient) that speaks the
//     server's wire contract (form-encoded credentials in, JSON out)
//     and maps HTTP and network failures onto sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors in the common package
// that callers can match with errors.Is: common.ErrUnavailable (no usable
// response), common.ErrMalformedResponse (undecodable success body),
// common.ErrorUnauthorized (rejected bearer token). A rejected login
// carries the server-supplied message as *common.ServerRejection,
// matchable with errors.As.
//
// All operations accept context.Context and honor cancellation/timeouts.
// Credentials and request bodies are never logged.
package api
