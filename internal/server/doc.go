// Package server implements strand's HTTP surface: routing, request
// decoding, response envelopes, and the middleware stack.
//
// # Overview
//
// The server is transport glue only. Analysis lives in internal/analyzer,
// storage in internal/storage, and filtering/translation in internal/filter;
// handlers here decode requests, call those packages, and map their errors
// to HTTP status codes.
//
// # Endpoints
//
//	POST   /strings                              - analyze and store a string
//	GET    /strings                              - list with optional filters
//	GET    /strings/{value}                      - fetch one entry by value
//	DELETE /strings/{value}                      - delete one entry by value
//	GET    /strings/filter-by-natural-language   - translate a query, then filter
//	GET    /                                     - welcome message
//	GET    /healthz                              - liveness check
//	GET    /stats                                - store operation statistics
//
// # Error mapping
//
// Handlers classify failures with the sentinels in internal/errors:
//
//	ErrInvalidRequest, ErrParse -> 400
//	ErrNotFound                 -> 404
//	ErrConflict                 -> 409
//	anything else               -> 500
//
// Every error response is a JSON {"error": message} envelope and leaves the
// store unmodified.
//
// # Middleware
//
// Each request gets a uuid request id and a structured completion log line.
// An optional token-bucket rate limiter (golang.org/x/time/rate) sheds load
// with 429 before any handler runs.
package server
