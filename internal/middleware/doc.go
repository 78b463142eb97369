// Package middleware provides HTTP middleware for the guild API:
// request IDs, structured request logging, panic recovery, CORS,
// gzip compression, and token-based authentication.
package middleware
