// Package handler implements the HTTP controllers for the guild API.
//
// Handlers decode requests, delegate to the services and write JSON
// responses. Service errors are translated to RFC 9457 problem responses
// in one place, MapServiceError, so every endpoint reports the same
// status for the same failure.
package handler
