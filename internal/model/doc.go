// Package model defines the domain entities, enumerations, request payloads
// and error types for the guild API.
//
// Entities mirror the persisted records: users with class/role preferences,
// weekly regional events, teams, event signups and scheduled notifications.
// Request types carry their own Validate methods; validation failures are
// reported as FieldError lists wrapped in RFC 9457 ProblemDetails.
package model
