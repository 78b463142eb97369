// Package service implements the guild API's business rules on top of the
// repository layer: admin authentication, event signups with identity
// resolution, idempotent weekly event creation, region-scoped team and
// user management, and scheduled notification CRUD.
//
// Services return sentinel errors (errors.go) or *model.ProblemDetails for
// validation failures; handlers map both to HTTP statuses centrally.
package service
