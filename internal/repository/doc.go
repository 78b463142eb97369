// Package repository implements SurrealQL data access for the guild API.
//
// One repository per entity: users, events, teams, signups and scheduled
// notifications. Record IDs are generated client-side (table:uuid) so
// multi-statement creates can reference them inside a single atomic batch.
// Relationship rows (team_member, event_signup) store record links and are
// read back with FETCH to attach the linked user.
package repository
