// Package services implements the public operations of the simulated admin
// backend: user and task CRUD plus the single-session auth flow. Each
// operation suspends for an artificial delay, reloads its collection from the
// storage medium, validates and mutates in memory, and rewrites the whole
// blob.
//
// Concurrency: mutating operations perform an unsynchronized
// read-modify-write cycle over the shared collection blob. Two overlapping
// operations on the same collection both read the same snapshot and the
// later save silently discards the earlier one's change (a lost update).
// This mirrors the backend being simulated and is intentional; callers that
// need stronger guarantees must serialize their own calls.
package services
