// Package repository holds the in-memory home store and its availability index.
//
// # Home Store
//
// The store owns the canonical Home records. Identities come from a single atomic
// counter: Add claims one id, AddRange claims a contiguous block in one step. Ids are
// never reused, Clear included.
//
// # Availability Index
//
// The index maps each calendar date to a bucket holding the ids of the homes available
// on that date. Buckets live in a concurrent map and each one carries its own RWMutex,
// so writers only contend when they touch the same date. Records are stored before they
// are indexed, which guarantees that any id a query finds in a bucket can be resolved.
//
// # Range Queries
//
// Query intersects the buckets of every day in [start, end]:
//
//	working := bucket(start)
//	for each following day d:
//	    working = working ∩ bucket(d)
//	    stop early when bucket(d) is missing or working is empty
//
// A home is returned only when it is available on each and every day of the range.
//
// # Audit
//
// Audit verifies that the index is an exact mirror of the union of all homes' dates.
package repository
