// Package utils provides small generic helpers shared across the booking-api packages
// that don't fit into a domain-specific package.
//
// # CMap
//
// CMap is a typed wrapper around sync.Map. It is suited to maps whose keys are written
// once and read many times by concurrent goroutines, such as the per-date buckets of the
// availability index.
package utils
