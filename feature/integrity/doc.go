// Package integrity provides consistency checks for the booking service.
//
// # Checks Provided
//
//   - Index: Audits the availability index against the home store. Every date of every
//     home must be indexed, and every index entry must refer to a stored home available
//     on that date.
//   - Database: Validates that the catalog tables match the catalog models (columns, types).
//   - Storage: Checks that the catalog bucket exists and that each JSON object under the
//     catalog prefix matches the home batch contract.
//
// Checks whose source is not configured report an error instead of failing the run.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/index : Runs the index audit.
//   - GET /integrity/database : Runs the catalog schema check.
//   - GET /integrity/storage : Runs the catalog storage check.
package integrity
