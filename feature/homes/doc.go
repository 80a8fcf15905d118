// Package homes implements the booking availability feature.
//
// Clients register homes carrying the calendar dates on which they can be booked, then
// ask which homes are available on every day of a date range. Storage and indexing live
// in the repository subpackage; this package validates input and exposes the HTTP API.
//
// # Components
//
//   - Service: Validates inserts and range queries and forwards them to the repository.
//     Identical concurrent range queries can be coalesced with singleflight.
//   - Handler: Exposes the HTTP endpoints.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /api/available-homes : Add a home.
//   - POST /api/available-homes/batch : Add homes in order.
//   - GET /api/available-homes?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD : Homes available on the whole range.
//   - GET /api/available-homes/:id : Get a home by id.
//
// A missing or malformed date, or a start date after the end date, is answered with 400.
package homes
