// Package catalog seeds the home store from an external, read-only catalog at startup.
//
// Two sources are supported:
//   - database: the catalog_homes and catalog_home_dates tables, read with GORM in
//     primary key order.
//   - storage: JSON objects under a prefix in the catalog bucket, each an array of homes
//     validated against the home batch contract.
//
// Imported homes go through the normal insert path and receive fresh identities. The
// catalog is never written to.
package catalog
