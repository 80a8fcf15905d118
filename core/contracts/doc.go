// Package contracts validates external home payloads against embedded JSON schemas.
//
// Catalog objects read from storage are arrays of homes (home-batch.json) and broker
// messages carry a single home (home.json). Dates must use the "date" format
// (YYYY-MM-DD); format assertions are enabled.
package contracts
