// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration structure and the fallbacks applied to unset values.
//
// # Configuration
//
// The Config struct defines the HTTP port, the read timeout and the maximum request
// body size (batch inserts can carry tens of thousands of homes).
package server
