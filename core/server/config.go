package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ReadTimeoutSeconds bounds the time spent reading a request.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"30"`
	// BodyLimitMB caps the request body size. Batch inserts of 100k homes need room.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"64"`
}

const (
	defaultReadTimeoutSeconds = 30
	defaultBodyLimitMB        = 64
)

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return defaultBodyLimitMB * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}

// ReadTimeout returns the read timeout in seconds, falling back to the default.
func (c Config) ReadTimeout() int {
	if c.ReadTimeoutSeconds <= 0 {
		return defaultReadTimeoutSeconds
	}
	return c.ReadTimeoutSeconds
}
