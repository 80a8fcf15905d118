package homes

// Config holds configuration for the homes feature.
type Config struct {
	// CoalesceQueries shares one index walk among identical concurrent range queries.
	CoalesceQueries bool `mapstructure:"coalesce_queries" default:"true"`
}
