package catalog

const (
	// SourceDatabase imports homes from the catalog tables.
	SourceDatabase = "database"
	// SourceStorage imports homes from JSON objects in the catalog bucket.
	SourceStorage = "storage"
)

// Config holds configuration for catalog seeding. An empty Source disables it.
type Config struct {
	// Source is "", "database" or "storage".
	Source string `mapstructure:"source" default:""`
	// Prefix is the object prefix scanned when Source is "storage".
	Prefix string `mapstructure:"prefix" default:"homes/"`
	// BatchSize is the number of homes handed to the store per insert.
	BatchSize int `mapstructure:"batch_size" default:"1000"`
}

func (c Config) batchSize() int {
	if c.BatchSize <= 0 {
		return 1000
	}
	return c.BatchSize
}
