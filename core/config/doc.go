// Package config provides configuration management for the booking service.
//
// It loads a .env file when present, then reads environment variables through Viper.
// Every field carries a 'default' tag that is registered by reflection, so each key can be
// overridden by its upper snake case variable (server.port -> SERVER_PORT).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, read timeout, body limit)
//   - Log: Logging level and format
//   - Homes: Range query coalescing
//   - Database: Catalog database driver and connection details
//   - Storage: S3/MinIO credentials and catalog bucket
//   - Catalog: Seeding source, object prefix and batch size
//   - Broker: AMQP url, queue and batching for message ingest
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
