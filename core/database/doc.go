// Package database handles catalog database connections and schema inspection.
//
// It wraps GORM to open either a MySQL server or a SQLite file (or :memory:) based on
// the application's configuration. The catalog is an external, read-only source of
// homes imported at startup; nothing in the service writes back to it.
//
// # Connect
//
// Connect selects the dialector from Config.Driver, applies pool settings and verifies
// the connection with a ping bounded by Config.TimeoutSeconds. The connection is optional:
// callers log a warning and continue without the catalog when it fails.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table (SHOW COLUMNS on MySQL, PRAGMA table_info
// on SQLite). The integrity feature compares the result with the catalog models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Optional database connection failed", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "catalog_homes")
package database
