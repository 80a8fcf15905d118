package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"booking-api/core/config"
	"booking-api/core/database"
	"booking-api/core/logger"
	"booking-api/core/storage"
	"booking-api/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the catalog sources",
	Long:  `Checks the catalog database schema and the catalog objects in storage, then prints a JSON report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd, true, true)
	},
}

// databaseCmd represents the integrity database command
var databaseCmd = &cobra.Command{
	Use:   "database",
	Short: "Check the catalog database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, false)
	},
}

// storageCmd represents the integrity storage command
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check the catalog objects in storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(databaseCmd, storageCmd)
}

func runIntegrityChecks(cmd *cobra.Command, runDatabase, runStorage bool) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	opts := integrity.Options{
		Bucket: cfg.Storage.Bucket,
		Prefix: cfg.Catalog.Prefix,
	}

	if runStorage {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		opts.Client = client
	}

	if runDatabase {
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
		}
		opts.DB = db
	}

	svc := integrity.NewService(opts, logg)
	report := make(map[string]any)
	failed := false

	if runDatabase {
		logg.Info("Checking catalog database schema...", zap.String("driver", cfg.Database.Driver))
		dbReport, err := svc.CheckDatabase()
		switch {
		case err != nil:
			logg.Error("Catalog schema check failed", zap.Error(err))
			report["database"] = map[string]any{"status": "error", "error": err.Error()}
			failed = true
		case !dbReport.Matched:
			logg.Warn("Catalog schema mismatches found")
			report["database"] = dbReport
			failed = true
		default:
			logg.Info("Catalog schema matches expected definition.")
			report["database"] = dbReport
		}
	}

	if runStorage {
		logg.Info("Checking catalog storage...", zap.String("bucket", cfg.Storage.Bucket), zap.String("prefix", cfg.Catalog.Prefix))
		stReport, err := svc.CheckStorage(ctx)
		switch {
		case err != nil:
			logg.Error("Catalog storage check failed", zap.Error(err))
			report["storage"] = map[string]any{"status": "error", "error": err.Error()}
			failed = true
		case stReport.Status == "error":
			logg.Warn("Invalid catalog objects detected", zap.Strings("invalid", stReport.Invalid))
			report["storage"] = stReport
			failed = true
		default:
			logg.Info("Catalog storage checked.", zap.String("status", stReport.Status), zap.Int("objects", stReport.Objects))
			report["storage"] = stReport
		}
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(data))

	if failed {
		return fmt.Errorf("integrity checks reported problems")
	}
	return nil
}
