package cmd

import (
	"fmt"
	"time"

	"booking-api/core/calendar"
	"booking-api/core/logger"
	"booking-api/feature/homes/models"
	"booking-api/feature/homes/repository"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	benchHomes int
	benchDays  int
	benchStart string
	benchAudit bool
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure insert and range query performance at scale",
	Long: `Builds homes that are each available on every day of the same range, inserts them in
one batch and queries the full range. Fails when the query does not return every home.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if benchHomes <= 0 || benchDays <= 0 {
			return fmt.Errorf("--homes and --days must be positive")
		}
		start, err := calendar.Parse(benchStart)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
		end := start.AddDays(benchDays - 1)

		logg, err := logger.New(&logger.Config{Level: "info", Format: "console"})
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		slots := calendar.Range(start, end)
		homes := make([]models.Home, benchHomes)
		for i := range homes {
			homes[i] = models.Home{Name: fmt.Sprintf("Home %d", i+1), AvailableSlots: slots}
		}

		repo := repository.NewInMemoryRepository()

		insertStart := time.Now()
		repo.AddRange(homes)
		insertTime := time.Since(insertStart)

		queryStart := time.Now()
		result, err := repo.Query(start, end)
		queryTime := time.Since(queryStart)
		if err != nil {
			return fmt.Errorf("range query failed: %w", err)
		}

		logg.Info("Benchmark completed",
			zap.Int("homes", benchHomes),
			zap.Int("days", benchDays),
			zap.Duration("insert_time", insertTime),
			zap.Duration("query_time", queryTime),
			zap.Int("result", len(result)),
		)

		if len(result) != benchHomes {
			return fmt.Errorf("expected %d homes, query returned %d", benchHomes, len(result))
		}

		if benchAudit {
			report := repo.Audit()
			logg.Info("Index audit",
				zap.Int("buckets", report.Buckets),
				zap.Int("entries", report.Entries),
				zap.Bool("consistent", report.Consistent()))
			if !report.Consistent() {
				return fmt.Errorf("index audit failed: %d missing, %d orphaned", len(report.Missing), len(report.Orphaned))
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(benchCmd)

	benchCmd.Flags().IntVar(&benchHomes, "homes", 100000, "Number of homes to insert")
	benchCmd.Flags().IntVar(&benchDays, "days", 30, "Number of consecutive available days per home")
	benchCmd.Flags().StringVar(&benchStart, "start", "2025-09-01", "First available day (YYYY-MM-DD)")
	benchCmd.Flags().BoolVar(&benchAudit, "audit", false, "Audit the index after the query")
}
