package catalog

import (
	"context"
	"fmt"
	"time"

	"booking-api/feature/homes/models"

	"go.uber.org/zap"
)

// Inserter stores validated homes in order.
type Inserter interface {
	AddRange(inputs []models.HomeInput) ([]models.Home, error)
}

// Seeder imports a catalog source into the home store at startup.
type Seeder struct {
	source    Source
	inserter  Inserter
	logger    *zap.Logger
	batchSize int
}

// NewSeeder creates a new seeder.
func NewSeeder(source Source, inserter Inserter, logger *zap.Logger, cfg Config) *Seeder {
	return &Seeder{
		source:    source,
		inserter:  inserter,
		logger:    logger,
		batchSize: cfg.batchSize(),
	}
}

// Run streams the source into the store and returns the number of homes imported.
// Homes imported before a failure stay in the store.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	start := time.Now()
	total := 0

	err := s.source.Stream(ctx, s.batchSize, func(batch []models.HomeInput) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		stored, err := s.inserter.AddRange(batch)
		if err != nil {
			return fmt.Errorf("failed to import batch after %d homes: %w", total, err)
		}
		total += len(stored)
		s.logger.Debug("Catalog batch imported", zap.Int("batch_size", len(stored)), zap.Int("total", total))
		return nil
	})
	if err != nil {
		return total, fmt.Errorf("catalog seeding from %s failed: %w", s.source.Name(), err)
	}

	s.logger.Info("Catalog seeded",
		zap.String("source", s.source.Name()),
		zap.Int("homes", total),
		zap.Duration("duration", time.Since(start)))
	return total, nil
}
