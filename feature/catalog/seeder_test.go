package catalog_test

import (
	"context"
	"errors"
	"testing"

	"booking-api/core/calendar"
	"booking-api/feature/catalog"
	"booking-api/feature/homes"
	"booking-api/feature/homes/models"
	"booking-api/feature/homes/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sliceSource struct {
	homes []models.HomeInput
}

func (s *sliceSource) Name() string { return "slice" }

func (s *sliceSource) Stream(ctx context.Context, batchSize int, fn catalog.BatchFunc) error {
	for start := 0; start < len(s.homes); start += batchSize {
		end := min(start+batchSize, len(s.homes))
		if err := fn(s.homes[start:end]); err != nil {
			return err
		}
	}
	return nil
}

type failingInserter struct{}

func (failingInserter) AddRange([]models.HomeInput) ([]models.Home, error) {
	return nil, errors.New("store unavailable")
}

func TestSeeder_Run(t *testing.T) {
	repo := repository.NewInMemoryRepository()
	svc := homes.NewService(repo, zap.NewNop(), homes.Config{})

	slots := calendar.Range(calendar.MustParse("2025-09-01"), calendar.MustParse("2025-09-07"))
	src := &sliceSource{}
	for i := 0; i < 25; i++ {
		src.homes = append(src.homes, models.HomeInput{Name: "Seeded", AvailableSlots: slots})
	}

	n, err := catalog.NewSeeder(src, svc, zap.NewNop(), catalog.Config{BatchSize: 10}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 25, n)
	assert.Equal(t, 25, repo.Len())

	result, err := svc.GetByDateRange(slots[0], slots[len(slots)-1])
	require.NoError(t, err)
	assert.Len(t, result, 25)
}

func TestSeeder_RunFromDatabase(t *testing.T) {
	db := setupCatalogDB(t, 4)
	repo := repository.NewInMemoryRepository()
	svc := homes.NewService(repo, zap.NewNop(), homes.Config{})

	n, err := catalog.NewSeeder(catalog.NewDBSource(db), svc, zap.NewNop(), catalog.Config{}).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	result, err := svc.GetByDateRange(calendar.MustParse("2025-09-02"), calendar.MustParse("2025-09-03"))
	require.NoError(t, err)
	assert.Len(t, result, 4)
}

func TestSeeder_InsertFailure(t *testing.T) {
	src := &sliceSource{homes: []models.HomeInput{{Name: "A"}}}

	n, err := catalog.NewSeeder(src, failingInserter{}, zap.NewNop(), catalog.Config{}).Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "slice")
	assert.Equal(t, 0, n)
}

func TestSeeder_InvalidHomeRejected(t *testing.T) {
	repo := repository.NewInMemoryRepository()
	svc := homes.NewService(repo, zap.NewNop(), homes.Config{})
	src := &sliceSource{homes: []models.HomeInput{{Name: "A"}, {Name: ""}}}

	_, err := catalog.NewSeeder(src, svc, zap.NewNop(), catalog.Config{}).Run(context.Background())
	assert.ErrorIs(t, err, homes.ErrInvalidArgument)
	assert.Equal(t, 0, repo.Len())
}

func TestSeeder_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := &sliceSource{homes: []models.HomeInput{{Name: "A"}}}

	_, err := catalog.NewSeeder(src, failingInserter{}, zap.NewNop(), catalog.Config{}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
