package homes

import (
	"fmt"

	"booking-api/core/calendar"
	"booking-api/feature/homes/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Repository is the home store and availability index the service operates on.
type Repository interface {
	Add(home models.Home) models.Home
	AddRange(homes []models.Home) []models.Home
	Get(id int64) (models.Home, bool)
	Len() int
	Query(start, end calendar.Date) ([]models.Home, error)
}

// Service validates requests and forwards them to the repository.
type Service struct {
	repo   Repository
	logger *zap.Logger
	cfg    Config
	group  singleflight.Group
}

// NewService creates a new homes service. It panics when repo or logger is nil.
func NewService(repo Repository, logger *zap.Logger, cfg Config) *Service {
	if repo == nil {
		panic("homes: nil repository")
	}
	if logger == nil {
		panic("homes: nil logger")
	}
	return &Service{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

// Add validates and stores a single home.
func (s *Service) Add(input models.HomeInput) (models.Home, error) {
	if err := input.Validate(); err != nil {
		return models.Home{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	home := s.repo.Add(input.ToHome())
	s.logger.Debug("Home added", zap.Int64("id", home.ID), zap.Int("slots", len(home.AvailableSlots)))
	return home, nil
}

// AddRange validates every input and stores them in order. Nothing is stored when
// any input is invalid.
func (s *Service) AddRange(inputs []models.HomeInput) ([]models.Home, error) {
	homes := make([]models.Home, len(inputs))
	for i, in := range inputs {
		if err := in.Validate(); err != nil {
			return nil, fmt.Errorf("%w: home %d: %v", ErrInvalidArgument, i, err)
		}
		homes[i] = in.ToHome()
	}

	stored := s.repo.AddRange(homes)
	s.logger.Info("Homes added", zap.Int("count", len(stored)))
	return stored, nil
}

// Get resolves a home by identity.
func (s *Service) Get(id int64) (models.Home, error) {
	home, ok := s.repo.Get(id)
	if !ok {
		return models.Home{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return home, nil
}

// Count returns the number of stored homes.
func (s *Service) Count() int {
	return s.repo.Len()
}

// GetByDateRange returns the homes available on every day of [start, end].
// When coalescing is enabled, callers of an identical in-flight range share one result
// slice, which must be treated as read-only.
func (s *Service) GetByDateRange(start, end calendar.Date) ([]models.Home, error) {
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: start and end dates are required", ErrInvalidArgument)
	}
	if start.After(end) {
		return nil, fmt.Errorf("%w: start date %s is after end date %s", ErrInvalidArgument, start, end)
	}

	s.logger.Info("Querying available homes",
		zap.Stringer("start", start),
		zap.Stringer("end", end),
		zap.Int("days", calendar.Days(start, end)))

	if !s.cfg.CoalesceQueries {
		return s.repo.Query(start, end)
	}

	v, err, shared := s.group.Do(start.String()+"/"+end.String(), func() (any, error) {
		return s.repo.Query(start, end)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Range query coalesced", zap.Stringer("start", start), zap.Stringer("end", end))
	}
	return v.([]models.Home), nil
}
