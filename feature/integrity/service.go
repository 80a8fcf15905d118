package integrity

import (
	"context"
	"errors"

	"booking-api/core/storage"
	"booking-api/feature/catalog"
	"booking-api/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNoDatabase is returned by CheckDatabase when no catalog database is connected.
	ErrNoDatabase = errors.New("catalog database is not connected")
	// ErrNoStorage is returned by CheckStorage when no storage client is configured.
	ErrNoStorage = errors.New("catalog storage is not configured")
	// ErrNoIndex is returned by CheckIndex when the service runs without a live index.
	ErrNoIndex = errors.New("availability index is not available")
)

// Service handles integrity checks.
type Service struct {
	auditor checks.Auditor
	client  storage.Client
	bucket  string
	prefix  string
	db      *gorm.DB
	logger  *zap.Logger
}

// Options lists the collaborators of the service. Nil collaborators disable their check.
type Options struct {
	Auditor checks.Auditor
	Client  storage.Client
	Bucket  string
	Prefix  string
	DB      *gorm.DB
}

// NewService creates a new integrity service.
func NewService(opts Options, logger *zap.Logger) *Service {
	return &Service{
		auditor: opts.Auditor,
		client:  opts.Client,
		bucket:  opts.Bucket,
		prefix:  opts.Prefix,
		db:      opts.DB,
		logger:  logger,
	}
}

// CheckIndex audits the availability index against the home store.
func (s *Service) CheckIndex() (checks.IndexReport, error) {
	if s.auditor == nil {
		return checks.IndexReport{}, ErrNoIndex
	}
	report := checks.CheckIndex(s.auditor)
	if report.Status != "ok" {
		s.logger.Error("Availability index diverges from home store",
			zap.Int("missing", len(report.Missing)),
			zap.Int("orphaned", len(report.Orphaned)))
	}
	return report, nil
}

// CheckDatabase compares the catalog tables with the catalog models.
func (s *Service) CheckDatabase() (*checks.DatabaseReport, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	return checks.CheckDatabaseIntegrity(s.db, catalog.Tables())
}

// CheckStorage validates the catalog objects in the bucket.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	if s.client == nil {
		return nil, ErrNoStorage
	}
	return checks.CheckStorage(ctx, s.client, s.bucket, s.prefix)
}

// CheckAll runs every check and reports each one under its name. Failing checks are
// reported with status "error" rather than aborting the run.
func (s *Service) CheckAll(ctx context.Context) map[string]any {
	report := make(map[string]any)

	if s.auditor != nil {
		idx, _ := s.CheckIndex()
		report["index"] = idx
	}

	if db, err := s.CheckDatabase(); err != nil {
		report["database"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["database"] = db
	}

	if st, err := s.CheckStorage(ctx); err != nil {
		report["storage"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["storage"] = st
	}

	return report
}
