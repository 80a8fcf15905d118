package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"booking-api/core/contracts"
	"booking-api/core/storage"
	"booking-api/feature/homes/models"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

// BatchFunc receives one chunk of homes read from a source.
type BatchFunc func(batch []models.HomeInput) error

// Source streams catalog homes in chunks of at most batchSize.
type Source interface {
	Name() string
	Stream(ctx context.Context, batchSize int, fn BatchFunc) error
}

// NewSource builds the source selected by cfg.Source. It returns nil when seeding is disabled.
func NewSource(cfg Config, db *gorm.DB, client storage.Client, bucket string) (Source, error) {
	switch cfg.Source {
	case "":
		return nil, nil
	case SourceDatabase:
		if db == nil {
			return nil, errors.New("catalog source database requires a database connection")
		}
		return NewDBSource(db), nil
	case SourceStorage:
		if client == nil {
			return nil, errors.New("catalog source storage requires a storage client")
		}
		return NewStorageSource(client, bucket, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}

// DBSource reads homes from the catalog tables.
type DBSource struct {
	db *gorm.DB
}

// NewDBSource creates a database backed source.
func NewDBSource(db *gorm.DB) *DBSource {
	return &DBSource{db: db}
}

// Name returns the source name.
func (s *DBSource) Name() string {
	return SourceDatabase
}

// Stream reads catalog_homes in primary key order with their dates preloaded.
func (s *DBSource) Stream(ctx context.Context, batchSize int, fn BatchFunc) error {
	var rows []CatalogHome
	result := s.db.WithContext(ctx).
		Preload("Dates", func(tx *gorm.DB) *gorm.DB { return tx.Order("date") }).
		FindInBatches(&rows, batchSize, func(tx *gorm.DB, batch int) error {
			inputs := make([]models.HomeInput, 0, len(rows))
			for _, row := range rows {
				inputs = append(inputs, row.ToInput())
			}
			return fn(inputs)
		})
	if result.Error != nil {
		return fmt.Errorf("failed to read catalog homes: %w", result.Error)
	}
	return nil
}

// StorageSource reads homes from JSON array objects stored under a prefix.
type StorageSource struct {
	client storage.Client
	bucket string
	prefix string
}

// NewStorageSource creates an object storage backed source.
func NewStorageSource(client storage.Client, bucket, prefix string) *StorageSource {
	return &StorageSource{client: client, bucket: bucket, prefix: prefix}
}

// Name returns the source name.
func (s *StorageSource) Name() string {
	return SourceStorage
}

// Stream reads every .json object under the prefix in key order. Each object must be
// an array of homes matching the home batch contract.
func (s *StorageSource) Stream(ctx context.Context, batchSize int, fn BatchFunc) error {
	objects := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    s.prefix,
		Recursive: true,
	})

	for obj := range objects {
		if obj.Err != nil {
			return fmt.Errorf("failed to list catalog objects: %w", obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}

		inputs, err := s.readObject(ctx, obj.Key)
		if err != nil {
			return err
		}

		for start := 0; start < len(inputs); start += batchSize {
			end := min(start+batchSize, len(inputs))
			if err := fn(inputs[start:end]); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *StorageSource) readObject(ctx context.Context, key string) ([]models.HomeInput, error) {
	reader, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := contracts.ValidateHomeBatch(data); err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}

	var inputs []models.HomeInput
	if err := json.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return inputs, nil
}
