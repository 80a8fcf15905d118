package checks

import (
	"context"
	"fmt"
	"io"
	"strings"

	"booking-api/core/contracts"
	"booking-api/core/storage"

	"github.com/minio/minio-go/v7"
)

// StorageReport is the result of a catalog object check.
type StorageReport struct {
	Bucket  string   `json:"bucket"`
	Prefix  string   `json:"prefix"`
	Objects int      `json:"objects"`
	Invalid []string `json:"invalid"`
	Status  string   `json:"status"` // "ok", "empty", "error"
}

// CheckStorage verifies that the bucket exists, that the prefix holds catalog objects,
// and that every .json object under it matches the home batch contract.
func CheckStorage(ctx context.Context, client storage.Client, bucket, prefix string) (*StorageReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	report := &StorageReport{
		Bucket:  bucket,
		Prefix:  prefix,
		Invalid: []string{},
		Status:  "ok",
	}

	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", prefix, obj.Err)
		}
		if !strings.HasSuffix(obj.Key, ".json") {
			continue
		}
		report.Objects++

		if err := validateObject(ctx, client, bucket, obj.Key); err != nil {
			report.Invalid = append(report.Invalid, fmt.Sprintf("%s: %v", obj.Key, err))
		}
	}

	switch {
	case len(report.Invalid) > 0:
		report.Status = "error"
	case report.Objects == 0:
		report.Status = "empty"
	}
	return report, nil
}

func validateObject(ctx context.Context, client storage.Client, bucket, key string) error {
	reader, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return err
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	return contracts.ValidateHomeBatch(data)
}
