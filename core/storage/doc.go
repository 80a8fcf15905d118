// Package storage provides read access to the catalog object store.
//
// It wraps the MinIO Go client behind a narrow Client interface, which works against
// both AWS S3 and self-hosted MinIO instances. Catalog objects are JSON documents
// listed under a prefix and streamed with GetObject.
//
// The Client interface keeps the provider mockable in tests (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the catalog bucket.
//   - GetObject: Retrieves content as a stream.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
