package storage

import (
	"context"
	"time"
)

type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified *time.Time
}

// ArchiveOptions conveys archival destination metadata.
type ArchiveOptions struct {
	Bucket    string
	KeyPrefix string
}

// Service mirrors accepted records to remote object storage.
type Service interface {
	PutObject(ctx context.Context, bucket, key string, body []byte, contentType string) error
	ListObjects(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error)
}
