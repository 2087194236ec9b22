package repository

import "context"

// StorageRepository defines the interface for publishing generated reports.
type StorageRepository interface {
	// UploadReport copies a local report file to remote storage and returns its location.
	UploadReport(ctx context.Context, localPath string) (string, error)
}
