package aws

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/energy-revenue-dashboard-go/internal/shared/logger"
	"github.com/diillson/energy-revenue-dashboard-go/internal/shared/types"
)

type fakeS3 struct {
	bucket, key, contentType string
	body                     []byte
	err                      error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.bucket = *params.Bucket
	f.key = *params.Key
	f.contentType = *params.ContentType
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.body = body
	return &s3.PutObjectOutput{}, nil
}

func TestUploadReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "march_20260301_120000.csv")
	require.NoError(t, os.WriteFile(path, []byte("mpan,consumption_kwh\n"), 0o644))

	client := &fakeS3{}
	repo := NewS3RepositoryWithClient(client, "reports", "/energy/2026/", logger.NewNop())

	location, err := repo.UploadReport(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "s3://reports/energy/2026/march_20260301_120000.csv", location)
	assert.Equal(t, "reports", client.bucket)
	assert.Equal(t, "energy/2026/march_20260301_120000.csv", client.key)
	assert.Equal(t, "text/csv", client.contentType)
	assert.Equal(t, "mpan,consumption_kwh\n", string(client.body))
}

func TestUploadReportErrors(t *testing.T) {
	repo := NewS3RepositoryWithClient(&fakeS3{}, "reports", "", logger.NewNop())
	_, err := repo.UploadReport(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorContains(t, err, "error opening report file")

	path := filepath.Join(t.TempDir(), "march.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-"), 0o644))
	repo = NewS3RepositoryWithClient(&fakeS3{err: errors.New("access denied")}, "reports", "", logger.NewNop())
	_, err = repo.UploadReport(context.Background(), path)
	assert.ErrorContains(t, err, "error uploading march.pdf to bucket reports: access denied")
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "a.json", ObjectKey("", "/tmp/a.json"))
	assert.Equal(t, "p/q/a.json", ObjectKey("p/q", "/tmp/a.json"))
	assert.Equal(t, "application/pdf", contentType("x.PDF"))
	assert.Equal(t, "application/octet-stream", contentType("x.bin"))
}

func TestListProfiles(t *testing.T) {
	home := t.TempDir()
	assert.Equal(t, []string{"default"}, ListProfiles(home))

	require.NoError(t, os.MkdirAll(filepath.Join(home, ".aws"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".aws", "credentials"),
		[]byte("[default]\naws_access_key_id = x\n[reports]\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".aws", "config"),
		[]byte("[default]\nregion = eu-west-2\n[profile energy]\nregion = eu-west-2\n"), 0o600))

	assert.Equal(t, []string{"default", "energy", "reports"}, ListProfiles(home))
}

func TestUploadReportUnknownProfile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	repo := NewS3Repository("reports", "", "missing", logger.NewNop())
	_, err := repo.UploadReport(context.Background(), "/tmp/a.csv")
	assert.ErrorIs(t, err, types.ErrProfileNotFound)
}
