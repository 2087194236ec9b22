package aws

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/diillson/energy-revenue-dashboard-go/internal/domain/repository"
	"github.com/diillson/energy-revenue-dashboard-go/internal/shared/logger"
	"github.com/diillson/energy-revenue-dashboard-go/internal/shared/types"
)

// PutObjectAPI é o subconjunto do cliente S3 usado para publicar relatórios.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3RepositoryImpl implementa o StorageRepository publicando relatórios num bucket S3.
type S3RepositoryImpl struct {
	bucket  string
	prefix  string
	profile string
	log     *logger.Logger

	mu     sync.Mutex
	client PutObjectAPI
}

// NewS3Repository cria um StorageRepository. O cliente S3 só é criado no primeiro upload,
// usando o perfil AWS informado (ou a cadeia padrão de credenciais se vazio).
func NewS3Repository(bucket, prefix, profile string, log *logger.Logger) repository.StorageRepository {
	return &S3RepositoryImpl{bucket: bucket, prefix: prefix, profile: profile, log: log}
}

// NewS3RepositoryWithClient cria um StorageRepository com um cliente já configurado.
func NewS3RepositoryWithClient(client PutObjectAPI, bucket, prefix string, log *logger.Logger) repository.StorageRepository {
	return &S3RepositoryImpl{bucket: bucket, prefix: prefix, client: client, log: log}
}

func (r *S3RepositoryImpl) getClient(ctx context.Context) (PutObjectAPI, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.client != nil {
		return r.client, nil
	}

	var opts []func(*config.LoadOptions) error
	if r.profile != "" {
		if !profileKnown(r.profile) {
			return nil, fmt.Errorf("%w: %s", types.ErrProfileNotFound, r.profile)
		}
		opts = append(opts, config.WithSharedConfigProfile(r.profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for profile %s: %w", r.profile, err)
	}

	r.client = s3.NewFromConfig(cfg)
	return r.client, nil
}

// UploadReport envia um arquivo de relatório para s3://bucket/prefix/<nome do arquivo>.
func (r *S3RepositoryImpl) UploadReport(ctx context.Context, localPath string) (string, error) {
	client, err := r.getClient(ctx)
	if err != nil {
		return "", err
	}

	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("error opening report file: %w", err)
	}
	defer file.Close()

	key := ObjectKey(r.prefix, localPath)
	r.log.Debugw("uploading report", "bucket", r.bucket, "key", key, "file", localPath)

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType(localPath)),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading %s to bucket %s: %w", filepath.Base(localPath), r.bucket, err)
	}

	return fmt.Sprintf("s3://%s/%s", r.bucket, key), nil
}

// ObjectKey monta a chave do objeto a partir do prefixo e do nome do arquivo local.
func ObjectKey(prefix, localPath string) string {
	prefix = strings.Trim(prefix, "/")
	name := filepath.Base(localPath)
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

func contentType(localPath string) string {
	switch strings.ToLower(filepath.Ext(localPath)) {
	case ".csv":
		return "text/csv"
	case ".json":
		return "application/json"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
