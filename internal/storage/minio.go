package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const defaultContentType = "application/octet-stream"

// ClientMinio — используемое подмножество minio-клиента, выделено для мока.
type ClientMinio interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
}

// MinioStore — реализация AssetStore поверх S3-совместимого хранилища.
type MinioStore struct {
	endpoint string
	bucket   string
	useSSL   bool
	client   ClientMinio
}

// NewMinioStore создаёт клиент хранилища и убеждается, что бакет существует.
func NewMinioStore(ctx context.Context, endpoint, accessKeyID, secretAccessKey, bucket string, useSSL bool) (*MinioStore, error) {
	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	s := &MinioStore{
		endpoint: endpoint,
		bucket:   bucket,
		useSSL:   useSSL,
		client:   minioClient,
	}
	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MinioStore) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %q: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %q: %w", s.bucket, err)
	}
	return nil
}

// Upload кладёт объект под ключ <folder>/<uuid><ext> и возвращает {url, publicId}.
func (s *MinioStore) Upload(ctx context.Context, folder, name string, reader io.Reader, size int64, contentType string) (AssetInfo, error) {
	if contentType == "" {
		contentType = defaultContentType
	}
	objectName := path.Join(folder, uuid.NewString()+strings.ToLower(path.Ext(name)))

	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return AssetInfo{}, fmt.Errorf("put object %q: %w", objectName, err)
	}

	return AssetInfo{URL: s.objectURL(objectName), PublicID: objectName}, nil
}

// Delete удаляет объект по внешнему идентификатору (ключу).
func (s *MinioStore) Delete(ctx context.Context, publicID string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, publicID, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %q: %w", publicID, err)
	}
	return nil
}

func (s *MinioStore) objectURL(objectName string) string {
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, objectName)
}

var _ AssetStore = (*MinioStore)(nil)
