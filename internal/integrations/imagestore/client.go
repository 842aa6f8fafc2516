package imagestore

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ObjectClient часть *minio.Client, используемая хранилищем
type ObjectClient interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Upload загруженный объект
type Upload struct {
	ObjectKey string
	URL       string
}

// Client хранилище изображений портфолио
type Client struct {
	client        ObjectClient
	bucket        string
	publicBaseURL string
	maxSize       int64
	now           func() time.Time
	logger        Logger
}

// NewMinioClient подключается к MinIO
func NewMinioClient(endpoint, accessKey, secretKey string, useSSL bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
}

// NewClient создает хранилище поверх клиента MinIO
func NewClient(client ObjectClient, bucket, publicBaseURL string, maxSize int64, logger Logger) *Client {
	return &Client{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		maxSize:       maxSize,
		now:           time.Now,
		logger:        logger,
	}
}

// EnsureBucket создает бакет, если его нет
func (c *Client) EnsureBucket(ctx context.Context) error {
	exists, err := c.client.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("%w: EnsureBucket - bucket=%s: %v", ErrUpload, c.bucket, err)
	}
	if exists {
		return nil
	}
	if err := c.client.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("%w: EnsureBucket - make bucket=%s: %v", ErrUpload, c.bucket, err)
	}
	c.logger.Info("ImageStore: bucket %s created", c.bucket)
	return nil
}

// Upload загружает изображение под уникальным ключом
func (c *Client) Upload(ctx context.Context, reader io.Reader, size int64, contentType string) (*Upload, error) {
	ext, ok := allowedTypes[strings.ToLower(strings.TrimSpace(contentType))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, contentType)
	}
	if c.maxSize > 0 && size > c.maxSize {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, size, c.maxSize)
	}

	key := fmt.Sprintf("%d-%s%s", c.now().UnixMilli(), uuid.NewString(), ext)

	_, err := c.client.PutObject(ctx, c.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "max-age=3600",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: Upload - key=%s: %v", ErrUpload, key, err)
	}

	c.logger.Info("ImageStore: uploaded key=%s, size=%d", key, size)
	return &Upload{ObjectKey: key, URL: c.PublicURL(key)}, nil
}

// Remove удаляет объект
func (c *Client) Remove(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := c.client.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("%w: Remove - key=%s: %v", ErrRemove, key, err)
	}
	return nil
}

// PublicURL публичная ссылка на объект
func (c *Client) PublicURL(key string) string {
	return c.publicBaseURL + "/" + path.Join(c.bucket, key)
}
