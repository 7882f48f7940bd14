package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"microtweet/internal/config"
	"microtweet/internal/models"
)

type Storage interface {
	UploadMedia(ctx context.Context, tweetID string, upload *models.MediaUpload) (*models.Media, error)
	DeleteMedia(ctx context.Context, objectName string) error
}

type MinIOClient struct {
	client *minio.Client
	config *config.Config
}

// NewMinIOClient connects to MinIO and creates the media bucket when it is missing.
func NewMinIOClient(ctx context.Context, cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.MinIO.BucketName, err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.MinIO.BucketName, err)
		}
		slog.Info("created media bucket", "bucket", cfg.MinIO.BucketName)
	}

	return &MinIOClient{client: client, config: cfg}, nil
}

func (m *MinIOClient) UploadMedia(ctx context.Context, tweetID string, upload *models.MediaUpload) (*models.Media, error) {
	now := time.Now()
	objectName := ObjectName(tweetID, upload.Filename, upload.ContentType, now)

	_, err := m.client.PutObject(ctx, m.config.MinIO.BucketName, objectName, upload.Reader, upload.Size,
		minio.PutObjectOptions{
			ContentType: upload.ContentType,
			UserMetadata: map[string]string{
				"original-filename": upload.Filename,
				"tweet-id":          tweetID,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return nil, fmt.Errorf("failed to upload media to MinIO: %w", err)
	}

	slog.Debug("media uploaded",
		"object", objectName,
		"size", humanize.IBytes(uint64(upload.Size)), // nolint:gosec
	)

	return &models.Media{
		Object:      objectName,
		URL:         MediaURL(m.config.MinIO.BaseURL(), objectName),
		ContentType: upload.ContentType,
		ByteSize:    upload.Size,
		Filename:    upload.Filename,
	}, nil
}

func (m *MinIOClient) DeleteMedia(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.config.MinIO.BucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete media from MinIO: %w", err)
	}
	return nil
}

// ObjectName lays objects out as tweets/<tweet id>/<year>/<month>/<uuid><ext>.
func ObjectName(tweetID, fileName, contentType string, now time.Time) string {
	return fmt.Sprintf("tweets/%s/%d/%02d/%s%s",
		tweetID,
		now.Year(),
		now.Month(),
		uuid.New().String(),
		extension(fileName, contentType))
}

func extension(fileName, contentType string) string {
	if ext := strings.ToLower(filepath.Ext(fileName)); ext != "" {
		return ext
	}

	if mt := mimetype.Lookup(contentType); mt != nil {
		return mt.Extension()
	}
	return ""
}

func MediaURL(baseURL, objectName string) string {
	return strings.TrimSuffix(baseURL, "/") + "/" + objectName
}
