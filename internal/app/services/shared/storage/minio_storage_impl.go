package storage

import (
	"bytes"
	"context"
	"fmt"
	"intake-service/internal/pkg/exceptions"
	"mime"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) UploadImage(ctx context.Context, imageData []byte, bucketName, fileName, fileExtension string) (string, error) {
	contentType := mime.TypeByExtension(fileExtension)
	if contentType == "" {
		errContentType := fmt.Errorf("unknown content type for extension %s", fileExtension)
		return "", exceptions.ErrMinioCreateObject(errContentType, bucketName)
	}

	_, err := m.MinioClient.PutObject(
		ctx,
		bucketName,
		fileName,
		bytes.NewReader(imageData),
		int64(len(imageData)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return fileName, nil
}

func (m *minioStorage) PresignedGetURL(ctx context.Context, bucketName, fileName string, expiry time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, bucketName, fileName, expiry, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}
	return presignedURL.String(), nil
}
