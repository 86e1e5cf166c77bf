package storage

import (
	"context"
	"time"
)

type Storage interface {
	UploadImage(ctx context.Context, imageData []byte, bucketName, fileName, fileExtension string) (string, error)
	PresignedGetURL(ctx context.Context, bucketName, fileName string, expiry time.Duration) (string, error)
}
