package storage

import (
	"context"
	"fmt"
	"lunysse-service/internal/app/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// NewMinio builds the client and makes sure the report bucket exists.
// It returns (nil, nil) when MinIO is disabled.
func NewMinio(ctx context.Context, driverConfig *config.DriverConfig, bucketName string, log *zap.Logger) (*minio.Client, error) {
	if !driverConfig.Minio.Enabled {
		log.Info("MinIO disabled, roster report export is unavailable")
		return nil, nil
	}

	endPoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	minioClient, err := minio.New(endPoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("check minio bucket %q: %w", bucketName, err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create minio bucket %q: %w", bucketName, err)
		}
		log.Info("Created minio bucket", zap.String("bucket", bucketName))
	}

	log.Info("Successfully connected to minio", zap.String("endpoint", endPoint))
	return minioClient, nil
}
