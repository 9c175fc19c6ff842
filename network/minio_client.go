package network

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

/*
   S3Client defines the subset of the Minio client that the snapshot
   store uses, so tests and alternate backends can stand in for it.
   See https://min.io/docs/minio/linux/developers/go/API.html

   Only object-level calls are listed. The provider reads snapshots and
   never needs to create buckets or change bucket policies.
*/

type S3Client interface {
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*minio.Object, error)
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
}

// NewS3Client returns a Minio client for host (host:port, no scheme).
func NewS3Client(host, keyID, secretKey string, useSSL bool) (*minio.Client, error) {
	return minio.New(
		host,
		&minio.Options{
			Creds:  credentials.NewStaticV4(keyID, secretKey, ""),
			Secure: useSSL,
		})
}
