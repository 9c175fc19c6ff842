package network_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/scieloorg/oai-pmh/network"
	"github.com/scieloorg/oai-pmh/util/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3Client(t *testing.T) {
	client, err := network.NewS3Client(S3TestServer.Host(), "key", "secret", false)
	require.Nil(t, err)

	// Make sure *minio.Client satisfies our interface.
	var s3Client network.S3Client = client

	data := []byte(`{"title":"Revista de Saúde Pública","scielo_issn":"0034-8910","collection":"scl"}`)
	_, err = s3Client.PutObject(context.Background(), testutil.SnapshotBucket,
		"journals/0034-8910.json", bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	require.Nil(t, err)

	obj, err := s3Client.GetObject(context.Background(), testutil.SnapshotBucket,
		"journals/0034-8910.json", minio.GetObjectOptions{})
	require.Nil(t, err)
	defer obj.Close()
	retrieved, err := io.ReadAll(obj)
	require.Nil(t, err)
	assert.Equal(t, data, retrieved)
}
