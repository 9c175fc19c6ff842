package testutil

import (
	"net/http/httptest"
	"strings"

	"github.com/johannesboyne/gofakes3"
	"github.com/johannesboyne/gofakes3/backend/s3mem"
)

const SnapshotBucket = "catalog-snapshot"
const EmptyBucket = "empty-snapshot"
const DirtyBucket = "dirty-snapshot"

type S3Server struct {
	server *httptest.Server
	URL    string
}

func NewS3Server() *S3Server {
	backend := s3mem.New()
	backend.CreateBucket(SnapshotBucket)
	backend.CreateBucket(EmptyBucket)
	backend.CreateBucket(DirtyBucket)
	faker := gofakes3.New(backend)
	server := httptest.NewServer(faker.Server())
	return &S3Server{
		server: server,
		URL:    server.URL,
	}
}

// Host returns the host:port of the server, as minio expects it.
func (s *S3Server) Host() string {
	return strings.TrimPrefix(s.URL, "http://")
}

func (s *S3Server) Close() {
	s.server.Close()
}
