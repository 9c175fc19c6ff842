package datastore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/op/go-logging"
	"github.com/scieloorg/oai-pmh/models/catalog"
	"github.com/scieloorg/oai-pmh/models/oai"
	"github.com/scieloorg/oai-pmh/network"
)

const (
	articlePrefix = "articles/"
	journalPrefix = "journals/"
)

// S3Store reads a catalog snapshot from an S3 bucket laid out as
// articles/<code>.json and journals/<issn>.json. Listings walk the
// prefix in key order and filter on the client side. Listings skip
// objects that do not hold a usable article.
type S3Store struct {
	client network.S3Client
	bucket string
	logger *logging.Logger
}

func NewS3Store(client network.S3Client, bucket string, logger *logging.Logger) *S3Store {
	return &S3Store{client: client, bucket: bucket, logger: logger}
}

func articleKey(code string) string {
	return articlePrefix + code + ".json"
}

func journalKey(issn string) string {
	return journalPrefix + issn + ".json"
}

func (store *S3Store) Get(ctx context.Context, id string) (oai.Resource, error) {
	data, err := store.read(ctx, articleKey(id))
	if err != nil {
		return oai.Resource{}, err
	}
	return decodeArticle(articleKey(id), data)
}

func (store *S3Store) List(ctx context.Context, offset, count int, view View, from, until string) ([]oai.Resource, error) {
	q := newQuery(offset, count, view, from, until)
	resources := make([]oai.Resource, 0)
	if q.Count <= 0 {
		return resources, nil
	}
	skipped := 0
	err := store.walk(ctx, articlePrefix, func(key string) (bool, error) {
		data, err := store.read(ctx, key)
		if err != nil {
			return false, err
		}
		res, err := decodeArticle(key, data)
		if err != nil {
			store.logger.Warningf("Skipping %s/%s: %v", store.bucket, key, err)
			return true, nil
		}
		if !q.Matches(res) {
			return true, nil
		}
		if skipped < q.Offset {
			skipped++
			return true, nil
		}
		resources = append(resources, res)
		return len(resources) < q.Count, nil
	})
	return resources, err
}

func (store *S3Store) GetJournal(ctx context.Context, issn string) (oai.Journal, error) {
	journal, err := store.getJournal(ctx, journalKey(issn))
	if err != nil {
		return oai.Journal{}, err
	}
	return journal.ToJournal(), nil
}

func (store *S3Store) ListJournals(ctx context.Context, offset, count int) ([]oai.Journal, error) {
	journals := make([]oai.Journal, 0)
	if count <= 0 {
		return journals, nil
	}
	position := 0
	err := store.walk(ctx, journalPrefix, func(key string) (bool, error) {
		position++
		if position <= offset {
			return true, nil
		}
		journal, err := store.getJournal(ctx, key)
		if err != nil {
			return false, err
		}
		journals = append(journals, journal.ToJournal())
		return len(journals) < count, nil
	})
	return journals, err
}

// PutArticle writes article to the snapshot.
func (store *S3Store) PutArticle(ctx context.Context, article *catalog.Article) error {
	data, err := article.ToJson()
	if err != nil {
		return err
	}
	return store.put(ctx, articleKey(article.Code), data)
}

// PutJournal writes journal to the snapshot.
func (store *S3Store) PutJournal(ctx context.Context, journal *catalog.Journal) error {
	data, err := journal.ToJson()
	if err != nil {
		return err
	}
	return store.put(ctx, journalKey(journal.ScieloISSN), data)
}

func (store *S3Store) put(ctx context.Context, key string, data []byte) error {
	_, err := store.client.PutObject(ctx, store.bucket, key, bytes.NewReader(data),
		int64(len(data)), minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("s3 put %s: %w", key, err)
	}
	return nil
}

// walk calls fn with each .json key under prefix until fn returns
// false or an error.
func (store *S3Store) walk(ctx context.Context, prefix string, fn func(key string) (bool, error)) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	opts := minio.ListObjectsOptions{Prefix: prefix, Recursive: true}
	for obj := range store.client.ListObjects(ctx, store.bucket, opts) {
		if obj.Err != nil {
			return fmt.Errorf("s3 list %s: %w", prefix, obj.Err)
		}
		if path.Ext(obj.Key) != ".json" {
			continue
		}
		more, err := fn(obj.Key)
		if err != nil || !more {
			return err
		}
	}
	return nil
}

func (store *S3Store) read(ctx context.Context, key string) ([]byte, error) {
	obj, err := store.client.GetObject(ctx, store.bucket, key, minio.GetObjectOptions{})
	if err == nil {
		defer obj.Close()
		var data []byte
		data, err = io.ReadAll(obj)
		if err == nil {
			return data, nil
		}
	}
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return nil, fmt.Errorf("s3 %s: %w", key, ErrDoesNotExist)
	}
	return nil, fmt.Errorf("s3 get %s: %w", key, err)
}

// decodeArticle turns the object stored at key into a resource. A
// placeholder article does not exist.
func decodeArticle(key string, data []byte) (oai.Resource, error) {
	article, err := catalog.ArticleFromJson(data)
	if err != nil {
		return oai.Resource{}, fmt.Errorf("s3 %s: %w", key, err)
	}
	if article.IsSpurious() {
		return oai.Resource{}, fmt.Errorf("s3 %s: %w", key, ErrDoesNotExist)
	}
	res, err := article.ToResource()
	if err != nil {
		return oai.Resource{}, fmt.Errorf("s3 %s: %w", key, err)
	}
	return res, nil
}

func (store *S3Store) getJournal(ctx context.Context, key string) (*catalog.Journal, error) {
	data, err := store.read(ctx, key)
	if err != nil {
		return nil, err
	}
	journal, err := catalog.JournalFromJson(data)
	if err != nil {
		return nil, fmt.Errorf("s3 %s: %w", key, err)
	}
	if strings.TrimSpace(journal.ScieloISSN) == "" {
		return nil, fmt.Errorf("s3 %s: %w", key, ErrDoesNotExist)
	}
	return journal, nil
}
