package common

import (
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/op/go-logging"
	"github.com/scieloorg/oai-pmh/constants"
	"github.com/scieloorg/oai-pmh/datastore"
	"github.com/scieloorg/oai-pmh/network"
	"github.com/scieloorg/oai-pmh/repository"
	"github.com/scieloorg/oai-pmh/sets"
	"github.com/scieloorg/oai-pmh/util/logger"
)

// Context holds the long-lived objects of the service. Clients for
// backends the config does not select are nil.
type Context struct {
	Config        *Config
	Logger        *logging.Logger
	CatalogClient *network.CatalogClient
	RedisClient   *network.RedisClient
	S3Client      *minio.Client
	DataStore     datastore.DataStore
	Sets          *sets.Registry
	Repository    *repository.Repository
}

// NewContext builds a context from NewConfig. Panics if the service
// cannot be wired.
func NewContext() *Context {
	context, err := NewContextFromConfig(NewConfig())
	if err != nil {
		panic(err)
	}
	return context
}

func NewContextFromConfig(config *Config) (*Context, error) {
	context := &Context{
		Config: config,
		Logger: getLogger(config),
	}
	store, err := context.getDataStore()
	if err != nil {
		return nil, err
	}
	context.DataStore, err = context.withJournalCache(store)
	if err != nil {
		return nil, err
	}
	context.Sets = sets.NewRegistry(context.DataStore)
	for _, set := range config.StaticSets {
		context.Sets.Add(set, datastore.IdentityView)
	}
	pages := &repository.ResultPageFactory{
		DataStore:         context.DataStore,
		Sets:              context.Sets,
		ListsLen:          config.ListsLen,
		ChunkSize:         config.ChunkSize,
		Granularity:       config.Granularity,
		EarliestDatestamp: config.Repository.EarliestDatestamp,
	}
	context.Repository = repository.NewRepository(
		config.Repository,
		repository.DefaultFormatTable(),
		pages,
		context.Logger)
	return context, nil
}

func getLogger(config *Config) *logging.Logger {
	logger, _ := logger.InitLogger(config.LogDir, config.LogLevel)
	return logger
}

func (context *Context) getDataStore() (datastore.DataStore, error) {
	config := context.Config
	switch config.DataSource {
	case constants.DataSourceCatalog:
		context.CatalogClient = network.NewCatalogClient(
			config.CatalogURL,
			config.Collection,
			config.CatalogTimeout,
			context.Logger)
		return datastore.NewCatalogStore(context.CatalogClient), nil
	case constants.DataSourceS3:
		client, err := network.NewS3Client(config.S3Host, config.S3Key, config.S3Secret, config.S3UseSSL)
		if err != nil {
			return nil, NewError(fmt.Sprintf("Could not initialize S3 client for %s", config.S3Host), err, true)
		}
		if config.LogLevel == logging.DEBUG {
			client.TraceOn(NewTracer(context.Logger))
		}
		context.S3Client = client
		return datastore.NewS3Store(client, config.S3Bucket, context.Logger), nil
	case constants.DataSourceMemory:
		return datastore.NewInMemory(), nil
	}
	return nil, NewError(fmt.Sprintf("Unknown data source %s", config.DataSource), nil, true)
}

func (context *Context) withJournalCache(store datastore.DataStore) (datastore.DataStore, error) {
	config := context.Config
	switch config.JournalCache {
	case constants.CacheLRU:
		cache := datastore.NewLRUJournalCache(config.CacheSize, config.CacheTTL)
		return datastore.NewCachedStore(store, cache, context.Logger), nil
	case constants.CacheRedis:
		context.RedisClient = network.NewRedisClient(
			config.RedisURL,
			config.RedisPassword,
			config.RedisDefaultDB)
		context.RedisClient.JournalTTL = config.CacheTTL
		if _, err := context.RedisClient.Ping(); err != nil {
			return nil, NewError(fmt.Sprintf("Could not reach Redis at %s", config.RedisURL), err, true)
		}
		return datastore.NewCachedStore(store, context.RedisClient, context.Logger), nil
	}
	return store, nil
}
