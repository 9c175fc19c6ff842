package common

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/op/go-logging"
	"github.com/scieloorg/oai-pmh/constants"
	"github.com/scieloorg/oai-pmh/models/oai"
	"github.com/scieloorg/oai-pmh/util"
	"github.com/scieloorg/oai-pmh/util/logger"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every setting name when it is read from
// the environment, e.g. OAIPMH_LISTSLEN.
const EnvPrefix = "OAIPMH"

type Config struct {
	CacheSize        int
	CacheTTL         time.Duration
	CatalogTimeout   time.Duration
	CatalogURL       string
	ChunkSize        int
	Collection       string
	ConfigName       string
	DataSource       string
	Granularity      *regexp.Regexp
	HTTPPort         int
	JournalCache     string
	ListsLen         int
	LogDir           string
	LogLevel         logging.Level
	PidFile          string
	RedisDefaultDB   int
	RedisPassword    string
	RedisURL         string
	Repository       oai.RepositoryMeta
	S3Bucket         string
	S3Host           string
	S3Key            string
	S3Secret         string
	S3UseSSL         bool
	StaticSets       []oai.Set
	granularityRegex string
}

var defaults = map[string]interface{}{
	"REPO_NAME":                        "SciELO - Scientific Electronic Library Online",
	"REPO_BASEURL":                     "http://www.scielo.br/oai/scielo-oai.php",
	"REPO_PROTOCOLVERSION":             "2.0",
	"REPO_ADMINEMAIL":                  "scielo@scielo.org",
	"REPO_EARLIESTDATESTAMP":           "1998-08-01",
	"REPO_DELETEDRECORD":               "no",
	"REPO_GRANULARITY":                 constants.DefaultGranularity,
	"REPO_GRANULARITY_REGEX":           constants.DefaultGranularityExpr,
	"COLLECTION":                       "scl",
	"LISTSLEN":                         100,
	"CHUNKEDRESUMPTIONTOKEN_CHUNKSIZE": 12,
	"DATA_SOURCE":                      constants.DataSourceCatalog,
	"CATALOG_URL":                      "http://articlemeta.scielo.org",
	"CATALOG_TIMEOUT":                  "30s",
	"S3_HOST":                          "",
	"S3_KEY":                           "",
	"S3_SECRET":                        "",
	"S3_BUCKET":                        "",
	"S3_USE_SSL":                       true,
	"JOURNAL_CACHE":                    constants.CacheLRU,
	"JOURNAL_CACHE_SIZE":               1024,
	"JOURNAL_CACHE_TTL":                "1h",
	"REDIS_URL":                        "localhost:6379",
	"REDIS_PASSWORD":                   "",
	"REDIS_DEFAULT_DB":                 0,
	"HTTP_PORT":                        8080,
	"LOG_DIR":                          "",
	"LOG_LEVEL":                        "INFO",
	"PID_FILE":                         "",
}

// NewConfig returns the config named by OAI_CONFIG_NAME in directory
// OAI_CONFIG_DIR. When OAI_CONFIG_DIR is not set, settings come from
// the environment and the built-in defaults alone. Panics on invalid
// settings.
func NewConfig() *Config {
	config, err := LoadConfig(os.Getenv("OAI_CONFIG_DIR"), os.Getenv("OAI_CONFIG_NAME"))
	if err != nil {
		panic(fmt.Errorf("Fatal error in config: %s \n", err))
	}
	return config
}

// LoadConfig reads .env.<name> from configDir. Environment variables
// with the OAIPMH_ prefix override values from the file.
func LoadConfig(configDir, name string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	if configDir != "" {
		if name == "" {
			return nil, errors.New("config dir is set but config name is empty")
		}
		v.AddConfigPath(configDir)
		v.SetConfigName(".env." + name)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s from %s: %w", name, configDir, err)
		}
	}

	earliest, err := time.Parse(constants.DateLayout, v.GetString("REPO_EARLIESTDATESTAMP"))
	if err != nil {
		return nil, fmt.Errorf("REPO_EARLIESTDATESTAMP: %w", err)
	}
	config := &Config{
		CacheSize:      v.GetInt("JOURNAL_CACHE_SIZE"),
		CacheTTL:       v.GetDuration("JOURNAL_CACHE_TTL"),
		CatalogTimeout: v.GetDuration("CATALOG_TIMEOUT"),
		CatalogURL:     v.GetString("CATALOG_URL"),
		ChunkSize:      v.GetInt("CHUNKEDRESUMPTIONTOKEN_CHUNKSIZE"),
		Collection:     v.GetString("COLLECTION"),
		ConfigName:     name,
		DataSource:     v.GetString("DATA_SOURCE"),
		HTTPPort:       v.GetInt("HTTP_PORT"),
		JournalCache:   v.GetString("JOURNAL_CACHE"),
		ListsLen:       v.GetInt("LISTSLEN"),
		LogDir:         v.GetString("LOG_DIR"),
		LogLevel:       logger.ParseLevel(v.GetString("LOG_LEVEL")),
		PidFile:        v.GetString("PID_FILE"),
		RedisDefaultDB: v.GetInt("REDIS_DEFAULT_DB"),
		RedisPassword:  v.GetString("REDIS_PASSWORD"),
		RedisURL:       v.GetString("REDIS_URL"),
		Repository: oai.RepositoryMeta{
			RepositoryName:    v.GetString("REPO_NAME"),
			BaseURL:           v.GetString("REPO_BASEURL"),
			ProtocolVersion:   v.GetString("REPO_PROTOCOLVERSION"),
			AdminEmail:        v.GetString("REPO_ADMINEMAIL"),
			EarliestDatestamp: earliest,
			DeletedRecord:     v.GetString("REPO_DELETEDRECORD"),
			Granularity:       v.GetString("REPO_GRANULARITY"),
		},
		S3Bucket: v.GetString("S3_BUCKET"),
		S3Host:   v.GetString("S3_HOST"),
		S3Key:    v.GetString("S3_KEY"),
		S3Secret: v.GetString("S3_SECRET"),
		S3UseSSL: v.GetBool("S3_USE_SSL"),
		StaticSets: []oai.Set{
			{SetSpec: constants.SetOpenAIRE, SetName: "OpenAIRE"},
		},
		granularityRegex: v.GetString("REPO_GRANULARITY_REGEX"),
	}
	if err := config.expandPaths(); err != nil {
		return nil, err
	}
	if err := config.sanityCheck(); err != nil {
		return nil, err
	}
	if err := config.makeDirs(); err != nil {
		return nil, err
	}
	return config, nil
}

// Expand ~ to home dir in path settings.
func (c *Config) expandPaths() error {
	var err error
	if c.LogDir, err = util.ExpandTilde(c.LogDir); err != nil {
		return err
	}
	c.PidFile, err = util.ExpandTilde(c.PidFile)
	return err
}

func (c *Config) sanityCheck() error {
	granularity, err := regexp.Compile(c.granularityRegex)
	if err != nil {
		return fmt.Errorf("REPO_GRANULARITY_REGEX: %w", err)
	}
	c.Granularity = granularity
	if c.ListsLen < 1 {
		return fmt.Errorf("LISTSLEN must be positive, got %d", c.ListsLen)
	}
	if c.ChunkSize < 1 {
		return fmt.Errorf("CHUNKEDRESUMPTIONTOKEN_CHUNKSIZE must be positive, got %d", c.ChunkSize)
	}
	switch c.DataSource {
	case constants.DataSourceCatalog:
		if c.CatalogURL == "" {
			return errors.New("CATALOG_URL is required for the catalog data source")
		}
	case constants.DataSourceS3:
		if c.S3Host == "" || c.S3Bucket == "" {
			return errors.New("S3_HOST and S3_BUCKET are required for the s3 data source")
		}
	case constants.DataSourceMemory:
	default:
		return fmt.Errorf("unknown DATA_SOURCE %q", c.DataSource)
	}
	switch c.JournalCache {
	case constants.CacheLRU:
		if c.CacheSize < 1 {
			return fmt.Errorf("JOURNAL_CACHE_SIZE must be positive, got %d", c.CacheSize)
		}
	case constants.CacheRedis, constants.CacheNone:
	default:
		return fmt.Errorf("unknown JOURNAL_CACHE %q", c.JournalCache)
	}
	return nil
}

func (c *Config) makeDirs() error {
	if c.LogDir == "" {
		return nil
	}
	return os.MkdirAll(c.LogDir, 0755)
}
