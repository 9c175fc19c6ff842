package network

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v7"
	"github.com/scieloorg/oai-pmh/models/oai"
)

// RedisClient caches journals for data sources whose journal lookups
// are expensive. Entries expire after JournalTTL. Zero means never.
type RedisClient struct {
	JournalTTL time.Duration
	client     *redis.Client
}

func NewRedisClient(address, password string, db int) *RedisClient {
	return &RedisClient{
		client: redis.NewClient(&redis.Options{
			Addr:     address,
			Password: password,
			DB:       db,
		}),
	}
}

func (c *RedisClient) Ping() (string, error) {
	return c.client.Ping().Result()
}

func journalKey(issn string) string {
	return fmt.Sprintf("journal:%s", issn)
}

// JournalGet returns the cached journal. The bool is false on a cache
// miss, which is not an error.
func (c *RedisClient) JournalGet(issn string) (oai.Journal, bool, error) {
	journal := oai.Journal{}
	data, err := c.client.Get(journalKey(issn)).Result()
	if err == redis.Nil {
		return journal, false, nil
	}
	if err != nil {
		return journal, false, fmt.Errorf("JournalGet (%s): %s", issn, err.Error())
	}
	err = json.Unmarshal([]byte(data), &journal)
	if err != nil {
		return journal, false, fmt.Errorf("JournalGet (%s): %s", issn, err.Error())
	}
	return journal, true, nil
}

func (c *RedisClient) JournalSave(journal oai.Journal) error {
	jsonData, err := json.Marshal(journal)
	if err != nil {
		return err
	}
	return c.client.Set(journalKey(journal.LeadISSN), jsonData, c.JournalTTL).Err()
}

func (c *RedisClient) JournalDelete(issn string) error {
	return c.client.Del(journalKey(issn)).Err()
}
