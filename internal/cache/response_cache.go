package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// responseTTL bounds how long an abandoned in-progress assessment keeps its
// working set around.
const responseTTL = 7 * 24 * time.Hour

// ResponseCache holds the in-progress response working set for an assessment
// as a Redis hash of "sN_qM" keys to selected option strings. Saving a page
// merges into the hash; completion snapshots and deletes it.
type ResponseCache interface {
	Save(ctx context.Context, assessmentID string, responses map[string]string) error
	Get(ctx context.Context, assessmentID string) (map[string]string, error)
	Delete(ctx context.Context, assessmentID string) error
}

type responseCache struct {
	client *redis.Client
}

func NewResponseCache(client *redis.Client) ResponseCache {
	return &responseCache{
		client: client,
	}
}

func (c *responseCache) Save(ctx context.Context, assessmentID string, responses map[string]string) error {
	key := "responses:" + assessmentID
	if len(responses) > 0 {
		fields := make(map[string]interface{}, len(responses))
		for k, v := range responses {
			fields[k] = v
		}
		if err := c.client.HSet(ctx, key, fields).Err(); err != nil {
			return err
		}
	}
	// Saving a page, even an empty one, counts as activity: the abandonment
	// window restarts on every save. Expire on a missing key is a no-op.
	return c.client.Expire(ctx, key, responseTTL).Err()
}

func (c *responseCache) Get(ctx context.Context, assessmentID string) (map[string]string, error) {
	return c.client.HGetAll(ctx, "responses:"+assessmentID).Result()
}

func (c *responseCache) Delete(ctx context.Context, assessmentID string) error {
	return c.client.Del(ctx, "responses:"+assessmentID).Err()
}
