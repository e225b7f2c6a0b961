package cache

import (
	"complymeter/internal/model"
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const reportTTL = 24 * time.Hour

// ReportCache keeps generated narrative reports hot so viewing the report
// page does not re-run template rendering or the LLM call. Regeneration
// deletes the entry first.
type ReportCache interface {
	Set(ctx context.Context, report *model.NarrativeReport) error
	Get(ctx context.Context, assessmentID string) (*model.NarrativeReport, error)
	Delete(ctx context.Context, assessmentID string) error
}

type reportCache struct {
	client *redis.Client
}

func NewReportCache(client *redis.Client) ReportCache {
	return &reportCache{
		client: client,
	}
}

func (c *reportCache) Set(ctx context.Context, report *model.NarrativeReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "report:"+report.AssessmentID, data, reportTTL).Err()
}

func (c *reportCache) Get(ctx context.Context, assessmentID string) (*model.NarrativeReport, error) {
	data, err := c.client.Get(ctx, "report:"+assessmentID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var report model.NarrativeReport
	err = json.Unmarshal([]byte(data), &report)
	return &report, err
}

func (c *reportCache) Delete(ctx context.Context, assessmentID string) error {
	return c.client.Del(ctx, "report:"+assessmentID).Err()
}
