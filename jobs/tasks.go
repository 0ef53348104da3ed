package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskDashboardWarmup recomputes the default dashboard views into the cache.
	TaskDashboardWarmup = "dashboard:warmup"
)

// WarmupPayload describes why a warmup was requested.
type WarmupPayload struct {
	Reason string `json:"reason"`
}

// NewWarmupTask constructs a dashboard warmup task.
func NewWarmupTask(reason string) (*asynq.Task, error) {
	data, err := json.Marshal(WarmupPayload{Reason: reason})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDashboardWarmup, data), nil
}
