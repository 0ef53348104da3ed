package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	jobmetrics "github.com/sva-insights/founder-dashboard/internal/jobs"
)

var defaultJobMetrics = jobmetrics.NewMetrics(nil)

const warmupTimeout = 30 * time.Second

// Warmer recomputes the default dashboard views.
type Warmer interface {
	Warm(ctx context.Context) (int, error)
}

// Syncer invalidates cached views when the dataset fingerprint changed.
type Syncer interface {
	Sync(ctx context.Context, fingerprint string) (bool, error)
}

// WarmupJob keeps cached dashboard views fresh.
type WarmupJob struct {
	Warmer      Warmer
	Syncer      Syncer
	Fingerprint string
	Logger      *slog.Logger
	Metrics     *jobmetrics.Metrics
}

// NewWarmupJob wires dependencies for the warmup handler.
func NewWarmupJob(warmer Warmer, syncer Syncer, fingerprint string, logger *slog.Logger, metrics *jobmetrics.Metrics) *WarmupJob {
	return &WarmupJob{
		Warmer:      warmer,
		Syncer:      syncer,
		Fingerprint: fingerprint,
		Logger:      logger,
		Metrics:     metrics,
	}
}

// Handle processes dashboard warmup tasks.
func (j *WarmupJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Warmer == nil {
		return errors.New("dashboard warmup: handler not configured")
	}
	var payload WarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("dashboard warmup: decode payload: %w", asynq.SkipRetry)
	}
	if payload.Reason == "" {
		payload.Reason = "scheduled"
	}
	return j.Run(ctx, payload.Reason)
}

// Run syncs the cache version with the dataset and recomputes every view.
func (j *WarmupJob) Run(ctx context.Context, reason string) (resultErr error) {
	tracker := j.metrics().Track(TaskDashboardWarmup)
	defer func() {
		resultErr = tracker.End(resultErr)
	}()

	logger := j.logger().With(slog.String("reason", reason))
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, warmupTimeout)
	defer cancel()

	if j.Syncer != nil && j.Fingerprint != "" {
		bumped, err := j.Syncer.Sync(ctx, j.Fingerprint)
		if err != nil {
			logger.Error("sync cache fingerprint", slog.Any("error", err))
			return err
		}
		if bumped {
			logger.Info("dataset changed, cache version bumped")
		}
	}

	warmed, err := j.Warmer.Warm(ctx)
	j.metrics().AddWarmed(TaskDashboardWarmup, warmed)
	if err != nil {
		logger.Error("warm views", slog.Int("warmed", warmed), slog.Any("error", err))
		return err
	}
	logger.Info("completed dashboard warmup", slog.Int("views", warmed), slog.Duration("duration", time.Since(start)))
	return nil
}

func (j *WarmupJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger.With(slog.String("job", TaskDashboardWarmup))
	}
	return slog.Default().With(slog.String("job", TaskDashboardWarmup))
}

func (j *WarmupJob) metrics() *jobmetrics.Metrics {
	if j.Metrics != nil {
		return j.Metrics
	}
	return defaultJobMetrics
}
