package jobs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jobmetrics "github.com/sva-insights/founder-dashboard/internal/jobs"
)

type stubWarmer struct {
	calls int
	views int
	err   error
}

func (s *stubWarmer) Warm(ctx context.Context) (int, error) {
	s.calls++
	return s.views, s.err
}

type stubSyncer struct {
	fingerprints []string
	bumped       bool
	err          error
}

func (s *stubSyncer) Sync(ctx context.Context, fingerprint string) (bool, error) {
	s.fingerprints = append(s.fingerprints, fingerprint)
	return s.bumped, s.err
}

func newTestJob(warmer Warmer, syncer Syncer) *WarmupJob {
	return NewWarmupJob(warmer, syncer, "abc123", nil, jobmetrics.NewMetrics(prometheus.NewRegistry()))
}

func TestWarmupJobSyncsThenWarms(t *testing.T) {
	warmer := &stubWarmer{views: 7}
	syncer := &stubSyncer{bumped: true}
	job := newTestJob(warmer, syncer)

	task, err := NewWarmupTask("startup")
	require.NoError(t, err)
	require.NoError(t, job.Handle(context.Background(), task))

	assert.Equal(t, []string{"abc123"}, syncer.fingerprints)
	assert.Equal(t, 1, warmer.calls)
}

func TestWarmupJobStopsOnSyncFailure(t *testing.T) {
	warmer := &stubWarmer{}
	syncer := &stubSyncer{err: errors.New("redis down")}
	job := newTestJob(warmer, syncer)

	err := job.Run(context.Background(), "test")
	require.EqualError(t, err, "redis down")
	assert.Zero(t, warmer.calls)
}

func TestWarmupJobPropagatesWarmError(t *testing.T) {
	warmer := &stubWarmer{views: 3, err: errors.New("boom")}
	job := newTestJob(warmer, nil)

	err := job.Run(context.Background(), "test")
	assert.EqualError(t, err, "boom")
}

func TestWarmupJobRejectsBadPayload(t *testing.T) {
	job := newTestJob(&stubWarmer{}, nil)
	err := job.Handle(context.Background(), asynq.NewTask(TaskDashboardWarmup, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestWarmupJobNotConfigured(t *testing.T) {
	var job *WarmupJob
	task, err := NewWarmupTask("")
	require.NoError(t, err)
	assert.Error(t, job.Handle(context.Background(), task))
}

func TestHealthWithoutInspector(t *testing.T) {
	h := NewHandler(nil, nil)
	rr := httptest.NewRecorder()
	h.health(rr, httptest.NewRequest(http.MethodGet, "/jobs/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"queue":"default","pending":0,"active":0,"failed":0,"enabled":false}`, rr.Body.String())
}

func TestRedisOptCopiesConnectionSettings(t *testing.T) {
	opt := RedisOpt(&redis.Options{Addr: "cache:6380", Username: "dash", Password: "pw", DB: 3})
	assert.Equal(t, asynq.RedisClientOpt{Addr: "cache:6380", Username: "dash", Password: "pw", DB: 3}, opt)
}
