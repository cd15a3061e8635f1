package probe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"support-widget/internal/infra/logger"

	"github.com/stretchr/testify/assert"
)

func TestProbeOnlineWhenHealthAnswers(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := NewProbe(logger.NewDiscardLogger(), srv.Client(), srv.URL+"/health", time.Second)

	assert.True(t, p.IsAvailable(context.Background()))
	assert.True(t, p.IsAvailable(context.Background()))
	assert.Equal(t, Online, p.State())
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestProbeAnyStatusCountsAsReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewProbe(logger.NewDiscardLogger(), srv.Client(), srv.URL+"/health", time.Second)
	assert.True(t, p.IsAvailable(context.Background()))
}

func TestProbeLatchesOfflineAndNeverReprobes(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	p := NewProbe(logger.NewDiscardLogger(), srv.Client(), srv.URL+"/health", 20*time.Millisecond)

	assert.False(t, p.IsAvailable(context.Background()))
	assert.Equal(t, Offline, p.State())

	assert.False(t, p.IsAvailable(context.Background()))
	assert.False(t, p.IsAvailable(context.Background()))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "offline probe must short-circuit")
}

func TestProbeUnreachableHostTripsLatch(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL + "/health"
	srv.Close()

	p := NewProbe(logger.NewDiscardLogger(), nil, url, 100*time.Millisecond)
	assert.False(t, p.IsAvailable(context.Background()))
	assert.Equal(t, Offline, p.State())
}

func TestProbeStartingOfflineSkipsNetwork(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	p := NewProbeWithState(logger.NewDiscardLogger(), srv.Client(), srv.URL, time.Second, Offline)
	assert.False(t, p.IsAvailable(context.Background()))
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestTripIsOneWay(t *testing.T) {
	p := NewProbe(logger.NewDiscardLogger(), nil, "http://127.0.0.1:0/health", time.Second)
	p.Trip(errors.New("boom"))
	p.Trip(errors.New("again"))
	assert.Equal(t, Offline, p.State())
	assert.Equal(t, "offline", p.State().String())
}
