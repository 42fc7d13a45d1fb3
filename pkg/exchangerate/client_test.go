package exchangerate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryCache struct {
	values map[string]string
}

func (m *memoryCache) Get(ctx context.Context, key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", errors.New("miss")
	}
	return v, nil
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	m.values[key] = value.(string)
	return nil
}

func TestClient_FetchesAndCaches(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"USD":1,"INR":80,"EUR":0.5}}`))
	}))
	defer srv.Close()

	cache := &memoryCache{values: map[string]string{}}
	client := NewClient(srv.URL, time.Hour, cache, zap.NewNop())

	rates := client.Rates(context.Background())
	assert.Equal(t, 80.0, rates["INR"])
	assert.Contains(t, cache.values, cacheKey)

	client.Rates(context.Background())
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	inr, err := client.Convert(context.Background(), 10, "usd", "INR")
	require.NoError(t, err)
	assert.InDelta(t, 800.0, inr, 1e-9)

	eur, err := client.Convert(context.Background(), 160, "INR", "EUR")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, eur, 1e-9)
}

func TestClient_UsesRedisCopyBeforeNetwork(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	cache := &memoryCache{values: map[string]string{cacheKey: `{"USD":1,"INR":70}`}}
	client := NewClient(srv.URL, time.Hour, cache, zap.NewNop())

	assert.Equal(t, 70.0, client.Rates(context.Background())["INR"])
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))
}

func TestClient_FallsBackOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Hour, nil, zap.NewNop())

	rates := client.Rates(context.Background())
	assert.Equal(t, FallbackRates, rates)

	_, err := client.Convert(context.Background(), 1, "USD", "XYZ")
	assert.Error(t, err)

	same, err := client.Convert(context.Background(), 5, "XYZ", "XYZ")
	require.NoError(t, err)
	assert.Equal(t, 5.0, same)
}
