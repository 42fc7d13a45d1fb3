package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"pharma-order-system/pkg/metrics"
)

const cacheKey = "exchange_rates:USD"

// FallbackRates are USD-based rates used when the API and cache both fail.
var FallbackRates = map[string]float64{
	"USD": 1,
	"INR": 83.12,
	"EUR": 0.92,
	"GBP": 0.79,
	"CNY": 7.24,
	"JPY": 149.5,
	"AED": 3.67,
	"SGD": 1.34,
}

// Cache is the subset of the redis cache the client needs.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

type ratesAnswer struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

type ClientInterface interface {
	Rates(ctx context.Context) map[string]float64
	Convert(ctx context.Context, amount float64, from, to string) (float64, error)
}

type Client struct {
	url    string
	ttl    time.Duration
	http   *resty.Client
	cache  Cache
	logger *zap.Logger

	mu        sync.Mutex
	local     map[string]float64
	fetchedAt time.Time
	now       func() time.Time
}

func NewClient(url string, ttl time.Duration, cache Cache, logger *zap.Logger) *Client {
	return &Client{
		url:    url,
		ttl:    ttl,
		http:   resty.New().SetTimeout(10 * time.Second),
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

// Rates returns USD-based rates. It tries, in order: the in-process copy,
// redis, the remote API, and finally FallbackRates. It never fails.
func (c *Client) Rates(ctx context.Context) map[string]float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.local != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		return c.local
	}

	if c.cache != nil {
		if raw, err := c.cache.Get(ctx, cacheKey); err == nil && raw != "" {
			var rates map[string]float64
			if err := json.Unmarshal([]byte(raw), &rates); err == nil && len(rates) > 0 {
				c.store(rates)
				return rates
			}
		}
	}

	rates, err := c.fetch(ctx)
	if err != nil {
		c.logger.Warn("exchange rate fetch failed, using fallback rates", zap.Error(err))
		metrics.ExchangeRateFallbacksTotal.Inc()
		if c.local != nil {
			return c.local
		}
		return FallbackRates
	}

	c.store(rates)
	if c.cache != nil {
		if raw, err := json.Marshal(rates); err == nil {
			if err := c.cache.Set(ctx, cacheKey, string(raw), c.ttl); err != nil {
				c.logger.Warn("exchange rate cache write failed", zap.Error(err))
			}
		}
	}
	return rates
}

func (c *Client) store(rates map[string]float64) {
	c.local = rates
	c.fetchedAt = c.now()
}

func (c *Client) fetch(ctx context.Context) (map[string]float64, error) {
	req := c.http.R().SetContext(ctx)
	req.Method = http.MethodGet
	req.URL = c.url
	resp, err := req.Send()
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		var answer ratesAnswer
		if err := json.Unmarshal(resp.Body(), &answer); err != nil {
			return nil, err
		}
		if len(answer.Rates) == 0 {
			return nil, fmt.Errorf("exchange rate response has no rates")
		}
		return answer.Rates, nil
	default:
		return nil, fmt.Errorf("exchange rate request status: %d", resp.StatusCode())
	}
}

// Convert converts amount between two currencies through USD.
func (c *Client) Convert(ctx context.Context, amount float64, from, to string) (float64, error) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	if from == to || amount == 0 {
		return amount, nil
	}
	rates := c.Rates(ctx)
	fromRate, ok := rates[from]
	if !ok || fromRate == 0 {
		return 0, fmt.Errorf("unknown currency %q", from)
	}
	toRate, ok := rates[to]
	if !ok {
		return 0, fmt.Errorf("unknown currency %q", to)
	}
	return amount / fromRate * toRate, nil
}
