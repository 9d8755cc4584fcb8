package providers

import (
	"batlog/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type cacheMetricsTestMetrics struct {
	hits   int
	misses int
}

func (m *cacheMetricsTestMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *cacheMetricsTestMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *cacheMetricsTestMetrics) IncCacheHits()                                    { m.hits++ }
func (m *cacheMetricsTestMetrics) IncCacheMisses()                                  { m.misses++ }
func (m *cacheMetricsTestMetrics) ObserveDbDuration(_ string, _ time.Duration)      {}
func (m *cacheMetricsTestMetrics) IncRecordsCreated()                               {}
func (m *cacheMetricsTestMetrics) IncUndoUsed()                                     {}

type cacheMetricsTestInner struct {
	data        map[string][]byte
	generations map[string]uint64
}

func (c *cacheMetricsTestInner) Get(key string) ([]byte, bool) {
	v, ok := c.data[key]
	return v, ok
}
func (c *cacheMetricsTestInner) Set(key string, value []byte) {
	c.data[key] = value
}
func (c *cacheMetricsTestInner) Generation(owner string) uint64 {
	return c.generations[owner]
}
func (c *cacheMetricsTestInner) Invalidate(owner string) {
	c.generations[owner]++
}

func newCacheMetricsTestInner() *cacheMetricsTestInner {
	return &cacheMetricsTestInner{data: map[string][]byte{}, generations: map[string]uint64{}}
}

func TestMetricsCacheProvider_Hit(t *testing.T) {
	inner := newCacheMetricsTestInner()
	inner.data["key1"] = []byte("val1")
	metrics := &cacheMetricsTestMetrics{}
	cache := &MetricsCacheProvider{inner: inner, metrics: metrics}

	val, ok := cache.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, []byte("val1"), val)
	assert.Equal(t, 1, metrics.hits)
	assert.Equal(t, 0, metrics.misses)
}

func TestMetricsCacheProvider_Miss(t *testing.T) {
	metrics := &cacheMetricsTestMetrics{}
	cache := &MetricsCacheProvider{inner: newCacheMetricsTestInner(), metrics: metrics}

	val, ok := cache.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, val)
	assert.Equal(t, 0, metrics.hits)
	assert.Equal(t, 1, metrics.misses)
}

func TestMetricsCacheProvider_SetDelegates(t *testing.T) {
	inner := newCacheMetricsTestInner()
	cache := &MetricsCacheProvider{inner: inner, metrics: &cacheMetricsTestMetrics{}}

	cache.Set("key1", []byte("val1"))
	assert.Equal(t, []byte("val1"), inner.data["key1"])
}

func TestMetricsCacheProvider_GenerationDelegates(t *testing.T) {
	inner := newCacheMetricsTestInner()
	cache := &MetricsCacheProvider{inner: inner, metrics: &cacheMetricsTestMetrics{}}

	cache.Invalidate("u1")
	assert.Equal(t, uint64(1), cache.Generation("u1"))
}

func TestNewInstrumentedCacheProvider_DisabledSkipsWrapping(t *testing.T) {
	conf := &structures.Config{}
	c := NewInstrumentedCacheProvider(conf, &cacheTestLogger{}, &cacheMetricsTestMetrics{})
	assert.IsType(t, &noopCache{}, c)
}

func TestNewInstrumentedCacheProvider_EnabledWraps(t *testing.T) {
	conf := cacheConfig(true, 1, 5*time.Second)
	c := NewInstrumentedCacheProvider(conf, &cacheTestLogger{}, &cacheMetricsTestMetrics{})
	assert.IsType(t, &MetricsCacheProvider{}, c)
}
