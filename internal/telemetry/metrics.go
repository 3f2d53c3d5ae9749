package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds all application metrics
type Metrics struct {
	RequestCounter        metric.Int64Counter
	RequestDuration       metric.Float64Histogram
	MatchRequests         metric.Int64Counter
	SearchRequests        metric.Int64Counter
	CatalogFetchDuration  metric.Float64Histogram
	CatalogCacheHits      metric.Int64Counter
	ApplicationsSubmitted metric.Int64Counter
	CircuitBreakerState   metric.Int64Counter
}

// InitMetrics initializes all application metrics
func InitMetrics() (*Metrics, error) {
	meter := otel.Meter("scheme-directory")

	requestCounter, err := meter.Int64Counter(
		"http.requests.total",
		metric.WithDescription("Total HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram(
		"http.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	matchRequests, err := meter.Int64Counter(
		"matcher.requests.total",
		metric.WithDescription("Total profile match requests"),
	)
	if err != nil {
		return nil, err
	}

	searchRequests, err := meter.Int64Counter(
		"search.requests.total",
		metric.WithDescription("Total catalog search requests"),
	)
	if err != nil {
		return nil, err
	}

	catalogFetchDuration, err := meter.Float64Histogram(
		"catalog.fetch.duration",
		metric.WithDescription("Catalog fetch duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	catalogCacheHits, err := meter.Int64Counter(
		"catalog.cache.hits",
		metric.WithDescription("Catalog cache hits and misses"),
	)
	if err != nil {
		return nil, err
	}

	applicationsSubmitted, err := meter.Int64Counter(
		"applications.submitted.total",
		metric.WithDescription("Total scheme applications submitted"),
	)
	if err != nil {
		return nil, err
	}

	circuitBreakerState, err := meter.Int64Counter(
		"circuit_breaker.state_changes",
		metric.WithDescription("Circuit breaker state changes"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		RequestCounter:        requestCounter,
		RequestDuration:       requestDuration,
		MatchRequests:         matchRequests,
		SearchRequests:        searchRequests,
		CatalogFetchDuration:  catalogFetchDuration,
		CatalogCacheHits:      catalogCacheHits,
		ApplicationsSubmitted: applicationsSubmitted,
		CircuitBreakerState:   circuitBreakerState,
	}, nil
}

// RecordRequest records HTTP request metrics
func (m *Metrics) RecordRequest(method, path, status string, duration float64) {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("http.path", path),
		attribute.String("http.status", status),
	}

	m.RequestCounter.Add(context.Background(), 1, metric.WithAttributes(attrs...))
	m.RequestDuration.Record(context.Background(), duration, metric.WithAttributes(attrs...))
}

// RecordMatchRequest records a profile match evaluation
func (m *Metrics) RecordMatchRequest(catalogSize int) {
	attrs := []attribute.KeyValue{
		attribute.Int("catalog.size", catalogSize),
	}

	m.MatchRequests.Add(context.Background(), 1, metric.WithAttributes(attrs...))
}

// RecordSearchRequest records a catalog search
func (m *Metrics) RecordSearchRequest(resultCount int) {
	attrs := []attribute.KeyValue{
		attribute.Int("search.results", resultCount),
	}

	m.SearchRequests.Add(context.Background(), 1, metric.WithAttributes(attrs...))
}

// RecordCatalogFetch records catalog fetch metrics
func (m *Metrics) RecordCatalogFetch(duration float64, source string) {
	attrs := []attribute.KeyValue{
		attribute.String("catalog.source", source),
	}

	m.CatalogFetchDuration.Record(context.Background(), duration, metric.WithAttributes(attrs...))
}

// RecordCacheAccess records a catalog cache hit or miss
func (m *Metrics) RecordCacheAccess(hit bool) {
	attrs := []attribute.KeyValue{
		attribute.Bool("cache.hit", hit),
	}

	m.CatalogCacheHits.Add(context.Background(), 1, metric.WithAttributes(attrs...))
}

// RecordApplicationSubmitted records a submitted application
func (m *Metrics) RecordApplicationSubmitted(schemeID string) {
	attrs := []attribute.KeyValue{
		attribute.String("scheme.id", schemeID),
	}

	m.ApplicationsSubmitted.Add(context.Background(), 1, metric.WithAttributes(attrs...))
}

// RecordCircuitBreakerState records circuit breaker state changes
func (m *Metrics) RecordCircuitBreakerState(service, state string) {
	attrs := []attribute.KeyValue{
		attribute.String("service", service),
		attribute.String("state", state),
	}

	m.CircuitBreakerState.Add(context.Background(), 1, metric.WithAttributes(attrs...))
}
