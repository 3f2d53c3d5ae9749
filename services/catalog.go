package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Prajwalng2/Major-Project-temp/data"
	"github.com/Prajwalng2/Major-Project-temp/internal/logger"
	"github.com/Prajwalng2/Major-Project-temp/internal/telemetry"
	"github.com/Prajwalng2/Major-Project-temp/models"
)

const catalogCacheKey = "catalog:all"

// Catalog is the read surface the routes depend on. The concrete service
// layers Redis and MongoDB behind it; tests substitute a stub.
type Catalog interface {
	All(ctx context.Context) ([]models.Scheme, error)
	ByID(ctx context.Context, id string) (*models.Scheme, error)
	ByCategory(ctx context.Context, category string) ([]models.Scheme, error)
	Featured(ctx context.Context) ([]models.Scheme, error)
}

// CatalogService serves the scheme catalog: Redis cache first, then
// MongoDB behind a circuit breaker, then the built-in fallback so browse
// and match never return empty because a dependency is down.
type CatalogService struct {
	collection *mongo.Collection
	rdb        *redis.Client
	cacheTTL   time.Duration
	breaker    *gobreaker.CircuitBreaker
	metrics    *telemetry.Metrics
}

func NewCatalogService(collection *mongo.Collection, rdb *redis.Client, cacheTTL time.Duration, metrics *telemetry.Metrics) *CatalogService {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "SchemeCatalog",
		MaxRequests: 5,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state change", "breaker", name, "from", from.String(), "to", to.String())
			if metrics != nil {
				metrics.RecordCircuitBreakerState(name, to.String())
			}
		},
	})

	return &CatalogService{
		collection: collection,
		rdb:        rdb,
		cacheTTL:   cacheTTL,
		breaker:    breaker,
		metrics:    metrics,
	}
}

// All returns the full catalog. Cache errors and store errors degrade to
// the next layer rather than failing the request; only when every layer
// is exhausted does the built-in fallback serve.
func (cs *CatalogService) All(ctx context.Context) ([]models.Scheme, error) {
	if schemes, ok := cs.fromCache(ctx); ok {
		if cs.metrics != nil {
			cs.metrics.RecordCacheAccess(true)
		}
		return schemes, nil
	}
	if cs.metrics != nil {
		cs.metrics.RecordCacheAccess(false)
	}

	start := time.Now()
	result, err := cs.breaker.Execute(func() (interface{}, error) {
		return cs.fetchFromStore(ctx)
	})
	if err != nil {
		logger.Warn("Catalog fetch failed, serving built-in fallback", "error", err)
		if cs.metrics != nil {
			cs.metrics.RecordCatalogFetch(time.Since(start).Seconds(), "fallback")
		}
		return data.Schemes(), nil
	}

	schemes := result.([]models.Scheme)
	if cs.metrics != nil {
		cs.metrics.RecordCatalogFetch(time.Since(start).Seconds(), "mongo")
	}

	cs.storeInCache(ctx, schemes)
	return schemes, nil
}

// ByID finds one scheme by its identifier. Returns nil when absent.
func (cs *CatalogService) ByID(ctx context.Context, id string) (*models.Scheme, error) {
	schemes, err := cs.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range schemes {
		if schemes[i].ID == id {
			return &schemes[i], nil
		}
	}
	return nil, nil
}

// ByCategory filters the catalog by category, case-insensitively.
func (cs *CatalogService) ByCategory(ctx context.Context, category string) ([]models.Scheme, error) {
	schemes, err := cs.All(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Scheme, 0, len(schemes))
	for _, s := range schemes {
		if strings.EqualFold(s.Category, category) {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

// Featured returns the popular schemes, used for the landing page strip.
func (cs *CatalogService) Featured(ctx context.Context) ([]models.Scheme, error) {
	schemes, err := cs.All(ctx)
	if err != nil {
		return nil, err
	}
	featured := make([]models.Scheme, 0, len(schemes))
	for _, s := range schemes {
		if s.IsPopular {
			featured = append(featured, s)
		}
	}
	return featured, nil
}

// Refresh bypasses the cache, fetches from the store and rewrites the
// cache entry. Called by the scheduled warmer.
func (cs *CatalogService) Refresh(ctx context.Context) error {
	result, err := cs.breaker.Execute(func() (interface{}, error) {
		return cs.fetchFromStore(ctx)
	})
	if err != nil {
		return err
	}
	cs.storeInCache(ctx, result.([]models.Scheme))
	return nil
}

func (cs *CatalogService) fetchFromStore(ctx context.Context) ([]models.Scheme, error) {
	opts := options.Find().SetSort(bson.D{{Key: "is_popular", Value: -1}, {Key: "_id", Value: 1}})
	cursor, err := cs.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var schemes []models.Scheme
	if err := cursor.All(ctx, &schemes); err != nil {
		return nil, err
	}
	return schemes, nil
}

func (cs *CatalogService) fromCache(ctx context.Context) ([]models.Scheme, bool) {
	if cs.rdb == nil {
		return nil, false
	}
	raw, err := cs.rdb.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Debug("Catalog cache read failed", "error", err)
		}
		return nil, false
	}
	var schemes []models.Scheme
	if err := json.Unmarshal(raw, &schemes); err != nil {
		logger.Warn("Catalog cache entry corrupt, dropping", "error", err)
		cs.rdb.Del(ctx, catalogCacheKey)
		return nil, false
	}
	return schemes, true
}

func (cs *CatalogService) storeInCache(ctx context.Context, schemes []models.Scheme) {
	if cs.rdb == nil {
		return
	}
	raw, err := json.Marshal(schemes)
	if err != nil {
		return
	}
	if err := cs.rdb.Set(ctx, catalogCacheKey, raw, cs.cacheTTL).Err(); err != nil {
		logger.Debug("Catalog cache write failed", "error", err)
	}
}
