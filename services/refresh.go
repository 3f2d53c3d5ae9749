package services

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/Prajwalng2/Major-Project-temp/internal/logger"
)

// RefreshScheduler keeps the catalog cache warm so the first request
// after a TTL expiry does not pay the store round trip.
type RefreshScheduler struct {
	scheduler *gocron.Scheduler
	catalog   *CatalogService
	interval  time.Duration
}

func NewRefreshScheduler(catalog *CatalogService, interval time.Duration) *RefreshScheduler {
	s := gocron.NewScheduler(time.UTC)
	s.TagsUnique()

	return &RefreshScheduler{
		scheduler: s,
		catalog:   catalog,
		interval:  interval,
	}
}

// Start registers the refresh job and runs the scheduler in the
// background. The first refresh fires immediately to warm the cache at
// boot.
func (rs *RefreshScheduler) Start() error {
	_, err := rs.scheduler.Every(rs.interval).Tag("catalog-refresh").StartImmediately().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := rs.catalog.Refresh(ctx); err != nil {
			logger.Warn("Scheduled catalog refresh failed", "error", err)
			return
		}
		logger.Debug("Catalog cache refreshed")
	})
	if err != nil {
		return err
	}

	rs.scheduler.StartAsync()
	logger.Info("Catalog refresh scheduler started", "interval", rs.interval.String())
	return nil
}

// Stop stops the scheduler
func (rs *RefreshScheduler) Stop() {
	rs.scheduler.Stop()
}
