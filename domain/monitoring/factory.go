package monitoring

import (
	"context"

	"github.com/akeren/waitlist-backend/config/router"
	"github.com/akeren/waitlist-backend/internal/log"
	"github.com/akeren/waitlist-backend/internal/store"
)

// MonitoringCache defines the cache interface for the monitoring controller factory.
type MonitoringCache interface {
	Ping(ctx context.Context) error
}

type MonitoringControllerFactory interface {
	CreateController() *router.RESTController
}

type DefaultMonitoringControllerFactory struct {
	store  store.DocumentStore
	logger *log.Logger
	cache  MonitoringCache
}

func NewMonitoringControllerFactory(documentStore store.DocumentStore, logger *log.Logger, cache MonitoringCache) MonitoringControllerFactory {
	return &DefaultMonitoringControllerFactory{
		store:  documentStore,
		logger: logger,
		cache:  cache,
	}
}

func (f *DefaultMonitoringControllerFactory) CreateController() *router.RESTController {
	return NewMonitoringController(f.store, f.logger, f.cache)
}
