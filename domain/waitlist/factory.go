package waitlist

import (
	"github.com/akeren/waitlist-backend/config/router"
	"github.com/akeren/waitlist-backend/internal/log"
	"github.com/akeren/waitlist-backend/internal/store"
)

type WaitlistServiceFactory interface {
	CreateService() WaitlistService
	CreateController() *router.RESTController
}

type DefaultWaitlistServiceFactory struct {
	store  store.DocumentStore
	logger *log.Logger
}

func NewWaitlistServiceFactory(documentStore store.DocumentStore, logger *log.Logger) WaitlistServiceFactory {
	return &DefaultWaitlistServiceFactory{
		store:  documentStore,
		logger: logger,
	}
}

func (f *DefaultWaitlistServiceFactory) CreateService() WaitlistService {
	repository := NewWaitlistRepository(f.store)
	return NewWaitlistService(f.logger, repository)
}

func (f *DefaultWaitlistServiceFactory) CreateController() *router.RESTController {
	return NewWaitlistController(f.store, f.logger)
}
