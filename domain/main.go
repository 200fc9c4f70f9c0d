package domain

import (
	"github.com/akeren/waitlist-backend/config"
	"github.com/akeren/waitlist-backend/domain/monitoring"
	"github.com/akeren/waitlist-backend/domain/waitlist"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	appConfig.RouterService.MountController(monitoring.NewMonitoringController(appConfig.Store, appConfig.Logger, appConfig.Cache))
	appConfig.RouterService.MountController(waitlist.NewWaitlistController(appConfig.Store, appConfig.Logger))
}
