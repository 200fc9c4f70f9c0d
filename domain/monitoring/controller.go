package monitoring

import (
	"context"
	"os"
	"time"

	"github.com/akeren/waitlist-backend/config/router"
	"github.com/akeren/waitlist-backend/internal/log"
	"github.com/akeren/waitlist-backend/internal/store"
	"github.com/akeren/waitlist-backend/pkg/constants"
	"github.com/akeren/waitlist-backend/pkg/ratelimit"
)

type Cache interface {
	Ping(ctx context.Context) error
}

type GreetingResponse struct {
	Message string `json:"message"`
}

// DiagnosticsReport carries human-readable indicator strings per field. It is
// built best-effort: introspection failures degrade the affected field's text
// instead of failing the request.
type DiagnosticsReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

type HealthStatus struct {
	Database int `json:"database"` // 1 = healthy, 0 = unhealthy/not configured
	Cache    int `json:"cache"`    // 1 = healthy, 0 = unhealthy/not configured
	Uptime   int `json:"uptime"`   // uptime in seconds
}

type MonitoringController struct {
	store     store.DocumentStore
	logger    *log.Logger
	cache     Cache
	startTime time.Time
}

func NewMonitoringController(documentStore store.DocumentStore, logger *log.Logger, cache Cache) *router.RESTController {
	ctrl := &MonitoringController{
		store:     documentStore,
		logger:    logger,
		cache:     cache,
		startTime: time.Now(),
	}

	return router.NewRESTController(
		"MonitoringController",
		"/",
		func(routerService *router.RouterService, controller *router.RESTController) {

			diagnosticsRateLimiter := createDiagnosticsRateLimiter(routerService)

			routerService.AddGetHandler(controller, nil, "", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.greetRoot(c)
			})

			routerService.AddGetHandler(controller, nil, "api/hello", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.greetAPI(c)
			})

			routerService.AddGetHandler(controller, diagnosticsRateLimiter, "test", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.storeDiagnostics(routerService, c)
			})

			routerService.AddGetHandler(controller, diagnosticsRateLimiter, "health", func(c *router.RequestContext) *router.ServiceResult {
				return ctrl.healthCheck(routerService, c)
			})
		},
	)
}

func createDiagnosticsRateLimiter(routerService *router.RouterService) ratelimit.RateLimiter {
	const diagnosticsRequestsPerMinute = 10 // More restrictive than default 100

	config := &ratelimit.RateLimitConfig{
		Requests: diagnosticsRequestsPerMinute,
		Window:   time.Minute, // 1 minute window
		Redis:    nil,         // For now, use in-memory (could be enhanced to use Redis)
		Logger:   nil,         // Logger not needed for in-memory limiter
	}

	return ratelimit.NewRateLimiter(config)
}

func (ctrl *MonitoringController) greetRoot(c *router.RequestContext) *router.ServiceResult {
	return router.OKResult(GreetingResponse{Message: "Hello from the Waitlist Backend!"})
}

func (ctrl *MonitoringController) greetAPI(c *router.RequestContext) *router.ServiceResult {
	return router.OKResult(GreetingResponse{Message: "Hello from the backend API!"})
}

// storeDiagnostics never returns an HTTP error: every introspection failure
// only degrades the status text of the field it belongs to.
func (ctrl *MonitoringController) storeDiagnostics(
	routerService *router.RouterService,
	c *router.RequestContext,
) *router.ServiceResult {
	logger := routerService.GetLogger(c)
	logger.Info("Store diagnostics endpoint called")

	report := ctrl.buildDiagnosticsReport(c.Request.Context(), logger)
	return router.OKResult(report)
}

func (ctrl *MonitoringController) buildDiagnosticsReport(ctx context.Context, logger *log.Logger) DiagnosticsReport {
	report := DiagnosticsReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if ctrl.store != nil {
		report.Database = "✅ Available"
		report.ConnectionStatus = "Connected"

		// Listing collection names verifies actual connectivity.
		collections, err := ctrl.store.ListCollectionNames(ctx)
		if err != nil {
			logger.Error("Diagnostics: listing collections failed", "error", err)
			report.Database = "⚠️  Connected but Error: " + truncateError(err)
		} else {
			if len(collections) > constants.MaxDiagnosticsCollections {
				collections = collections[:constants.MaxDiagnosticsCollections]
			}
			report.Collections = collections
			report.Database = "✅ Connected & Working"
		}
	}

	report.DatabaseURL = envIndicator("DATABASE_URL")
	report.DatabaseName = envIndicator("DATABASE_NAME")

	return report
}

func envIndicator(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncateError(err error) string {
	msg := []rune(err.Error())
	if len(msg) > constants.MaxDiagnosticsErrorLength {
		msg = msg[:constants.MaxDiagnosticsErrorLength]
	}
	return string(msg)
}

func (ctrl *MonitoringController) healthCheck(
	routerService *router.RouterService,
	c *router.RequestContext,
) *router.ServiceResult {
	logger := routerService.GetLogger(c)
	logger.Info("Health check endpoint called")

	return router.OKResult(ctrl.performHealthChecks(c.Request.Context(), logger))
}

func (ctrl *MonitoringController) performHealthChecks(ctx context.Context, logger *log.Logger) HealthStatus {
	status := HealthStatus{
		Uptime: int(time.Since(ctrl.startTime).Seconds()),
	}

	if ctrl.store != nil && ctrl.store.Ping(ctx) == nil {
		status.Database = 1
		logger.Info("Database health check passed")
	} else {
		status.Database = 0
		logger.Warn("Database health check failed or store not configured")
	}

	if ctrl.cache != nil && ctrl.cache.Ping(ctx) == nil {
		status.Cache = 1
		logger.Info("Cache health check passed")
	} else {
		status.Cache = 0
		logger.Info("Cache not configured or unreachable")
	}

	return status
}
