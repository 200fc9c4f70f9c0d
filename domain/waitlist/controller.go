package waitlist

import (
	"time"

	"github.com/akeren/waitlist-backend/config/router"
	"github.com/akeren/waitlist-backend/internal/log"
	"github.com/akeren/waitlist-backend/internal/store"
	"github.com/akeren/waitlist-backend/pkg/constants"
	apperrors "github.com/akeren/waitlist-backend/pkg/errors"
	"github.com/akeren/waitlist-backend/pkg/ratelimit"
)

func NewWaitlistController(
	documentStore store.DocumentStore,
	logger *log.Logger,
) *router.RESTController {

	return router.NewRESTController(
		"WaitlistController",
		"/waitlist",
		func(rs *router.RouterService, c *router.RESTController) {
			repository := NewWaitlistRepository(documentStore)
			service := NewWaitlistService(logger, repository)

			signupLimiter := createSignupRateLimiter(rs)

			rs.AddPostHandler(c, signupLimiter, "", createWaitlistEntryHandler(service))
			rs.AddGetHandler(c, nil, "count", waitlistCountHandler(service))
			rs.AddGetHandler(c, nil, "recent", recentWaitlistEntriesHandler(service))
		},
	)
}

func createSignupRateLimiter(routerService *router.RouterService) ratelimit.RateLimiter {
	const signupRequestsPerMinute = 30 // More permissive than monitoring (10/min)

	config := &ratelimit.RateLimitConfig{
		Requests: signupRequestsPerMinute,
		Window:   time.Minute, // 1 minute window
		Redis:    nil,         // For now, use in-memory (could be enhanced to use Redis)
		Logger:   nil,         // Logger not needed for in-memory limiter
	}

	return ratelimit.NewRateLimiter(config)
}

func createWaitlistEntryHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req CreateWaitlistEntryRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to bind request", "error", err)

			validationErrors := apperrors.FormatValidationErrors(err, &req)
			if len(validationErrors) > 0 {
				return router.BadRequestResult("Invalid request payload", validationErrors)
			}

			return router.BadRequestResult("Invalid request body", nil)
		}

		response, err := service.CreateEntry(ctx.Request.Context(), &req)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.DetailMessage(err),
			)
		}

		return router.OKResult(response)
	}
}

func waitlistCountHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		response, err := service.CountEntries(ctx.Request.Context())
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.DetailMessage(err),
			)
		}

		return router.OKResult(response)
	}
}

func recentWaitlistEntriesHandler(service WaitlistService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		limit := router.ParseLimitQuery(ctx, "limit", constants.DefaultRecentEntriesLimit)

		response, err := service.RecentEntries(ctx.Request.Context(), limit)
		if err != nil {
			return router.ErrorResult(
				apperrors.HTTPStatusCode(err),
				apperrors.DetailMessage(err),
			)
		}

		return router.OKResult(response)
	}
}
