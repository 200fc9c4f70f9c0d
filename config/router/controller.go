package router

import (
	"net/http"
	"strconv"

	"github.com/akeren/waitlist-backend/internal/log"
)

func GetLogger(ctx *RequestContext) *log.Logger {
	if logger := ctx.Request.Context().Value(log.LoggerKeyForContext); logger != nil {
		if l, ok := logger.(*log.Logger); ok {
			return l
		}
	}

	baseLogger := log.NewLoggerWithJSONOutput()
	return baseLogger.WithCorrelationID(ctx.Request.Context())
}

func OKResult(data any) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusOK,
		Data:       data,
	}
}

func BadRequestResult(message string, payload any) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusBadRequest,
		Data:       payload,
		Message:    message,
	}
}

func NotFoundResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusNotFound,
		Message:    message,
	}
}

func InternalServerErrorResult(message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: http.StatusInternalServerError,
		Message:    message,
	}
}

func ErrorResult(statusCode int, message string) *ServiceResult {
	return &ServiceResult{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ParseLimitQuery reads a positive integer query parameter, falling back to
// defaultValue when the parameter is absent or malformed.
func ParseLimitQuery(ctx *RequestContext, paramName string, defaultValue int64) int64 {
	raw := ctx.Query(paramName)
	if raw == "" {
		return defaultValue
	}

	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 0 {
		GetLogger(ctx).Warn("Invalid limit query parameter, using default", "param", paramName, "value", raw)
		return defaultValue
	}

	return limit
}
