package router

import (
	"github.com/gin-gonic/gin"
)

type RequestContext = gin.Context

type MiddlewareFunc = gin.HandlerFunc

// ServiceResult is what handlers return. On success the Data payload is
// serialized as the response body verbatim; on error the body is
// {"detail": Message} plus an "errors" array when Data carries field-level
// validation details.
type ServiceResult struct {
	StatusCode int
	Data       any
	Message    string
}

type HandlerFunction func(*RequestContext) *ServiceResult

type RESTController struct {
	name         string
	mountPoint   string
	version      string
	handlerCount int
	prepare      func(*RouterService, *RESTController)
}

func (result *ServiceResult) IsSuccess() bool {
	return result.StatusCode >= 200 && result.StatusCode < 300
}

func (result *ServiceResult) IsError() bool {
	return result.StatusCode >= 400
}

// ErrorBody shapes the error response wire format.
func (result *ServiceResult) ErrorBody() gin.H {
	body := gin.H{"detail": result.Message}
	if result.Data != nil {
		body["errors"] = result.Data
	}
	return body
}
