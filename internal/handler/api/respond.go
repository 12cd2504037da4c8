package api

import (
	"errors"
	"net/http"

	"gourmet-gateway/internal/handler/httperr"
	"gourmet-gateway/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUpstreamError maps the gateway error taxonomy onto HTTP statuses
// for the mutation and auth paths. Read paths never reach this: they fall
// back inside the gateway instead of surfacing errors.
func abortWithUpstreamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", err.Error())
	case errors.Is(err, errs.ErrRemoteRejected):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Upstream service rejected the request", err.Error())
	case errors.Is(err, errs.ErrUnreachable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Upstream service unreachable", nil)
	case errors.Is(err, errs.ErrMalformedResponse):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Upstream service returned an unreadable response", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
