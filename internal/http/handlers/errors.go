package handlers

import (
	"net/http"

	"motortransport/internal/domain"
	"motortransport/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondError sends a standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// RespondDomainError maps the domain error taxonomy to HTTP statuses. Auth
// misses and storage outages get distinct statuses on purpose: the client
// must be able to tell "wrong login" from "database down".
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsAuth(err):
		RespondError(c, http.StatusUnauthorized, err.Error(), nil)
	case domain.IsConflict(err):
		RespondError(c, http.StatusConflict, err.Error(), nil)
	case domain.IsEmptyReference(err):
		RespondError(c, http.StatusUnprocessableEntity, err.Error(), nil)
	case domain.IsUnavailable(err):
		RespondError(c, http.StatusServiceUnavailable, err.Error(), nil)
	default:
		RespondError(c, http.StatusInternalServerError, "internal error", nil)
	}
}
