package handlers

import (
	"net/http"
	"sync"

	intconfig "motortransport/internal/config"
	"motortransport/internal/roster"

	"github.com/gin-gonic/gin"
)

var (
	jwtSecret = []byte("super-secret-key-change-me")

	// one editor session per process, like the single-operator desktop
	// client this backend replaces
	sessionOnce   sync.Once
	editorSession *roster.Session
)

// Configure wires env-dependent handler state. Called once by the router.
func Configure(env intconfig.Env) {
	if env.JWTSecret != "" {
		jwtSecret = []byte(env.JWTSecret)
	}
}

// Session returns the shared editor session.
func Session() *roster.Session {
	sessionOnce.Do(func() {
		editorSession = roster.NewSession()
	})
	return editorSession
}

// JWTSecret exposes the signing key to the router's auth middleware.
func JWTSecret() []byte { return jwtSecret }

// BindJSONOrError ensures the body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
