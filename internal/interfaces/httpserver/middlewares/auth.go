package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"peerweb/trader-api/internal/domain"
	authvalidator "peerweb/trader-api/internal/infrastructure/auth"
	"peerweb/trader-api/internal/infrastructure/metrics"
	"peerweb/trader-api/internal/interfaces/httpserver/responses"
)

const principalContextKey = "principal"

// AuthMiddleware validates JWT bearer tokens and attaches the resulting
// principal to the request context.
func AuthMiddleware(validator *authvalidator.TokenValidator, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok, err := principalFromJWT(c, validator)
		if err != nil && !errors.Is(err, http.ErrNoCookie) {
			logger.Error().Err(err).Msg("jwt validation failed")
			metrics.RecordAuthRequest("jwt", "invalid")
			responses.HandleErrorWithStatus(c, http.StatusUnauthorized, err, "unauthorized")
			return
		}
		if !ok {
			logger.Warn().
				Str("path", c.FullPath()).
				Str("method", c.Request.Method).
				Msg("unauthenticated request")
			metrics.RecordAuthRequest("jwt", "missing")
			responses.HandleErrorWithStatus(c, http.StatusUnauthorized, errors.New("authentication required"), "unauthorized")
			return
		}

		metrics.RecordAuthRequest("jwt", "ok")
		setPrincipal(c, principal)
		c.Next()
	}
}

// PrincipalFromContext returns the authenticated principal, if any.
func PrincipalFromContext(c *gin.Context) (domain.Principal, bool) {
	val, ok := c.Get(principalContextKey)
	if !ok {
		return domain.Principal{}, false
	}
	principal, ok := val.(domain.Principal)
	return principal, ok
}

func setPrincipal(c *gin.Context, principal domain.Principal) {
	c.Set(principalContextKey, principal)
	// expose commonly-used identity values for downstream handlers
	c.Set("user_id", principal.ID)
	c.Set("user_email", principal.Email)
	c.Writer.Header().Set("X-Principal-Id", principal.ID)
	if principal.Subject != "" {
		c.Writer.Header().Set("X-User-Subject", principal.Subject)
	}
}

func principalFromJWT(c *gin.Context, validator *authvalidator.TokenValidator) (domain.Principal, bool, error) {
	if validator == nil {
		return domain.Principal{}, false, http.ErrNoCookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return domain.Principal{}, false, http.ErrNoCookie
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return domain.Principal{}, false, http.ErrNoCookie
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return domain.Principal{}, false, http.ErrNoCookie
	}
	claims, err := validator.Validate(c.Request.Context(), token)
	if err != nil {
		return domain.Principal{}, false, err
	}

	return domain.Principal{
		ID:         claims.Subject,
		AuthMethod: domain.AuthMethodJWT,
		Subject:    claims.Subject,
		Issuer:     claims.Issuer,
		Username:   claims.PreferredUsername,
		Email:      claims.Email,
		Name:       claims.Name,
		Scopes:     claims.Scopes,
	}, true, nil
}
