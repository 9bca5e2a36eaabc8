package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"peerweb/trader-api/internal/config"
)

// PrincipalClaims represent the subset of JWT claims we care about.
type PrincipalClaims struct {
	Subject           string
	Issuer            string
	Audience          []string
	PreferredUsername string
	Email             string
	Name              string
	Scopes            []string
	ExpiresAt         time.Time
	IssuedAt          time.Time
	NotBefore         time.Time
	TokenID           string
}

// TokenValidator validates bearer JWTs. Tokens are checked against a JWKS
// endpoint when one is configured, otherwise against the shared HS256
// secret.
type TokenValidator struct {
	issuer       string
	audience     string
	jwksURL      string
	secret       []byte
	logger       zerolog.Logger
	refreshEvery time.Duration
	jwks         atomic.Pointer[keyfunc.JWKS]
	lastErr      atomic.Value // stores lastErrWrap
}

// lastErrWrap is a sentinel wrapper to avoid storing bare nil in atomic.Value.
type lastErrWrap struct{ Err error }

const (
	jwksInitialRetryInterval   = time.Second
	jwksInitialRetryMaxBackoff = 10 * time.Second
	jwksInitialRetryTimeout    = 2 * time.Minute

	clockSkew = 30 * time.Second
)

// NewTokenValidator builds a validator from config. When a JWKS URL is set
// the initial key fetch happens here, with retry.
func NewTokenValidator(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*TokenValidator, error) {
	if cfg.JWKSURL == "" && cfg.AuthSecret == "" {
		return nil, errors.New("either a jwks url or an auth secret is required")
	}

	validator := &TokenValidator{
		issuer:       cfg.Issuer,
		audience:     cfg.Audience,
		jwksURL:      cfg.JWKSURL,
		secret:       []byte(cfg.AuthSecret),
		logger:       logger,
		refreshEvery: cfg.RefreshJWKSInterval,
	}
	validator.lastErr.Store(lastErrWrap{Err: nil})

	if validator.jwksURL != "" {
		if err := validator.initJWKS(ctx); err != nil {
			return nil, err
		}
	}

	return validator, nil
}

func (v *TokenValidator) initJWKS(ctx context.Context) error {
	options := keyfunc.Options{
		RefreshErrorHandler: func(err error) {
			v.lastErr.Store(lastErrWrap{Err: err})
			if err != nil {
				v.logger.Error().Err(err).Msg("jwks refresh failed")
			}
		},
		RefreshInterval:   v.refreshEvery,
		RefreshUnknownKID: true,
	}

	if ctx != nil {
		options.Ctx = ctx
	}

	backoff := jwksInitialRetryInterval
	deadline := time.Now().Add(jwksInitialRetryTimeout)
	if ctx != nil {
		if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
			deadline = ctxDeadline
		}
	}

	for attempt := 1; ; attempt++ {
		jwks, err := keyfunc.Get(v.jwksURL, options)
		if err == nil {
			v.lastErr.Store(lastErrWrap{Err: nil})
			v.jwks.Store(jwks)
			return nil
		}

		v.logger.Warn().
			Err(err).
			Str("jwks_url", v.jwksURL).
			Int("attempt", attempt).
			Msg("initial jwks fetch failed, retrying")

		if ctx != nil {
			select {
			case <-ctx.Done():
				return fmt.Errorf("fetch jwks: %w", ctx.Err())
			case <-time.After(backoff):
			}
		} else {
			time.Sleep(backoff)
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("fetch jwks: %w", err)
		}

		if next := backoff * 2; next <= jwksInitialRetryMaxBackoff {
			backoff = next
		} else {
			backoff = jwksInitialRetryMaxBackoff
		}
	}
}

// Validate parses and validates the given JWT returning principal claims.
func (v *TokenValidator) Validate(_ context.Context, rawToken string) (*PrincipalClaims, error) {
	var (
		parser  *jwt.Parser
		keyFunc jwt.Keyfunc
	)
	if v.jwksURL != "" {
		jwks := v.jwks.Load()
		if jwks == nil {
			return nil, errors.New("jwks not initialised")
		}
		parser = jwt.NewParser(jwt.WithValidMethods([]string{"RS256"}))
		keyFunc = jwks.Keyfunc
	} else {
		parser = jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
		keyFunc = func(*jwt.Token) (any, error) { return v.secret, nil }
	}

	token, err := parser.ParseWithClaims(rawToken, jwt.MapClaims{}, keyFunc)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	iss, _ := mapClaims["iss"].(string)
	if v.issuer != "" && iss != v.issuer {
		return nil, fmt.Errorf("issuer mismatch %s", iss)
	}

	var audiences []string
	if audRaw, ok := mapClaims["aud"]; ok && v.audience != "" {
		switch val := audRaw.(type) {
		case string:
			if val != v.audience {
				return nil, fmt.Errorf("audience mismatch")
			}
			audiences = append(audiences, val)
		case []interface{}:
			found := false
			for _, item := range val {
				if s, ok := item.(string); ok {
					if s == v.audience {
						found = true
					}
					audiences = append(audiences, s)
				}
			}
			if !found {
				return nil, fmt.Errorf("audience mismatch")
			}
		default:
			return nil, fmt.Errorf("aud claim unsupported type %T", val)
		}
	}

	sub, _ := mapClaims["sub"].(string)
	if sub == "" {
		return nil, errors.New("sub claim missing")
	}

	preferredUsername, _ := mapClaims["preferred_username"].(string)
	email, _ := mapClaims["email"].(string)
	name, _ := mapClaims["name"].(string)

	var scopes []string
	if scopeStr, ok := mapClaims["scope"].(string); ok && scopeStr != "" {
		scopes = strings.Split(scopeStr, " ")
	}

	expires := jwtNumericTime(mapClaims["exp"])
	issued := jwtNumericTime(mapClaims["iat"])
	notBefore := jwtNumericTime(mapClaims["nbf"])

	now := time.Now().UTC()
	if !expires.IsZero() && now.After(expires.Add(clockSkew)) {
		return nil, errors.New("token expired")
	}
	if !notBefore.IsZero() && now.Add(clockSkew).Before(notBefore) {
		return nil, errors.New("token not yet valid")
	}

	return &PrincipalClaims{
		Subject:           sub,
		Issuer:            iss,
		Audience:          audiences,
		PreferredUsername: preferredUsername,
		Email:             email,
		Name:              name,
		Scopes:            scopes,
		ExpiresAt:         expires,
		IssuedAt:          issued,
		NotBefore:         notBefore,
		TokenID:           claimString(mapClaims["jti"]),
	}, nil
}

// Ready indicates whether the validator can verify tokens right now.
func (v *TokenValidator) Ready() bool {
	if v.jwksURL == "" {
		return len(v.secret) > 0
	}
	if v.jwks.Load() == nil {
		return false
	}
	if val := v.lastErr.Load(); val != nil {
		if wrap, ok := val.(lastErrWrap); ok && wrap.Err != nil {
			return false
		}
	}
	return true
}

func jwtNumericTime(value any) time.Time {
	switch timeValue := value.(type) {
	case float64:
		return time.Unix(int64(timeValue), 0).UTC()
	case int64:
		return time.Unix(timeValue, 0).UTC()
	case json.Number:
		if unixTime, err := timeValue.Int64(); err == nil {
			return time.Unix(unixTime, 0).UTC()
		}
	}
	return time.Time{}
}

func claimString(value any) string {
	if str, ok := value.(string); ok {
		return str
	}
	return ""
}
