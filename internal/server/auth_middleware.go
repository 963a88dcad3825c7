package server

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/mfeehan/vitals/internal/logger"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gorilla/securecookie"
	"golang.org/x/oauth2"
)

const (
	sessionMaxAge = 24 * time.Hour
	apiKeyPrefix  = "vit_"
)

type userCtxKey struct{}

type User struct {
	Subject string
	Email   string
	UserID  string
	Claims  map[string]any
}

type AuthProvider struct {
	name       string
	oauth2     *oauth2.Config
	oidcProv   *oidc.Provider
	idVerifier *oidc.IDTokenVerifier
	state      *StateStore
}

type authState struct {
	Verifier string
	Return   string
	ExpireAt time.Time
}

// StateStore holds in-flight OIDC login state, janitored on a timer.
type StateStore struct {
	ttl time.Duration
	mu  sync.Mutex
	m   map[string]authState
}

func NewStateStore(ttl time.Duration) *StateStore {
	s := &StateStore{ttl: ttl, m: make(map[string]authState)}
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			s.mu.Lock()
			for k, v := range s.m {
				if now.After(v.ExpireAt) {
					delete(s.m, k)
				}
			}
			s.mu.Unlock()
		}
	}()
	return s
}

func (s *StateStore) Put(key string, v authState) {
	s.mu.Lock()
	s.m[key] = v
	s.mu.Unlock()
}

func (s *StateStore) GetAndDelete(key string) (authState, bool) {
	s.mu.Lock()
	v, ok := s.m[key]
	if ok {
		delete(s.m, key)
	}
	s.mu.Unlock()
	if ok && time.Now().After(v.ExpireAt) {
		return authState{}, false
	}
	return v, ok
}

// ConfigureOIDCProviders builds the provider map and the session cookie
// codec from config. Call once at startup when auth is enabled.
func (s *Server) ConfigureOIDCProviders() error {
	logger.Info("Configuring OIDC providers", "count", len(s.cfg.OIDCProviders))

	hashKey := securecookie.GenerateRandomKey(64)
	blockKey := securecookie.GenerateRandomKey(32)
	if hashKey == nil || blockKey == nil {
		return fmt.Errorf("failed to generate secure cookie keys")
	}
	sessionCookie := securecookie.New(hashKey, blockKey)
	sessionCookie.MaxAge(int(sessionMaxAge.Seconds()))

	providers := make(map[string]*AuthProvider)
	for i := range s.cfg.OIDCProviders {
		p := s.cfg.OIDCProviders[i]
		prov, err := oidc.NewProvider(context.Background(), p.IssuerURL)
		if err != nil {
			logger.Error("Failed to create OIDC provider", "id", p.Id, "error", err)
			return fmt.Errorf("failed to create OIDC provider %s: %w", p.Id, err)
		}
		providers[p.Id] = &AuthProvider{
			name:       p.Name,
			oidcProv:   prov,
			idVerifier: prov.Verifier(&oidc.Config{ClientID: p.ClientID}),
			oauth2: &oauth2.Config{
				ClientID:     p.ClientID,
				ClientSecret: p.ClientSecret,
				Endpoint:     prov.Endpoint(),
				RedirectURL:  p.RedirectURL,
				Scopes:       p.Scopes,
			},
			state: NewStateStore(5 * time.Minute),
		}
		logger.Info("OIDC provider configured", "id", p.Id, "name", p.Name)
	}

	s.authProviders = providers
	s.sessionCookie = sessionCookie
	return nil
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var rawIDToken string
		var providerID string

		// Session cookie first.
		if c, err := r.Cookie("session"); err == nil {
			var prefixedToken string
			if err := s.sessionCookie.Decode("session", c.Value, &prefixedToken); err == nil {
				if pID, token, err := parseProviderToken(prefixedToken); err == nil {
					providerID, rawIDToken = pID, token
				}
			}
		}

		// Then API key or Bearer token.
		if rawIDToken == "" {
			if ah := r.Header.Get("Authorization"); strings.HasPrefix(ah, "Bearer ") {
				token := strings.TrimPrefix(ah, "Bearer ")
				if strings.HasPrefix(token, apiKeyPrefix) {
					if user, ok := s.authenticateAPIKey(token); ok {
						RecordAuthEvent("verification", "success", "apikey")
						next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userCtxKey{}, user)))
						return
					}
					RecordAuthEvent("verification", "failed", "apikey")
					s.handleAuthFailure(w, r, false)
					return
				}
				if pID, tok, err := parseProviderToken(token); err == nil {
					if _, exists := s.authProviders[pID]; exists {
						providerID, rawIDToken = pID, tok
					}
				}
			}
		}

		if rawIDToken == "" || providerID == "" {
			RecordAuthEvent("verification", "missing_token", "unknown")
			s.handleAuthFailure(w, r, false)
			return
		}

		idTok, err := s.authProviders[providerID].idVerifier.Verify(r.Context(), rawIDToken)
		if err != nil {
			RecordAuthEvent("verification", "failed", providerID)
			newIDToken, refreshed := s.tryRefreshToken(r.Context(), providerID, rawIDToken)
			if !refreshed {
				RecordAuthEvent("refresh", "failed", providerID)
				s.handleAuthFailure(w, r, true)
				return
			}
			idTok, err = s.authProviders[providerID].idVerifier.Verify(r.Context(), newIDToken)
			if err != nil {
				RecordAuthEvent("refresh", "verification_failed", providerID)
				s.handleAuthFailure(w, r, true)
				return
			}
			RecordAuthEvent("refresh", "success", providerID)
			s.setSessionCookie(w, providerID+":"+newIDToken)
		} else {
			RecordAuthEvent("verification", "success", providerID)
		}

		var claims map[string]any
		if err := idTok.Claims(&claims); err != nil {
			logger.Error("Failed to extract claims from token", "error", err)
			s.handleAuthFailure(w, r, true)
			return
		}
		u := &User{
			Subject: idTok.Subject,
			Email:   strClaim(claims, "email"),
			UserID:  userIDFromClaims(claims),
			Claims:  claims,
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userCtxKey{}, u)))
	})
}

func (s *Server) setSessionCookie(w http.ResponseWriter, prefixedToken string) {
	val, err := s.sessionCookie.Encode("session", prefixedToken)
	if err != nil {
		logger.Error("Failed to encode session cookie", "error", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    val,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(sessionMaxAge.Seconds()),
	})
}

func (s *Server) handleAuthFailure(w http.ResponseWriter, r *http.Request, clearCookie bool) {
	if clearCookie {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "", Path: "/", MaxAge: -1})
	}

	accept := r.Header.Get("Accept")
	if r.Method == http.MethodGet && (strings.Contains(accept, "text/html") || accept == "") {
		http.Redirect(w, r, "/auth/login", http.StatusFound)
		return
	}
	if clearCookie {
		w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	} else {
		w.Header().Set("WWW-Authenticate", `Bearer realm="vitals"`)
	}
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

func (s *Server) tryRefreshToken(ctx context.Context, providerID, expiredIDToken string) (string, bool) {
	claims, err := s.parseTokenClaims(providerID, expiredIDToken)
	if err != nil {
		return "", false
	}
	userID := userIDFromClaims(claims)
	if userID == "" {
		return "", false
	}

	storedToken, exists, err := s.store.GetRefreshToken(userID)
	if err != nil || !exists {
		return "", false
	}

	provider := s.authProviders[providerID]
	freshToken, err := provider.oauth2.TokenSource(ctx, storedToken).Token()
	if err != nil {
		logger.Debug("Token refresh failed", "error", err, "userID", userID)
		if delErr := s.store.DeleteRefreshToken(userID); delErr != nil {
			logger.Error("Failed to delete refresh token", "userID", userID, "error", delErr)
		}
		return "", false
	}

	if err := s.store.PutRefreshToken(userID, freshToken); err != nil {
		logger.Error("Failed to persist refresh token", "userID", userID, "error", err)
	}

	newIDToken, ok := freshToken.Extra("id_token").(string)
	if !ok || newIDToken == "" {
		return "", false
	}
	return newIDToken, true
}

func (s *Server) parseTokenClaims(providerID, token string) (map[string]any, error) {
	provider := s.authProviders[providerID]
	verifier := provider.oidcProv.Verifier(&oidc.Config{
		ClientID:        provider.oauth2.ClientID,
		SkipExpiryCheck: true,
	})

	idTok, err := verifier.Verify(context.Background(), token)
	if err != nil {
		return nil, fmt.Errorf("failed to parse expired token: %w", err)
	}

	var claims map[string]any
	err = idTok.Claims(&claims)
	return claims, err
}

func (s *Server) authenticateAPIKey(apiKey string) (*User, bool) {
	keyHash := hashAPIKey(apiKey)
	userID, found, err := s.store.GetAPIKey(keyHash)
	if err != nil {
		logger.Error("Failed to lookup API key", "error", err)
		return nil, false
	}
	if !found {
		return nil, false
	}
	return &User{
		UserID:  userID,
		Subject: "apikey:" + truncateHash(keyHash),
		Claims:  map[string]any{"auth_method": "api_key"},
	}, true
}

func parseProviderToken(token string) (providerID, jwt string, err error) {
	parts := strings.SplitN(token, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid token format: expected 'provider:jwt'")
	}
	return parts[0], parts[1], nil
}

func strClaim(m map[string]any, k string) string {
	if v, ok := m[k].(string); ok {
		return v
	}
	return ""
}

// userIDFromClaims derives a stable user ID from the issuer and subject.
func userIDFromClaims(claims map[string]any) string {
	iss, ok := claims["iss"].(string)
	if !ok {
		return ""
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return ""
	}
	hash := sha256.Sum256([]byte(iss + "|" + sub))
	return fmt.Sprintf("user-%x", hash[:8])
}

func userIDFromContext(authEnabled bool, r *http.Request) string {
	if !authEnabled {
		return "anonymous"
	}
	user, ok := r.Context().Value(userCtxKey{}).(*User)
	if !ok {
		logger.Error("No user in context")
		return ""
	}
	return user.UserID
}
