package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sociallearn/index-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// publicRoute descreve uma rota que dispensa autenticação
type publicRoute struct {
	method string
	prefix string
}

// Rotas públicas: leitura do site e autenticação
var publicRoutes = []publicRoute{
	{http.MethodGet, "/healthcheck"},
	{http.MethodPost, "/v1/auth/login"},
	{http.MethodPost, "/v1/auth/register"},
	{http.MethodGet, "/v1/institutions"},
	{http.MethodGet, "/v1/countries"},
	{http.MethodGet, "/v1/institution-types"},
	{http.MethodGet, "/v1/rankings/combined"},
	{http.MethodGet, "/v1/rankings/platform/"},
	{http.MethodGet, "/v1/rankings/top/homepage"},
	{http.MethodGet, "/v1/rankings/trending"},
	{http.MethodGet, "/v1/metrics/institution/"},
	{http.MethodGet, "/v1/blog"},
	{http.MethodGet, "/v1/settings/public"},
	{http.MethodOptions, "/"},
}

func isPublicRoute(r *http.Request) bool {
	for _, route := range publicRoutes {
		if r.Method == route.method && strings.HasPrefix(r.URL.Path, route.prefix) {
			return true
		}
	}
	return false
}

// AuthMiddleware valida o token JWT e injeta as claims do usuário no contexto
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicRoute(r) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
