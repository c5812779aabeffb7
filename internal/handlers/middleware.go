package handlers

import (
	"net/http"
	"strings"
)

type MiddlewareProvider struct {
	AllowOrigin  string
	AllowMethods []string
	AllowHeaders []string
}

// New returns the permissive CORS policy used by the relay routes
func New() *MiddlewareProvider {
	return &MiddlewareProvider{
		AllowOrigin:  "*",
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
	}
}

// CORSMiddleware sets the CORS headers on every response, including errors
func (m *MiddlewareProvider) CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", m.AllowOrigin)
		h.Set("Access-Control-Allow-Methods", strings.Join(m.AllowMethods, ", "))
		h.Set("Access-Control-Allow-Headers", strings.Join(m.AllowHeaders, ", "))

		next.ServeHTTP(w, r)
	})
}
