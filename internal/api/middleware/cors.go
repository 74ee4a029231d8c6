package middleware

import (
	"net/http"
	"strings"

	"trainit-backend/internal/config"

	"github.com/gin-gonic/gin"
	cors "github.com/rs/cors/wrapper/gin"
)

var (
	corsAllowMethods = []string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
	}
	corsAllowHeaders = []string{"Authorization", "Content-Type", "Accept", "Origin", RequestIDHeader}
)

// CORS echoes allowed origins back with credentials enabled and answers preflight requests
func CORS(cfg *config.Config) gin.HandlerFunc {
	origins := make([]string, 0, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		origins = append(origins, strings.TrimRight(origin, "/"))
	}

	return cors.New(cors.Options{
		AllowedOrigins:       origins,
		AllowedMethods:       corsAllowMethods,
		AllowedHeaders:       corsAllowHeaders,
		ExposedHeaders:       []string{RequestIDHeader},
		AllowCredentials:     true,
		OptionsSuccessStatus: http.StatusNoContent,
	})
}
