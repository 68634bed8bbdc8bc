package middleware

import (
	"log/slog"
	"slices"

	"haggle-service/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	// X-Request-Id is always exposed so a browser client can quote the id
	// stamped on its response when reporting a failed negotiation call.
	expose := slices.Clone(cfg.ExposeHeaders)
	if !slices.Contains(expose, "X-Request-Id") {
		expose = append(expose, "X-Request-Id")
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}
