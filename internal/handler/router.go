package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"haggle-service/internal/handler/api"
	"haggle-service/internal/handler/middleware"
	"haggle-service/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, negotiationHandler *api.NegotiationHandler, tokenHandler *api.TokenHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, negotiationHandler, tokenHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, negotiationHandler *api.NegotiationHandler, tokenHandler *api.TokenHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		negotiations := apiGroup.Group("/negotiations")
		negotiations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(negotiations, []route{
				{Method: http.MethodPost, Path: "", Handler: negotiationHandler.OpenNegotiation},
				{Method: http.MethodGet, Path: "", Handler: negotiationHandler.ListNegotiations},
				{Method: http.MethodGet, Path: "/:id", Handler: negotiationHandler.GetNegotiation},
				{Method: http.MethodPost, Path: "/:id/messages", Handler: negotiationHandler.PostMessage},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: negotiationHandler.AcceptOffer},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: negotiationHandler.RejectOffer},
				{Method: http.MethodPost, Path: "/:id/report", Handler: negotiationHandler.ReportSession},
				{Method: http.MethodGet, Path: "/:id/reports", Handler: negotiationHandler.ListSessionReports, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
				{Method: http.MethodGet, Path: "/:id/token", Handler: tokenHandler.GetSessionToken},
			})
		}

		tokens := apiGroup.Group("/tokens")
		tokens.Use(authMiddleware.RequireAuth())
		{
			addRoutes(tokens, []route{
				{Method: http.MethodPost, Path: "/validate", Handler: tokenHandler.ValidateToken},
				{Method: http.MethodPost, Path: "/redeem", Handler: tokenHandler.RedeemToken},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
