package httpserver

import (
	"context"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/idreesmuhammadqazi-create/MUN/internal/middleware"
	"github.com/idreesmuhammadqazi-create/MUN/internal/model"
	orchestratorHTTP "github.com/idreesmuhammadqazi-create/MUN/internal/orchestrator/delivery/http"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l)
	srv.gin.Use(mw.Logging(), mw.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the websocket endpoint and the REST queries.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	srv.gin.GET(srv.wsPath, srv.wsHandler.Serve)
	srv.l.Infof(ctx, "Websocket route registered at GET %s", srv.wsPath)

	if srv.orchestratorHandler != nil {
		orchestratorHTTP.RegisterRoutes(srv.gin.Group("/api/v1"), srv.orchestratorHandler)
		srv.l.Infof(ctx, "Orchestrator routes registered under /api/v1")
	} else {
		srv.l.Infof(ctx, "Orchestrator REST handler not configured, skipping /api/v1 routes")
	}
}
