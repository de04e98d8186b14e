package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/geoprofit/geoprofit-dashboard/config"
	httpapi "github.com/geoprofit/geoprofit-dashboard/internal/api/http"
	"github.com/geoprofit/geoprofit-dashboard/internal/api/http/middleware"
	"github.com/geoprofit/geoprofit-dashboard/internal/api/http/routes"
	"github.com/geoprofit/geoprofit-dashboard/internal/upstream"
)

type RouterDeps struct {
	ServiceName string
	Cfg         *config.Config
	Engine      *upstream.Client
	Redis       *redis.Client
	Logger      *zap.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-Id"},
		AllowCredentials: false,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Cfg.App.Version, dep.Redis, dep.Engine)
	healthHandler.RegisterRoutes(r)

	routes.RegisterV1(r, routes.V1Deps{
		Cfg:    dep.Cfg,
		Engine: dep.Engine,
		Redis:  dep.Redis,
		Logger: dep.Logger,
	})

	return r
}
