package bootstrap

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpapi "github.com/brandkit-studio/brandkit-backend/internal/api/http"
	"github.com/brandkit-studio/brandkit-backend/internal/api/http/middleware"
	brandkithttp "github.com/brandkit-studio/brandkit-backend/internal/brandkit/http"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Profile     string
	CORSOrigins []string
	BodyLimit   int64
	Logger      *zap.Logger

	// DB and Stats may be nil.
	DB      httpapi.Pinger
	Stats   httpapi.StatsSource
	Service brandkithttp.Service
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	if dep.Logger == nil {
		dep.Logger = zap.NewNop()
	}
	if dep.BodyLimit == 0 {
		dep.BodyLimit = middleware.DefaultBodyLimit
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(dep.CORSOrigins)))
	r.Use(middleware.RequestID(dep.Logger))
	r.Use(middleware.BodyLimit(dep.BodyLimit))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Profile, dep.DB, dep.Stats)
	healthHandler.RegisterRoutes(r)

	brandkithttp.New(dep.Service).Register(r)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
