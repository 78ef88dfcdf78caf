package bootstrap

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vrgreentek/greentek-site/internal/api/http/middleware"
	"github.com/vrgreentek/greentek-site/internal/api/http/routes"
	"github.com/vrgreentek/greentek-site/internal/content"
	inqservice "github.com/vrgreentek/greentek-site/internal/inquiries/service"
	projservice "github.com/vrgreentek/greentek-site/internal/projects/service"
	webhttp "github.com/vrgreentek/greentek-site/internal/web/http"

	httpapi "github.com/vrgreentek/greentek-site/internal/api/http"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	BaseURL     string
	CORSOrigins []string
	AdminAPIKey string

	Projects  *projservice.ProjectService
	Inquiries *inqservice.InquiryService
	Site      *content.Site

	// DB and Redis are probed by the health endpoints; nil reports "disabled".
	DB    httpapi.Pinger
	Redis httpapi.Pinger

	Log *zap.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(dep.Log))
	r.Use(cors.New(corsConfig(dep.CORSOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	routes.RegisterV1(r, routes.V1Deps{
		Projects:    dep.Projects,
		Inquiries:   dep.Inquiries,
		AdminAPIKey: dep.AdminAPIKey,
	})

	webhttp.New(dep.Projects, dep.Inquiries, dep.Site, dep.BaseURL, dep.Log).Register(r)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID, middleware.HeaderAPIKey},
		ExposeHeaders: []string{middleware.HeaderRequestID, "Retry-After"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
