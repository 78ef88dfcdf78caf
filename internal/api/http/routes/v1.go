package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vrgreentek/greentek-site/internal/api/http/middleware"
	inqhttp "github.com/vrgreentek/greentek-site/internal/inquiries/http"
	inqservice "github.com/vrgreentek/greentek-site/internal/inquiries/service"
	projhttp "github.com/vrgreentek/greentek-site/internal/projects/http"
	projservice "github.com/vrgreentek/greentek-site/internal/projects/service"
)

type V1Deps struct {
	Projects    *projservice.ProjectService
	Inquiries   *inqservice.InquiryService
	AdminAPIKey string
}

// RegisterV1 mounts the JSON API under /api/v1.
func RegisterV1(r gin.IRouter, dep V1Deps) {
	api := r.Group("/api/v1")

	projhttp.New(dep.Projects).Register(api.Group("/projects"))

	inquiries := api.Group("/inquiries")
	h := inqhttp.New(dep.Inquiries)
	h.Register(inquiries)
	if dep.AdminAPIKey != "" {
		h.RegisterAdmin(inquiries, middleware.APIKey(dep.AdminAPIKey))
	}
}
