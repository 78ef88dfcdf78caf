package http

import (
	"go.uber.org/zap"

	"github.com/vrgreentek/greentek-site/internal/content"
	inqservice "github.com/vrgreentek/greentek-site/internal/inquiries/service"
	"github.com/vrgreentek/greentek-site/internal/projects/service"
)

// Handler serves the server-rendered site.
type Handler struct {
	projects  *service.ProjectService
	inquiries *inqservice.InquiryService
	site      *content.Site
	baseURL   string
	log       *zap.Logger
}

func New(projects *service.ProjectService, inquiries *inqservice.InquiryService, site *content.Site, baseURL string, log *zap.Logger) *Handler {
	if site == nil {
		site = content.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		projects:  projects,
		inquiries: inquiries,
		site:      site,
		baseURL:   baseURL,
		log:       log.Named("web"),
	}
}
