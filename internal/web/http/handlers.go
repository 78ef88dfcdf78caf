package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/vrgreentek/greentek-site/internal/content"
	inquiry "github.com/vrgreentek/greentek-site/internal/inquiries/domain"
	"github.com/vrgreentek/greentek-site/internal/projects/domain"
	"github.com/vrgreentek/greentek-site/internal/web/components"
	"github.com/vrgreentek/greentek-site/internal/web/pages"
)

func (h *Handler) page(c *gin.Context, title string) components.PageConfig {
	path := c.Request.URL.Path
	return components.PageConfig{
		Title:     title,
		Path:      path,
		Canonical: h.baseURL + path,
		Site:      h.site,
	}
}

func (h *Handler) render(c *gin.Context, status int, n g.Node) {
	c.Render(status, components.Renderer{Node: n})
}

func (h *Handler) home(c *gin.Context) {
	track := content.TrackOrDefault(c.Query("track"))
	h.render(c, http.StatusOK, pages.Home(h.page(c, h.site.Company.Name), track))
}

func (h *Handler) about(c *gin.Context) {
	track := content.TrackOrDefault(c.Query("track"))
	h.render(c, http.StatusOK, pages.About(h.page(c, "About | "+h.site.Company.Name), track))
}

func (h *Handler) solar(c *gin.Context) {
	h.render(c, http.StatusOK, pages.Solar(h.page(c, "Solar Energy | "+h.site.Company.Name)))
}

func (h *Handler) contact(c *gin.Context) {
	form := pages.ContactForm{Success: c.Query("sent") == "1"}
	h.render(c, http.StatusOK, pages.Contact(h.page(c, "Contact | "+h.site.Company.Name), form))
}

// submitContact handles the HTML form. Success redirects so a refresh does not resubmit.
func (h *Handler) submitContact(c *gin.Context) {
	cfg := h.page(c, "Contact | "+h.site.Company.Name)

	var in inquiry.NewInquiryInput
	if err := c.ShouldBind(&in); err != nil {
		h.render(c, http.StatusBadRequest, pages.Contact(cfg, pages.ContactForm{Notice: "We could not read your message. Please try again."}))
		return
	}

	_, err := h.inquiries.Submit(c.Request.Context(), in, inquiry.SourceWebForm, c.ClientIP())
	if err == nil {
		c.Redirect(http.StatusSeeOther, "/contact?sent=1#contact-form")
		return
	}

	form := pages.ContactForm{Values: in}
	var verr *inquiry.ValidationError
	switch {
	case errors.As(err, &verr):
		form.Errors = verr.Fields
		form.Notice = "Please correct the highlighted fields."
		h.render(c, http.StatusBadRequest, pages.Contact(cfg, form))
	case errors.Is(err, inquiry.ErrRateLimited):
		form.Notice = "You have sent several messages recently. Please try again in an hour or call us directly."
		h.render(c, http.StatusTooManyRequests, pages.Contact(cfg, form))
	default:
		h.log.Error("contact submission failed", zap.Error(err))
		form.Notice = "Something went wrong on our side. Please try again or email us."
		h.render(c, http.StatusInternalServerError, pages.Contact(cfg, form))
	}
}

func (h *Handler) projectsIndex(c *gin.Context) {
	tracks := make([]pages.TrackListing, 0, len(domain.Types))
	for _, t := range domain.Types {
		tracks = append(tracks, pages.TrackListing{
			Type:     t,
			Count:    len(h.projects.List(t)),
			Featured: h.projects.Featured(t, h.site.Projects.Track(t).Featured),
		})
	}
	h.render(c, http.StatusOK, pages.Projects(h.page(c, "Projects | "+h.site.Company.Name), tracks))
}

func (h *Handler) projectDetail(c *gin.Context) {
	d, err := h.projects.Get(c.Param("type"), c.Param("slug"))
	if err != nil {
		h.render(c, http.StatusNotFound, pages.NotFound(h.page(c, "Project Not Found"), ""))
		return
	}
	h.render(c, http.StatusOK, pages.ProjectDetail(h.page(c, ""), d))
}

func (h *Handler) notFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "route not found"})
		return
	}
	h.render(c, http.StatusNotFound, pages.NotFound(h.page(c, ""), ""))
}
