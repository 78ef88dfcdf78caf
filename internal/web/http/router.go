package http

import "github.com/gin-gonic/gin"

// Register attaches page routes and the HTML not-found handler.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/", h.home)
	r.GET("/about", h.about)
	r.GET("/contact", h.contact)
	r.POST("/contact", h.submitContact)
	r.GET("/projects", h.projectsIndex)
	r.GET("/projects/:type/:slug", h.projectDetail)
	r.GET("/solutions/solar", h.solar)
	r.GET("/sitemap.xml", h.sitemap)

	r.NoRoute(h.notFound)
}
