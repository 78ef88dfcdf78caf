package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vrgreentek/greentek-site/internal/projects/domain"
)

func (h *Handler) list(c *gin.Context) {
	var typ domain.ProjectType
	if raw := c.Query("type"); strings.TrimSpace(raw) != "" {
		t, ok := domain.ParseType(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": domain.ErrInvalidType.Error()})
			return
		}
		typ = t
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": h.svc.List(typ)})
}

func (h *Handler) get(c *gin.Context) {
	d, err := h.svc.Get(c.Param("type"), c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"project": d.Project,
		"href":    d.Href,
		"similar": d.Similar,
	})
}
