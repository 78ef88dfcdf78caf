package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vrgreentek/greentek-site/internal/inquiries/domain"
)

func (h *Handler) create(c *gin.Context) {
	var in domain.NewInquiryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}

	inq, err := h.svc.Submit(c.Request.Context(), in, domain.SourceAPI, c.ClientIP())
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": domain.ErrInvalidInquiry.Error(), "fields": verr.Fields})
		case errors.Is(err, domain.ErrRateLimited):
			c.Header("Retry-After", "3600")
			c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to submit inquiry"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok":         true,
		"id":         inq.ID,
		"created_at": inq.CreatedAt,
	})
}

func (h *Handler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	items, err := h.svc.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to list inquiries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "inquiries": items})
}

func (h *Handler) get(c *gin.Context) {
	inq, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to load inquiry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "inquiry": inq})
}
