package http

import "github.com/gin-gonic/gin"

// Register attaches the public inquiry intake to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
}

// RegisterAdmin attaches read endpoints guarded by the given middleware.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup, guard ...gin.HandlerFunc) {
	admin := rg.Group("", guard...)
	admin.GET("", h.list)
	admin.GET("/:id", h.get)
}
