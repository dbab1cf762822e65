package handler

import (
	"net/http"

	"github.com/digicides/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) adminMiddleware(c *gin.Context) {
	admin, err := h.services.Auth.Validate(c.Request.Context(), h.sessionToken(c))
	if err != nil {
		h.clearSessionCookie(c)
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errNotAuthorized))
		c.Abort()
		return
	}

	c.Set("admin", *admin)

	c.Next()
}
