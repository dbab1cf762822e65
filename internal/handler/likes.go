package handler

import (
	"net/http"
	"strings"

	"github.com/digicides/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) likesCheck(c *gin.Context) {
	blogID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidBlogID))
		return
	}

	status, err := h.services.Like.Check(c.Request.Context(), blogID, c.Query("fingerprint"))
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

func (h *Handler) likesToggle(c *gin.Context) {
	blogID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidBlogID))
		return
	}

	var input dto.ToggleLikeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	status, err := h.services.Like.Toggle(c.Request.Context(), blogID, input.Fingerprint)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
