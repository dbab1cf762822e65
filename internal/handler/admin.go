package handler

import (
	"net/http"
	"strings"

	"github.com/digicides/blog-service/internal/dto"
	"github.com/digicides/blog-service/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) adminLogin(c *gin.Context) {
	var input dto.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	admin, token, expiresAt, err := h.services.Auth.Login(c.Request.Context(), input, c.ClientIP())
	if err != nil {
		h.serviceError(c, err)
		return
	}

	h.setSessionCookie(c, token, expiresAt)

	c.JSON(http.StatusOK, dto.LoginResponse{Success: true, Admin: *admin})
}

func (h *Handler) adminLogout(c *gin.Context) {
	if err := h.services.Auth.Logout(c.Request.Context(), h.sessionToken(c)); err != nil {
		h.serviceError(c, err)
		return
	}

	h.clearSessionCookie(c)

	c.JSON(http.StatusOK, dto.NewMessageResponse("Logged out"))
}

func (h *Handler) adminSession(c *gin.Context) {
	admin, err := h.services.Auth.Validate(c.Request.Context(), h.sessionToken(c))
	if err != nil {
		h.clearSessionCookie(c)
		c.JSON(http.StatusUnauthorized, dto.SessionResponse{Authenticated: false})
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{Authenticated: true, Admin: admin})
}

func (h *Handler) adminCommentsList(c *gin.Context) {
	comments, err := h.services.Comment.FindAll(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AdminCommentsResponse{Success: true, Comments: comments})
}

func (h *Handler) adminCommentsModerate(c *gin.Context) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidID))
		return
	}

	var input dto.ModerateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	admin := h.adminFromContext(c)
	if admin == nil {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errNotAuthorized))
		return
	}

	if _, err := h.services.Comment.Moderate(c.Request.Context(), id, model.CommentStatus(input.Status), admin.Name); err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Comment "+input.Status))
}

func (h *Handler) adminCommentsDelete(c *gin.Context) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidID))
		return
	}

	if err := h.services.Comment.Delete(c.Request.Context(), id); err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Comment deleted"))
}
