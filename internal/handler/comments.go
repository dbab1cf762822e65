package handler

import (
	"net/http"
	"strings"

	"github.com/digicides/blog-service/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) commentsList(c *gin.Context) {
	blogID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidBlogID))
		return
	}

	// The admin query flag alone never grants the admin view; the session
	// cookie has to check out too.
	asAdmin := c.Query("admin") == "true" && h.currentAdmin(c) != nil

	comments, err := h.services.Comment.FindBlogComments(c.Request.Context(), blogID, asAdmin, c.Query("status"))
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CommentsResponse{Success: true, Comments: comments})
}

func (h *Handler) commentsCreate(c *gin.Context) {
	blogID, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidBlogID))
		return
	}

	var input dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	createdComment, err := h.services.Comment.Submit(c.Request.Context(), blogID, input)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CommentResponse{
		Success: true,
		Comment: createdComment,
		Message: "Your comment has been submitted and is awaiting approval.",
	})
}
