package handler

import (
	"net/http"
	"strings"

	"github.com/digicides/blog-service/internal/dto"
	"github.com/digicides/blog-service/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) blogsList(c *gin.Context) {
	var status *model.BlogStatus
	if statusString := c.Query("status"); statusString != "" {
		s := model.BlogStatus(statusString)
		status = &s
	}

	blogs, err := h.services.Blog.FindAll(c.Request.Context(), status)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BlogsResponse{Success: true, Blogs: blogs})
}

func (h *Handler) blogsGet(c *gin.Context) {
	key := strings.TrimSpace(c.Param("id"))

	blog, err := h.services.Blog.FindByIDOrSlug(c.Request.Context(), key)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BlogResponse{Success: true, Blog: blog})
}

func (h *Handler) blogsCreate(c *gin.Context) {
	var input dto.CreateBlogRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	createdBlog, err := h.services.Blog.Create(c.Request.Context(), input)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.BlogResponse{Success: true, Blog: createdBlog})
}

func (h *Handler) blogsUpdate(c *gin.Context) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidBlogID))
		return
	}

	var input dto.UpdateBlogRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err))
		return
	}

	updatedBlog, err := h.services.Blog.Update(c.Request.Context(), id, input)
	if err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BlogResponse{Success: true, Blog: updatedBlog})
}

func (h *Handler) blogsDelete(c *gin.Context) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidBlogID))
		return
	}

	if err := h.services.Blog.Delete(c.Request.Context(), id); err != nil {
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Blog deleted successfully"))
}
