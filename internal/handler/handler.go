package handler

import (
	"net/http"
	"time"

	"github.com/digicides/blog-service/internal/dto"
	"github.com/digicides/blog-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

const sessionCookieName = "admin_token"

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "PUT", "DELETE"},
		AllowCredentials: true,
	}))

	blogs := r.Group("/blogs")
	{
		blogs.GET("", h.blogsList)
		blogs.POST("", h.blogsCreate)

		blog := blogs.Group("/:id")
		{
			blog.GET("", h.blogsGet)
			blog.PUT("", h.blogsUpdate)
			blog.DELETE("", h.blogsDelete)

			blog.GET("/like", h.likesCheck)
			blog.POST("/like", h.likesToggle)

			blog.GET("/comments", h.commentsList)
			blog.POST("/comments", h.commentsCreate)
		}
	}

	admin := r.Group("/admin")
	{
		admin.POST("/login", h.adminLogin)
		admin.POST("/logout", h.adminLogout)
		admin.GET("/session", h.adminSession)

		comments := admin.Group("/comments", h.adminMiddleware)
		{
			comments.GET("", h.adminCommentsList)
			comments.PUT("/:id", h.adminCommentsModerate)
			comments.DELETE("/:id", h.adminCommentsDelete)
		}
	}

	return r
}

// currentAdmin resolves the session cookie to an admin, or nil when the request
// carries no valid session.
func (h *Handler) currentAdmin(c *gin.Context) *dto.AuthAdmin {
	token := h.sessionToken(c)
	if token == "" {
		return nil
	}

	admin, err := h.services.Auth.Validate(c.Request.Context(), token)
	if err != nil {
		return nil
	}

	return admin
}

func (h *Handler) adminFromContext(c *gin.Context) *dto.AuthAdmin {
	adminReq, _ := c.Get("admin")

	admin, ok := adminReq.(dto.AuthAdmin)
	if !ok {
		return nil
	}

	return &admin
}

func (h *Handler) sessionToken(c *gin.Context) string {
	token, err := c.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return token
}

func (h *Handler) setSessionCookie(c *gin.Context, token string, expiresAt time.Time) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, token, int(time.Until(expiresAt).Seconds()), "/", "", viper.GetBool("cookie.secure"), true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", viper.GetBool("cookie.secure"), true)
}
