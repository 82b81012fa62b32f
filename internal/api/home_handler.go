package api

import (
	"errors"
	"net/http"

	"github.com/blogging-platform/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HomeHandler handles the public feed and article pages
type HomeHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(services *service.Services, log zerolog.Logger) *HomeHandler {
	return &HomeHandler{
		services: services,
		log:      log.With().Str("handler", "home").Logger(),
	}
}

// Home handles GET /admin/home, the public paginated feed of published
// articles, newest first
func (h *HomeHandler) Home(c *gin.Context) {
	feed, err := h.services.Article.PublicFeed(c.Request.Context(), parsePage(c))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load public feed")
		c.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Title":       "Blogging Website",
		"Description": "Latest published articles",
		"Feed":        feed,
	})
}

// ShowArticle handles GET /admin/article/:id, the public single-article
// view. Each view increments the read count exactly once. A missing
// article redirects to the public feed root rather than erroring.
func (h *HomeHandler) ShowArticle(c *gin.Context) {
	article, err := h.services.Article.View(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		h.log.Error().Err(err).Str("article_id", c.Param("id")).Msg("Failed to load article view")
		c.Redirect(http.StatusFound, "/admin/home")
		return
	}

	c.HTML(http.StatusOK, "article.html", gin.H{
		"Title":       article.Title,
		"Description": article.Description,
		"Article":     article,
	})
}
