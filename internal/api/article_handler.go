package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/blogging-platform/internal/models"
	"github.com/blogging-platform/internal/service"
	"github.com/blogging-platform/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	msgArticleNotFound  = "Article not found"
	msgAlreadyPublished = "This article is already published!"
	msgPublished        = "Article has been published successfully!"
	msgPublishFailed    = "An error occurred while publishing the article. Please try again."
	msgEditFailed       = "An error occurred while editing the article. Please try again."
)

// ArticleHandler handles the authenticated article lifecycle routes
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// Dashboard handles GET /dashboard, the author's own paginated listing
// across all statuses
func (h *ArticleHandler) Dashboard(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	feed, err := h.services.Article.AuthorFeed(c.Request.Context(), identity.AuthorID, parsePage(c))
	if err != nil {
		h.log.Error().Err(err).Str("author_id", identity.AuthorID).Msg("Failed to load dashboard")
		c.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	success, errMsg := takeFlash(c)
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title":          "Dashboard",
		"Description":    "Manage your articles",
		"Feed":           feed,
		"SuccessMessage": success,
		"ErrorMessage":   errMsg,
	})
}

// ShowAddArticle handles GET /add-article
func (h *ArticleHandler) ShowAddArticle(c *gin.Context) {
	h.renderAddArticle(c, http.StatusOK, "", nil)
}

// AddArticle handles POST /add-article. The new article is always
// persisted as a draft owned by the authenticated author.
func (h *ArticleHandler) AddArticle(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	in := bindArticleInput(c)
	if _, err := h.services.Article.Create(c.Request.Context(), identity.AuthorID, in); err != nil {
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			h.renderAddArticle(c, http.StatusOK, vErr.Message, in)
			return
		}
		h.log.Error().Err(err).Msg("Failed to create article")
		h.renderAddArticle(c, http.StatusInternalServerError, msgEditFailed, in)
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// ShowEditArticle handles GET /edit-article/:id, pre-populating the form
// from the stored article
func (h *ArticleHandler) ShowEditArticle(c *gin.Context) {
	article, err := h.services.Article.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.renderEditArticle(c, http.StatusNotFound, msgArticleNotFound+".", nil)
			return
		}
		h.log.Error().Err(err).Msg("Failed to load article for edit")
		h.renderEditArticle(c, http.StatusInternalServerError, msgEditFailed, nil)
		return
	}

	h.renderEditArticle(c, http.StatusOK, "", article)
}

// EditArticle handles PUT /edit-article/:id. Content fields are
// overwritten and updated_at bumped; status is untouched by edit.
func (h *ArticleHandler) EditArticle(c *gin.Context) {
	id := c.Param("id")
	in := bindArticleInput(c)

	if _, err := h.services.Article.Update(c.Request.Context(), id, in); err != nil {
		var vErr *validation.Error
		switch {
		case errors.As(err, &vErr):
			// Refetch so the form redisplays the stored article
			article, getErr := h.services.Article.Get(c.Request.Context(), id)
			if getErr != nil {
				h.renderEditArticle(c, http.StatusNotFound, msgArticleNotFound+".", nil)
				return
			}
			h.renderEditArticle(c, http.StatusOK, vErr.Message, article)
		case errors.Is(err, service.ErrNotFound):
			h.renderEditArticle(c, http.StatusNotFound, msgArticleNotFound+".", nil)
		default:
			h.log.Error().Err(err).Str("article_id", id).Msg("Failed to update article")
			h.renderEditArticle(c, http.StatusInternalServerError, msgEditFailed, nil)
		}
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// DeleteArticle handles DELETE /delete-article/:id. Deleting an
// already-gone article lands back on the dashboard like any other.
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id := c.Param("id")
	if err := h.services.Article.Delete(c.Request.Context(), id); err != nil {
		h.log.Error().Err(err).Str("article_id", id).Msg("Failed to delete article")
		flashError(c, "An error occurred while deleting the article. Please try again.")
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// PublishArticle handles GET /publish-article/:id. Every outcome is a
// notice on the dashboard, never a hard error: a draft transitions to
// published, an already-published article is left untouched, and a
// missing article reports a recoverable notice.
func (h *ArticleHandler) PublishArticle(c *gin.Context) {
	id := c.Param("id")

	err := h.services.Article.Publish(c.Request.Context(), id)
	switch {
	case err == nil:
		flashSuccess(c, msgPublished)
	case errors.Is(err, service.ErrAlreadyPublished):
		flashError(c, msgAlreadyPublished)
	case errors.Is(err, service.ErrNotFound):
		flashError(c, msgArticleNotFound)
	default:
		h.log.Error().Err(err).Str("article_id", id).Msg("Failed to publish article")
		flashError(c, msgPublishFailed)
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// bindArticleInput reads the article form, coercing a single
// comma-delimited tags value into trimmed elements
func bindArticleInput(c *gin.Context) *validation.ArticleInput {
	in := &validation.ArticleInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Body:        c.PostForm("body"),
		ReadingTime: c.PostForm("readingTime"),
	}

	tags := c.PostFormArray("tags")
	if len(tags) == 1 {
		in.Tags = validation.CoerceTags(tags[0])
	} else {
		in.Tags = tags
	}
	return in
}

// parsePage reads the 1-indexed page query parameter, defaulting to 1
// when absent or non-numeric
func parsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (h *ArticleHandler) renderAddArticle(c *gin.Context, status int, errMsg string, in *validation.ArticleInput) {
	c.HTML(status, "add-article.html", gin.H{
		"Title":        "Add Article",
		"Description":  "Write a new article",
		"ErrorMessage": errMsg,
		"Input":        in,
	})
}

func (h *ArticleHandler) renderEditArticle(c *gin.Context, status int, errMsg string, article *models.Article) {
	c.HTML(status, "edit-article.html", gin.H{
		"Title":        "Edit Article",
		"Description":  "Update your article",
		"ErrorMessage": errMsg,
		"Article":      article,
	})
}
