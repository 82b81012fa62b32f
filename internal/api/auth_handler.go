package api

import (
	"errors"
	"net/http"

	"github.com/blogging-platform/internal/config"
	"github.com/blogging-platform/internal/service"
	"github.com/blogging-platform/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// User-facing messages. Conflict and credential failures stay generic so
// neither flow discloses which field or check failed.
const (
	msgConflict           = "Username and Email already exists"
	msgInvalidCredentials = "Invalid credentials"
	msgRegisterFailed     = "An error occurred. Please try again"
)

// AuthHandler handles registration, login and logout pages
type AuthHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "auth").Logger(),
	}
}

// ShowLogin handles GET /login
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	h.renderLogin(c, http.StatusOK, "")
}

// ShowRegister handles GET /register
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	h.renderRegister(c, http.StatusOK, "")
}

// Register handles POST /register. On success the author is redirected
// to the login page; no session is issued by registration.
func (h *AuthHandler) Register(c *gin.Context) {
	in := validation.SignUpInput{
		FirstName: c.PostForm("firstName"),
		LastName:  c.PostForm("lastName"),
		Username:  c.PostForm("username"),
		Email:     c.PostForm("email"),
		Password:  c.PostForm("password"),
		Bio:       c.PostForm("bio"),
	}

	_, err := h.services.Author.Register(c.Request.Context(), &in)
	if err != nil {
		var vErr *validation.Error
		switch {
		case errors.As(err, &vErr):
			h.renderRegister(c, http.StatusOK, vErr.Message)
		case errors.Is(err, service.ErrConflict):
			h.renderRegister(c, http.StatusConflict, msgConflict)
		default:
			h.log.Error().Err(err).Msg("Registration failed")
			h.renderRegister(c, http.StatusInternalServerError, msgRegisterFailed)
		}
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

// Login handles POST /login. Credentials are verified and a session
// token is set as an http-only, same-site-lax cookie whose max age
// matches the token's own expiry. Unexpected failures degrade to the
// generic invalid-credentials message.
func (h *AuthHandler) Login(c *gin.Context) {
	in := validation.SignInInput{
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}

	token, err := h.services.Author.Login(c.Request.Context(), &in)
	if err != nil {
		var vErr *validation.Error
		switch {
		case errors.As(err, &vErr):
			h.renderLogin(c, http.StatusOK, vErr.Message)
		case errors.Is(err, service.ErrInvalidCredentials):
			h.renderLogin(c, http.StatusUnauthorized, msgInvalidCredentials)
		default:
			h.log.Error().Err(err).Msg("Login failed")
			h.renderLogin(c, http.StatusUnauthorized, msgInvalidCredentials)
		}
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		authCookieName,
		token,
		int(h.cfg.Auth.TokenTTL.Seconds()),
		"/",
		"",
		h.cfg.Auth.Production,
		true,
	)

	c.Redirect(http.StatusFound, "/admin/home")
}

// Logout handles GET /logout, clearing the session cookie. Tokens are
// not revoked server-side; they simply expire.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookieName, "", -1, "/", "", h.cfg.Auth.Production, true)
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) renderLogin(c *gin.Context, status int, errMsg string) {
	c.HTML(status, "login.html", gin.H{
		"Title":        "Login",
		"Description":  "Sign in to manage your articles",
		"ErrorMessage": errMsg,
	})
}

func (h *AuthHandler) renderRegister(c *gin.Context, status int, errMsg string) {
	c.HTML(status, "register.html", gin.H{
		"Title":        "Register",
		"Description":  "Create an author account",
		"ErrorMessage": errMsg,
	})
}
