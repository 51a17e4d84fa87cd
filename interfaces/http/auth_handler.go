package http

import (
	"net/http"
	"net/url"

	"yt-companion/interfaces/middleware"
	"yt-companion/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUsecase usecase.IAuthUsecase
	frontendURL string
}

func NewAuthHandler(authUsecase usecase.IAuthUsecase, frontendURL string) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, frontendURL: frontendURL}
}

// Login redirects the browser into Google's consent flow.
func (h *AuthHandler) Login(ctx *gin.Context) {
	ctx.Redirect(http.StatusTemporaryRedirect, h.authUsecase.AuthURL())
}

// Callback completes the OAuth exchange and hands the access token back
// to the frontend as a query parameter.
func (h *AuthHandler) Callback(ctx *gin.Context) {
	code := ctx.Query("code")
	if code == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "Missing authorization code."})
		return
	}

	token, err := h.authUsecase.HandleCallback(ctx.Request.Context(), code)
	if err != nil {
		respondError(ctx, err)
		return
	}

	redirect := h.frontendURL + "?token=" + url.QueryEscape(token)
	ctx.Redirect(http.StatusTemporaryRedirect, redirect)
}

// Logout revokes the Google token and forgets the stored session.
func (h *AuthHandler) Logout(ctx *gin.Context) {
	token := middleware.TokenFrom(ctx)
	if err := h.authUsecase.Logout(ctx.Request.Context(), token); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out successfully."})
}
