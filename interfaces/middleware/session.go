package middleware

import (
	"errors"
	"net/http"
	"strings"

	"yt-companion/domain/model"
	"yt-companion/domain/repository"
	"yt-companion/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

// Context keys set by the session guards for downstream handlers.
const (
	ContextSessionKey = "session"
	ContextYouTubeKey = "youtube_client"
	ContextTokenKey   = "access_token"
)

const bearerPrefix = "Bearer "

// Authenticate resolves the bearer token into a stored credential set.
// Resolution never makes a network call. Used alone for routes that
// need the session but no remote client, such as logout.
func Authenticate(sessions repository.ISession) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session, token, ok := resolveSession(ctx, sessions)
		if !ok {
			return
		}
		ctx.Set(ContextSessionKey, session)
		ctx.Set(ContextTokenKey, token)
		ctx.Next()
	}
}

// Session resolves the bearer token like Authenticate and additionally
// materializes a YouTube client bound to the credentials. Revoked or
// stale credentials fail at the first remote operation instead of here.
func Session(sessions repository.ISession, factory repository.IYouTubeFactory) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session, token, ok := resolveSession(ctx, sessions)
		if !ok {
			return
		}

		client, err := factory.ClientFor(ctx.Request.Context(), session)
		if err != nil {
			logger.GetLogger().WithField("error", err).Error("Failed to materialize YouTube client")
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"detail": "Internal server error.",
			})
			return
		}

		ctx.Set(ContextSessionKey, session)
		ctx.Set(ContextYouTubeKey, client)
		ctx.Set(ContextTokenKey, token)
		ctx.Next()
	}
}

// resolveSession extracts the bearer token and loads its session row,
// aborting the request with the appropriate status when either fails.
func resolveSession(ctx *gin.Context, sessions repository.ISession) (*model.Session, string, bool) {
	token, ok := extractBearer(ctx.Request.Header.Get("Authorization"))
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"detail": "Missing or invalid Authorization header.",
		})
		return nil, "", false
	}

	session, err := sessions.FindByAccessToken(ctx.Request.Context(), token)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Session not found. Please log in again via /login.",
			})
			return nil, "", false
		}
		logger.GetLogger().WithField("error", err).Error("Session lookup failed")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"detail": "Internal server error.",
		})
		return nil, "", false
	}
	return session, token, true
}

// extractBearer requires the literal "Bearer " prefix and a non-empty
// token after it.
func extractBearer(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", false
	}
	return token, true
}

// YouTubeFrom returns the per-request client placed by Session.
func YouTubeFrom(ctx *gin.Context) repository.IYouTube {
	return ctx.MustGet(ContextYouTubeKey).(repository.IYouTube)
}

// TokenFrom returns the raw bearer token placed by either guard.
func TokenFrom(ctx *gin.Context) string {
	return ctx.MustGet(ContextTokenKey).(string)
}
