package server

import (
	"time"

	"yt-companion/domain/repository"
	"yt-companion/infrastructure/configuration"
	httpHandler "yt-companion/interfaces/http"
	"yt-companion/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	cfg *configuration.Config,
	authHandler *httpHandler.AuthHandler,
	videoHandler *httpHandler.VideoHandler,
	commentHandler *httpHandler.CommentHandler,
	noteHandler *httpHandler.NoteHandler,
	logHandler *httpHandler.LogHandler,
	sessionRepository repository.ISession,
	youtubeFactory repository.IYouTubeFactory,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Browser-facing OAuth flow stays outside the session guard.
	router.GET("/login", authHandler.Login)
	router.GET("/auth/callback", authHandler.Callback)

	// Local-only data needs no bearer token.
	router.POST("/videos/:videoId/suggestions", videoHandler.Suggest)
	router.GET("/videos/:videoId/comments/local", commentHandler.ListLocal)
	router.GET("/videos/:videoId/notes", noteHandler.List)
	router.POST("/videos/:videoId/notes", noteHandler.Create)
	router.PUT("/notes/:noteId", noteHandler.Update)
	router.DELETE("/notes/:noteId", noteHandler.Delete)
	router.GET("/logs", logHandler.Recent)

	// Logout needs the session but never talks to the remote platform.
	router.POST("/logout", middleware.Authenticate(sessionRepository), authHandler.Logout)

	// Everything that talks to the remote platform requires a session.
	api := router.Group("")
	api.Use(middleware.Session(sessionRepository, youtubeFactory))
	{
		api.GET("/videos", videoHandler.List)
		api.GET("/videos/:videoId", videoHandler.Get)
		api.PUT("/videos/:videoId/metadata", videoHandler.UpdateMetadata)

		api.GET("/videos/:videoId/comments", commentHandler.ListRemote)
		api.POST("/videos/:videoId/comments", commentHandler.Post)
		api.DELETE("/comments/:commentId", commentHandler.Delete)
	}

	return router
}
