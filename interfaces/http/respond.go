package http

import (
	"errors"
	"net/http"

	"yt-companion/domain/model"
	"yt-companion/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

const maxDetailLen = 200

// respondError maps domain and upstream failures to a status code with a
// {"detail": ...} body. Upstream API errors surface as 400 with a truncated
// message so the operator can see what Google rejected without leaking a
// full payload.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
	case errors.Is(err, model.ErrUnauthenticated):
		ctx.JSON(http.StatusUnauthorized, gin.H{"detail": "Session expired. Please log in again via /login."})
	case errors.Is(err, model.ErrMirrorWrite):
		// The remote mutation succeeded; only the local write is broken.
		logger.GetLogger().WithField("error", err).Error("Mirror write failed after remote success")
		ctx.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error."})
	default:
		logger.GetLogger().WithField("error", err).Error("Request failed")
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": truncateDetail(err.Error())})
	}
}

// respondStorageError is for operations that only touch the local
// database, where any non-ErrNotFound failure is ours rather than
// something the caller can correct.
func respondStorageError(ctx *gin.Context, err error) {
	if errors.Is(err, model.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	logger.GetLogger().WithField("error", err).Error("Storage operation failed")
	ctx.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error."})
}

func respondBindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusUnprocessableEntity, gin.H{"detail": truncateDetail(err.Error())})
}

func truncateDetail(s string) string {
	if len(s) > maxDetailLen {
		return s[:maxDetailLen]
	}
	return s
}
