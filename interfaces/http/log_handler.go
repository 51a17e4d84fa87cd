package http

import (
	"net/http"
	"strconv"

	"yt-companion/usecase"

	"github.com/gin-gonic/gin"
)

type LogHandler struct {
	logUsecase usecase.ILogUsecase
}

func NewLogHandler(logUsecase usecase.ILogUsecase) *LogHandler {
	return &LogHandler{logUsecase: logUsecase}
}

// Recent returns the newest audit events, most recent first.
func (h *LogHandler) Recent(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Limit must be an integer."})
			return
		}
		limit = parsed
	}

	events, err := h.logUsecase.Recent(ctx.Request.Context(), limit)
	if err != nil {
		respondStorageError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, events)
}
