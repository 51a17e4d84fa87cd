package http

import (
	"net/http"

	"yt-companion/domain/dto"
	"yt-companion/interfaces/middleware"
	"yt-companion/usecase"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUsecase usecase.IVideoUsecase
}

func NewVideoHandler(videoUsecase usecase.IVideoUsecase) *VideoHandler {
	return &VideoHandler{videoUsecase: videoUsecase}
}

// List returns the authenticated channel's most recent uploads.
func (h *VideoHandler) List(ctx *gin.Context) {
	yt := middleware.YouTubeFrom(ctx)
	videos, err := h.videoUsecase.ListVideos(ctx.Request.Context(), yt)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, videos)
}

// Get returns snippet and statistics for a single video.
func (h *VideoHandler) Get(ctx *gin.Context) {
	yt := middleware.YouTubeFrom(ctx)
	video, err := h.videoUsecase.GetVideo(ctx.Request.Context(), yt, ctx.Param("videoId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, video)
}

// UpdateMetadata pushes a new title and description to YouTube and
// mirrors the title locally.
func (h *VideoHandler) UpdateMetadata(ctx *gin.Context) {
	var req dto.VideoMetadataUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	yt := middleware.YouTubeFrom(ctx)
	video, err := h.videoUsecase.UpdateMetadata(ctx.Request.Context(), yt, ctx.Param("videoId"), req.Title, req.Description)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, video)
}

// Suggest generates alternative titles for a video. The endpoint always
// answers 200 with three strings; degraded modes are encoded in the
// strings themselves.
func (h *VideoHandler) Suggest(ctx *gin.Context) {
	var req dto.SuggestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	suggestions := h.videoUsecase.SuggestTitles(ctx.Request.Context(), ctx.Param("videoId"), req.Title)
	ctx.JSON(http.StatusOK, dto.SuggestionResponse{Suggestions: suggestions})
}
