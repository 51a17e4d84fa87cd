package http

import (
	"net/http"
	"strconv"

	"yt-companion/domain/dto"
	"yt-companion/interfaces/middleware"
	"yt-companion/usecase"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUsecase usecase.ICommentUsecase
}

func NewCommentHandler(commentUsecase usecase.ICommentUsecase) *CommentHandler {
	return &CommentHandler{commentUsecase: commentUsecase}
}

// ListRemote returns the video's comment threads as YouTube sees them.
func (h *CommentHandler) ListRemote(ctx *gin.Context) {
	yt := middleware.YouTubeFrom(ctx)
	comments, err := h.commentUsecase.ListRemote(ctx.Request.Context(), yt, ctx.Param("videoId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, comments)
}

// Post publishes a top-level comment or a reply and records a local
// mirror row on success.
func (h *CommentHandler) Post(ctx *gin.Context) {
	var req dto.CommentCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	yt := middleware.YouTubeFrom(ctx)
	comment, err := h.commentUsecase.Post(ctx.Request.Context(), yt, ctx.Param("videoId"), req.Text, req.ParentID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, comment)
}

// Delete removes a mirrored comment from YouTube and the local store,
// addressed by its local identifier.
func (h *CommentHandler) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("commentId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Comment id must be an integer."})
		return
	}

	yt := middleware.YouTubeFrom(ctx)
	if err := h.commentUsecase.Delete(ctx.Request.Context(), yt, id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Comment deleted."})
}

// ListLocal returns the mirror rows recorded for a video, newest first.
func (h *CommentHandler) ListLocal(ctx *gin.Context) {
	comments, err := h.commentUsecase.ListLocal(ctx.Request.Context(), ctx.Param("videoId"))
	if err != nil {
		respondStorageError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, comments)
}
