package http

import (
	"net/http"
	"strconv"

	"yt-companion/domain/dto"
	"yt-companion/usecase"

	"github.com/gin-gonic/gin"
)

type NoteHandler struct {
	noteUsecase usecase.INoteUsecase
}

func NewNoteHandler(noteUsecase usecase.INoteUsecase) *NoteHandler {
	return &NoteHandler{noteUsecase: noteUsecase}
}

// List returns a video's notes, optionally filtered by a text search
// and an exact tag match.
func (h *NoteHandler) List(ctx *gin.Context) {
	notes, err := h.noteUsecase.List(ctx.Request.Context(), ctx.Param("videoId"), ctx.Query("search"), ctx.Query("tag"))
	if err != nil {
		respondStorageError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, notes)
}

func (h *NoteHandler) Create(ctx *gin.Context) {
	var req dto.NoteCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	note, err := h.noteUsecase.Create(ctx.Request.Context(), ctx.Param("videoId"), &req)
	if err != nil {
		respondStorageError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, note)
}

func (h *NoteHandler) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("noteId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Note id must be an integer."})
		return
	}

	var req dto.NoteUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	note, err := h.noteUsecase.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		respondStorageError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, note)
}

func (h *NoteHandler) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("noteId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Note id must be an integer."})
		return
	}

	if err := h.noteUsecase.Delete(ctx.Request.Context(), id); err != nil {
		respondStorageError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Note deleted."})
}
