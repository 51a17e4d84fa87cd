package dto

// NoteCreateRequest is the body for POST /videos/:videoId/notes.
type NoteCreateRequest struct {
	Title   *string  `json:"title"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

// NoteUpdateRequest is the body for PUT /notes/:noteId; nil fields are
// left untouched.
type NoteUpdateRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

// VideoMetadataUpdateRequest is the body for PUT /videos/:videoId/metadata.
type VideoMetadataUpdateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// CommentCreateRequest is the body for POST /videos/:videoId/comments.
// ParentID is a YouTube comment id; set it to post a reply.
type CommentCreateRequest struct {
	Text     string  `json:"text" binding:"required"`
	ParentID *string `json:"parent_id"`
}

// SuggestionRequest is the body for POST /videos/:videoId/suggestions.
type SuggestionRequest struct {
	Title string `json:"title"`
}

// SuggestionResponse always carries exactly three candidate titles.
type SuggestionResponse struct {
	Suggestions []string `json:"suggestions"`
}
