package model

import "time"

// Session stores a full OAuth credential set server-side, keyed by the
// access token the frontend presents as its bearer token. The client
// library needs refresh_token, client_id, client_secret and the token
// endpoint to call the API, not just the access token alone.
type Session struct {
	ID            int64     `json:"id"`
	AccessToken   string    `json:"-"`
	RefreshToken  string    `json:"-"`
	TokenEndpoint string    `json:"-"`
	ClientID      string    `json:"-"`
	ClientSecret  string    `json:"-"`
	Scopes        []string  `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

// Note is a user-authored annotation attached to a remote video.
type Note struct {
	ID        int64      `json:"id"`
	VideoID   string     `json:"video_id"`
	Title     *string    `json:"title"`
	Content   string     `json:"content"`
	Tags      []string   `json:"tags"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// MirroredComment is the local record of a comment this service posted
// to YouTube. A row exists iff the remote insert is believed to have
// succeeded; the remote id is required for deletion later since YouTube
// only lets you delete your own comments.
type MirroredComment struct {
	ID              int64     `json:"id"`
	VideoID         string    `json:"video_id"`
	RemoteCommentID string    `json:"youtube_comment_id"`
	ParentRemoteID  *string   `json:"parent_youtube_id"`
	Text            string    `json:"text"`
	CreatedAt       time.Time `json:"created_at"`
}

// AuditEvent is an append-only record of a completed operation.
type AuditEvent struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

// Audit action tags. Written after the operation they describe has
// completed; ActionNeedsReconciliation marks a mirror write that failed
// after the remote call already succeeded.
const (
	ActionSessionCreated       = "session-created"
	ActionSessionRevoked       = "session-revoked"
	ActionVideosListed         = "videos-listed"
	ActionVideoFetched         = "video-fetched"
	ActionVideoMetadataUpdated = "video-metadata-updated"
	ActionCommentsFetched      = "comments-fetched"
	ActionCommentPosted        = "comment-posted"
	ActionCommentReplied       = "comment-replied"
	ActionCommentDeleted       = "comment-deleted"
	ActionNoteCreated          = "note-created"
	ActionNoteUpdated          = "note-updated"
	ActionNoteDeleted          = "note-deleted"
	ActionAISuggestions        = "ai-suggestions-generated"
	ActionNeedsReconciliation  = "needs-reconciliation"
)
