package model

import "time"

// YouTubeVideo represents a YouTube video as returned by the remote
// platform (snippet + statistics).
type YouTubeVideo struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	PublishedAt  time.Time `json:"published_at"`
	ChannelID    string    `json:"channel_id"`
	ChannelName  string    `json:"channel_name"`
	ViewCount    int64     `json:"view_count"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
	Thumbnails   struct {
		Default struct {
			URL    string `json:"url"`
			Width  int    `json:"width"`
			Height int    `json:"height"`
		} `json:"default"`
		Medium struct {
			URL    string `json:"url"`
			Width  int    `json:"width"`
			Height int    `json:"height"`
		} `json:"medium"`
		High struct {
			URL    string `json:"url"`
			Width  int    `json:"width"`
			Height int    `json:"height"`
		} `json:"high"`
	} `json:"thumbnails"`
	Tags     []string `json:"tags"`
	Category string   `json:"category"`
}

// YouTubeComment represents a remote comment; top-level comments carry
// their replies nested.
type YouTubeComment struct {
	ID                string           `json:"id"`
	VideoID           string           `json:"video_id"`
	AuthorDisplayName string           `json:"author_display_name"`
	AuthorChannelID   string           `json:"author_channel_id"`
	Text              string           `json:"text"`
	LikeCount         int64            `json:"like_count"`
	PublishedAt       time.Time        `json:"published_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	ParentID          string           `json:"parent_id,omitempty"`
	ReplyCount        int64            `json:"reply_count"`
	Replies           []YouTubeComment `json:"replies,omitempty"`
}
