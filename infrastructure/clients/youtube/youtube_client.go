package youtube

import (
	"context"
	"fmt"
	"strings"
	"time"

	"yt-companion/domain/model"
	"yt-companion/domain/repository"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	defaultUploadsCap  = 20
	defaultCommentsCap = 50
)

// Factory materializes a YouTube client per stored session. Construction
// is purely local; credential problems surface at the first remote call.
type Factory struct{}

func NewFactory() *Factory { return &Factory{} }

func (f *Factory) ClientFor(ctx context.Context, session *model.Session) (repository.IYouTube, error) {
	oauthConfig := &oauth2.Config{
		ClientID:     session.ClientID,
		ClientSecret: session.ClientSecret,
		Scopes:       session.Scopes,
		Endpoint:     oauth2.Endpoint{TokenURL: session.TokenEndpoint},
	}

	token := &oauth2.Token{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		TokenType:    "Bearer",
	}
	if session.RefreshToken != "" {
		// Force a refresh on first use so a long-stored access token
		// never reaches the API expired. Sessions without a refresh
		// token keep the bare access token; once it expires the API
		// rejects it and the user must log in again.
		token.Expiry = time.Now().Add(-1 * time.Minute)
	}

	httpClient := oauthConfig.Client(ctx, token)
	service, err := youtube.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("creating YouTube service: %w", err)
	}
	return &Client{service: service}, nil
}

// Client implements repository.IYouTube against the YouTube Data API.
type Client struct {
	service *youtube.Service
}

// ListMyUploads lists the authenticated user's uploads. Three chained
// calls: channels.list resolves the uploads playlist, playlistItems.list
// pages its video ids, videos.list batch-fetches details for exactly
// those ids. search.list(forMine) would cost 100 quota units and omit
// statistics.
func (c *Client) ListMyUploads(ctx context.Context, maxResults int64) ([]model.YouTubeVideo, error) {
	if maxResults <= 0 {
		maxResults = defaultUploadsCap
	}

	chResp, err := c.service.Channels.List([]string{"contentDetails"}).Mine(true).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("resolving uploads playlist: %w", err)
	}
	if len(chResp.Items) == 0 {
		return []model.YouTubeVideo{}, nil
	}
	uploadsID := chResp.Items[0].ContentDetails.RelatedPlaylists.Uploads

	plResp, err := c.service.PlaylistItems.List([]string{"contentDetails"}).
		PlaylistId(uploadsID).
		MaxResults(maxResults).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("listing uploads playlist: %w", err)
	}

	var videoIDs []string
	for _, item := range plResp.Items {
		videoIDs = append(videoIDs, item.ContentDetails.VideoId)
	}
	if len(videoIDs) == 0 {
		return []model.YouTubeVideo{}, nil
	}

	vResp, err := c.service.Videos.List([]string{"snippet", "statistics"}).
		Id(strings.Join(videoIDs, ",")).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetching video details: %w", err)
	}

	videos := make([]model.YouTubeVideo, 0, len(vResp.Items))
	for _, v := range vResp.Items {
		videos = append(videos, convertVideo(v))
	}
	return videos, nil
}

func (c *Client) GetVideoDetails(ctx context.Context, videoID string) (*model.YouTubeVideo, error) {
	resp, err := c.service.Videos.List([]string{"snippet", "statistics"}).Id(videoID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetching video %s: %w", videoID, err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("video %s: %w", videoID, model.ErrNotFound)
	}
	video := convertVideo(resp.Items[0])
	return &video, nil
}

// UpdateVideoMetadata sends back the full existing snippet with only
// title and description replaced. videos.update clears any snippet field
// missing from the request body, so the merge always starts from a fresh
// fetch, never a stale local copy.
func (c *Client) UpdateVideoMetadata(ctx context.Context, videoID, title, description string) (*model.YouTubeVideo, error) {
	resp, err := c.service.Videos.List([]string{"snippet"}).Id(videoID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetching video %s before update: %w", videoID, err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("video %s: %w", videoID, model.ErrNotFound)
	}

	existing := resp.Items[0]
	applySnippetUpdate(existing, title, description)

	updated, err := c.service.Videos.Update([]string{"snippet"}, existing).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("updating video %s: %w", videoID, err)
	}
	video := convertVideo(updated)
	return &video, nil
}

func (c *Client) GetVideoComments(ctx context.Context, videoID string, maxResults int64) ([]model.YouTubeComment, error) {
	if maxResults <= 0 {
		maxResults = defaultCommentsCap
	}
	resp, err := c.service.CommentThreads.List([]string{"snippet", "replies"}).
		VideoId(videoID).
		MaxResults(maxResults).
		TextFormat("plainText").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetching comments for video %s: %w", videoID, err)
	}

	comments := make([]model.YouTubeComment, 0, len(resp.Items))
	for _, thread := range resp.Items {
		top := convertComment(thread.Snippet.TopLevelComment)
		top.VideoID = videoID
		top.ReplyCount = thread.Snippet.TotalReplyCount
		if thread.Replies != nil {
			for _, reply := range thread.Replies.Comments {
				r := convertComment(reply)
				r.VideoID = videoID
				r.ParentID = top.ID
				top.Replies = append(top.Replies, r)
			}
		}
		comments = append(comments, top)
	}
	return comments, nil
}

func (c *Client) InsertComment(ctx context.Context, videoID, text string) (string, error) {
	thread := &youtube.CommentThread{
		Snippet: &youtube.CommentThreadSnippet{
			VideoId: videoID,
			TopLevelComment: &youtube.Comment{
				Snippet: &youtube.CommentSnippet{TextOriginal: text},
			},
		},
	}
	resp, err := c.service.CommentThreads.Insert([]string{"snippet"}, thread).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("posting comment on video %s: %w", videoID, err)
	}
	return resp.Snippet.TopLevelComment.Id, nil
}

func (c *Client) InsertReply(ctx context.Context, parentID, text string) (string, error) {
	comment := &youtube.Comment{
		Snippet: &youtube.CommentSnippet{
			ParentId:     parentID,
			TextOriginal: text,
		},
	}
	resp, err := c.service.Comments.Insert([]string{"snippet"}, comment).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("replying to comment %s: %w", parentID, err)
	}
	return resp.Id, nil
}

func (c *Client) DeleteComment(ctx context.Context, remoteID string) error {
	if err := c.service.Comments.Delete(remoteID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("deleting comment %s: %w", remoteID, err)
	}
	return nil
}

// applySnippetUpdate mutates only title and description, leaving every
// other snippet field (tags, categoryId, language, ...) as fetched.
func applySnippetUpdate(video *youtube.Video, title, description string) {
	if video.Snippet == nil {
		video.Snippet = &youtube.VideoSnippet{}
	}
	video.Snippet.Title = title
	video.Snippet.Description = description
}

func convertVideo(video *youtube.Video) model.YouTubeVideo {
	publishedAt, _ := time.Parse(time.RFC3339, video.Snippet.PublishedAt)

	v := model.YouTubeVideo{
		ID:          video.Id,
		Title:       video.Snippet.Title,
		Description: video.Snippet.Description,
		PublishedAt: publishedAt,
		ChannelID:   video.Snippet.ChannelId,
		ChannelName: video.Snippet.ChannelTitle,
		Tags:        video.Snippet.Tags,
		Category:    video.Snippet.CategoryId,
	}
	if video.Statistics != nil {
		v.ViewCount = int64(video.Statistics.ViewCount)
		v.LikeCount = int64(video.Statistics.LikeCount)
		v.CommentCount = int64(video.Statistics.CommentCount)
	}
	if t := video.Snippet.Thumbnails; t != nil {
		if t.Default != nil {
			v.Thumbnails.Default.URL = t.Default.Url
			v.Thumbnails.Default.Width = int(t.Default.Width)
			v.Thumbnails.Default.Height = int(t.Default.Height)
		}
		if t.Medium != nil {
			v.Thumbnails.Medium.URL = t.Medium.Url
			v.Thumbnails.Medium.Width = int(t.Medium.Width)
			v.Thumbnails.Medium.Height = int(t.Medium.Height)
		}
		if t.High != nil {
			v.Thumbnails.High.URL = t.High.Url
			v.Thumbnails.High.Width = int(t.High.Width)
			v.Thumbnails.High.Height = int(t.High.Height)
		}
	}
	return v
}

func convertComment(comment *youtube.Comment) model.YouTubeComment {
	publishedAt, _ := time.Parse(time.RFC3339, comment.Snippet.PublishedAt)
	updatedAt, _ := time.Parse(time.RFC3339, comment.Snippet.UpdatedAt)

	out := model.YouTubeComment{
		ID:                comment.Id,
		AuthorDisplayName: comment.Snippet.AuthorDisplayName,
		Text:              comment.Snippet.TextDisplay,
		LikeCount:         comment.Snippet.LikeCount,
		PublishedAt:       publishedAt,
		UpdatedAt:         updatedAt,
	}
	if comment.Snippet.AuthorChannelId != nil {
		out.AuthorChannelID = comment.Snippet.AuthorChannelId.Value
	}
	return out
}
