package domain

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// PlaybackBaseURL short link a video id is appended to
	PlaybackBaseURL = "https://youtu.be/"
	// EmbedBaseURL player URL used by the page iframe
	EmbedBaseURL = "https://www.youtube.com/embed/"

	maxVideoIDLen = 16
)

var videoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Playback a playable video
type Playback struct {
	VideoID  string `json:"video_id"`
	URL      string `json:"url"`
	EmbedURL string `json:"embed_url"`
}

// ValidateVideoID trim and check a video id
func ValidateVideoID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("%w: video id is required", ErrInvalidVideoID)
	}
	if len(id) > maxVideoIDLen {
		return "", fmt.Errorf("%w: video id must be at most %d characters", ErrInvalidVideoID, maxVideoIDLen)
	}
	if !videoIDRe.MatchString(id) {
		return "", fmt.Errorf("%w: video id contains invalid characters", ErrInvalidVideoID)
	}
	return id, nil
}

// NewPlayback build the playback URLs for a video id
func NewPlayback(videoID string) (*Playback, error) {
	id, err := ValidateVideoID(videoID)
	if err != nil {
		return nil, err
	}
	return &Playback{
		VideoID:  id,
		URL:      PlaybackBaseURL + id,
		EmbedURL: EmbedBaseURL + id,
	}, nil
}
