package models

import (
	"encoding/json"
	"strings"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
	MediaTypePDF   = "pdf"
)

// MediaAsset is the descriptor returned by the upload relay and embedded
// by content, events and team members. It has no lifecycle of its own.
type MediaAsset struct {
	URL      string `bson:"url" json:"url"`
	PublicID string `bson:"publicId,omitempty" json:"publicId,omitempty"`
	Type     string `bson:"type" json:"type"`
}

// UnmarshalJSON also accepts the legacy representation where an asset was
// a bare URL string, inferring the media type from the file suffix.
func (m *MediaAsset) UnmarshalJSON(data []byte) error {
	var legacy string
	if err := json.Unmarshal(data, &legacy); err == nil {
		m.URL = legacy
		m.PublicID = ""
		m.Type = InferMediaType(legacy)
		return nil
	}

	type alias MediaAsset
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*m = MediaAsset(a)
	return nil
}

// Normalize fills in the media type for assets saved before the type
// field existed.
func (m *MediaAsset) Normalize() {
	if m.Type == "" {
		m.Type = InferMediaType(m.URL)
	}
}

func InferMediaType(url string) string {
	u := strings.ToLower(url)
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	switch {
	case strings.HasSuffix(u, ".mp4"), strings.HasSuffix(u, ".webm"), strings.HasSuffix(u, ".ogg"):
		return MediaTypeVideo
	case strings.HasSuffix(u, ".pdf"):
		return MediaTypePDF
	default:
		return MediaTypeImage
	}
}
