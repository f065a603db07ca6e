package models

import (
	"encoding/json"
	"testing"
)

func TestInferMediaType(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://res.cloudinary.com/demo/video/upload/teaser.mp4", MediaTypeVideo},
		{"https://example.com/clip.WEBM", MediaTypeVideo},
		{"https://example.com/loop.ogg?v=2", MediaTypeVideo},
		{"https://example.com/brochure.pdf", MediaTypePDF},
		{"https://example.com/stage.jpg", MediaTypeImage},
		{"https://example.com/no-extension", MediaTypeImage},
		{"", MediaTypeImage},
	}

	for _, tc := range cases {
		if got := InferMediaType(tc.url); got != tc.want {
			t.Errorf("InferMediaType(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestMediaAssetUnmarshalLegacyString(t *testing.T) {
	var asset MediaAsset
	if err := json.Unmarshal([]byte(`"https://example.com/teaser.mp4"`), &asset); err != nil {
		t.Fatalf("unmarshal legacy string: %v", err)
	}

	if asset.URL != "https://example.com/teaser.mp4" {
		t.Errorf("unexpected url: %q", asset.URL)
	}
	if asset.Type != MediaTypeVideo {
		t.Errorf("type = %q, want %q", asset.Type, MediaTypeVideo)
	}
}

func TestMediaAssetUnmarshalObject(t *testing.T) {
	raw := `{"url":"https://example.com/stage.jpg","publicId":"espranza_uploads/stage","type":"image"}`

	var asset MediaAsset
	if err := json.Unmarshal([]byte(raw), &asset); err != nil {
		t.Fatalf("unmarshal object: %v", err)
	}

	if asset.URL != "https://example.com/stage.jpg" {
		t.Errorf("unexpected url: %q", asset.URL)
	}
	if asset.PublicID != "espranza_uploads/stage" {
		t.Errorf("unexpected publicId: %q", asset.PublicID)
	}
	if asset.Type != MediaTypeImage {
		t.Errorf("unexpected type: %q", asset.Type)
	}
}

func TestMediaAssetNormalizeFillsType(t *testing.T) {
	asset := MediaAsset{URL: "https://example.com/reel.webm"}
	asset.Normalize()
	if asset.Type != MediaTypeVideo {
		t.Errorf("type = %q, want %q", asset.Type, MediaTypeVideo)
	}

	typed := MediaAsset{URL: "https://example.com/reel.webm", Type: MediaTypePDF}
	typed.Normalize()
	if typed.Type != MediaTypePDF {
		t.Errorf("Normalize overwrote an existing type: %q", typed.Type)
	}
}
