package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/espranza/server/internal/models"
)

type fakeContentRepo struct {
	stored *models.Content
}

func (f *fakeContentRepo) GetContent(ctx context.Context) (*models.Content, error) {
	return f.stored, nil
}

func (f *fakeContentRepo) ReplaceContent(ctx context.Context, content *models.Content) error {
	c := *content
	f.stored = &c
	return nil
}

func TestReplaceContentNormalizesLegacyGalleryEntries(t *testing.T) {
	// A legacy payload where gallery entries and the hero background are
	// bare URL strings instead of media asset objects.
	raw := `{
		"heroTitle": "ESPRANZA",
		"heroBackgroundMedia": "https://example.com/hero.webm",
		"galleryImages": ["https://example.com/teaser.mp4", "https://example.com/stage.jpg"]
	}`

	var content models.Content
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		t.Fatalf("decode content payload: %v", err)
	}

	repo := &fakeContentRepo{}
	svc := NewContentService(repo)
	if err := svc.ReplaceContent(context.Background(), &content); err != nil {
		t.Fatalf("ReplaceContent: %v", err)
	}

	got, err := svc.GetContent(context.Background())
	if err != nil {
		t.Fatalf("GetContent: %v", err)
	}
	if got == nil {
		t.Fatal("content missing after replace")
	}

	if got.HeroBackgroundMedia == nil || got.HeroBackgroundMedia.Type != models.MediaTypeVideo {
		t.Errorf("hero background not normalized: %+v", got.HeroBackgroundMedia)
	}
	if len(got.GalleryImages) != 2 {
		t.Fatalf("gallery has %d entries, want 2", len(got.GalleryImages))
	}
	if got.GalleryImages[0].URL != "https://example.com/teaser.mp4" || got.GalleryImages[0].Type != models.MediaTypeVideo {
		t.Errorf("mp4 entry not normalized to video: %+v", got.GalleryImages[0])
	}
	if got.GalleryImages[1].Type != models.MediaTypeImage {
		t.Errorf("jpg entry not normalized to image: %+v", got.GalleryImages[1])
	}
}

func TestReplaceContentDefaults(t *testing.T) {
	repo := &fakeContentRepo{}
	svc := NewContentService(repo)

	content := &models.Content{HeroTitle: "ESPRANZA"}
	if err := svc.ReplaceContent(context.Background(), content); err != nil {
		t.Fatalf("ReplaceContent: %v", err)
	}

	if repo.stored.IsTicketPassEnabled == nil || !*repo.stored.IsTicketPassEnabled {
		t.Error("isTicketPassEnabled should default to true")
	}
	if repo.stored.GalleryImages == nil {
		t.Error("galleryImages should default to an empty slice")
	}
	if repo.stored.FAQs == nil {
		t.Error("faqs should default to an empty slice")
	}

	if err := svc.ReplaceContent(context.Background(), nil); err == nil {
		t.Error("nil content accepted")
	}
}

func TestReplaceContentKeepsExplicitTicketPassFlag(t *testing.T) {
	repo := &fakeContentRepo{}
	svc := NewContentService(repo)

	disabled := false
	content := &models.Content{IsTicketPassEnabled: &disabled}
	if err := svc.ReplaceContent(context.Background(), content); err != nil {
		t.Fatalf("ReplaceContent: %v", err)
	}

	if repo.stored.IsTicketPassEnabled == nil || *repo.stored.IsTicketPassEnabled {
		t.Error("explicit false was overridden by the default")
	}
}
