package services

import (
	"context"
	"fmt"

	"github.com/espranza/server/internal/models"
)

type ContentService struct {
	contentRepo models.ContentRepo
}

func NewContentService(contentRepo models.ContentRepo) *ContentService {
	return &ContentService{
		contentRepo: contentRepo,
	}
}

func (cs *ContentService) GetContent(ctx context.Context) (*models.Content, error) {
	return cs.contentRepo.GetContent(ctx)
}

func (cs *ContentService) ReplaceContent(ctx context.Context, content *models.Content) error {
	if content == nil {
		return fmt.Errorf("content is required")
	}

	NormalizeContent(content)
	return cs.contentRepo.ReplaceContent(ctx, content)
}

// NormalizeContent applies the defaults and legacy-media fixups the admin
// panel relied on the old backend for: bare URL strings already became
// MediaAssets at decode time, but assets saved without a type still need
// one inferred, and isTicketPassEnabled defaults to true when omitted.
func NormalizeContent(c *models.Content) {
	if c.HeroBackgroundMedia != nil {
		c.HeroBackgroundMedia.Normalize()
	}
	for i := range c.GalleryImages {
		c.GalleryImages[i].Normalize()
	}
	if c.GalleryImages == nil {
		c.GalleryImages = []models.MediaAsset{}
	}
	if c.FAQs == nil {
		c.FAQs = []models.FAQ{}
	}
	if c.IsTicketPassEnabled == nil {
		enabled := true
		c.IsTicketPassEnabled = &enabled
	}
}
