package models

import (
	"context"
)

const (
	ContentColName = "content"

	// ContentID is the fixed key for the site content singleton. Keying
	// the document makes "at most one" a property of the storage layer
	// instead of a convention.
	ContentID = "site-content"
)

type TicketPrices struct {
	Diamond float64 `bson:"diamond" json:"diamond"`
	Gold    float64 `bson:"gold" json:"gold"`
	Silver  float64 `bson:"silver" json:"silver"`
}

type FAQ struct {
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`
}

type Content struct {
	ID                  string       `bson:"_id,omitempty" json:"-"`
	HeroTitle           string       `bson:"heroTitle" json:"heroTitle"`
	HeroSubtitle        string       `bson:"heroSubtitle" json:"heroSubtitle"`
	HeroBackgroundMedia *MediaAsset  `bson:"heroBackgroundMedia,omitempty" json:"heroBackgroundMedia"`
	MarqueeText         string       `bson:"marqueeText" json:"marqueeText"`
	EventDate           string       `bson:"eventDate" json:"eventDate"`
	TicketPrices        TicketPrices `bson:"ticketPrices" json:"ticketPrices"`
	UpiID               string       `bson:"upiId" json:"upiId"`
	QRCodeURL           string       `bson:"qrCodeUrl" json:"qrCodeUrl"`
	GalleryImages       []MediaAsset `bson:"galleryImages" json:"galleryImages"`
	FAQs                []FAQ        `bson:"faqs" json:"faqs"`
	IsTicketPassEnabled *bool        `bson:"isTicketPassEnabled" json:"isTicketPassEnabled"`
}

type ContentRepo interface {
	GetContent(ctx context.Context) (*Content, error)
	ReplaceContent(ctx context.Context, content *Content) error
}
