package domain

import (
	"context"
	"time"
)

// SectionAboutPage is the only section key in use; site copy is a
// singleton record.
const SectionAboutPage = "about_page"

// SiteContent holds free-form site copy keyed by section. Content carries
// the about-page fields (hero_title, mission_body, contact_email, social
// links, ...) as a flat string map.
type SiteContent struct {
	SectionKey    string            `json:"section_key"`
	Content       map[string]string `json:"content"`
	LastUpdatedBy *string           `json:"last_updated_by,omitempty"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type SiteContentRepository interface {
	GetBySectionKey(ctx context.Context, sectionKey string) (*SiteContent, error)
	Upsert(ctx context.Context, content *SiteContent) error
}

type SiteContentUsecase interface {
	// GetSection is public; a missing row returns an empty content map,
	// not an error, so the site renders with defaults.
	GetSection(ctx context.Context, sectionKey string) (*SiteContent, error)
	UpdateSection(ctx context.Context, userID string, content *SiteContent) error
}
