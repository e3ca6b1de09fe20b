package content

import (
	"errors"
	"time"
)

// Site statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Sentinel errors translated to HTTP status codes by the handlers.
var (
	// ErrNotFound covers both missing rows and ownership misses; the two are
	// deliberately indistinguishable to callers.
	ErrNotFound = errors.New("site not found")

	// ErrTemplateRender means both the selected renderer and the default
	// renderer failed for the same brand input.
	ErrTemplateRender = errors.New("template render failed")
)

// Site is a persisted landing page keyed by a unique slug. Brand fields are
// flattened into individual columns; generated output is stored alongside.
type Site struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	TemplateID  string `json:"templateId"`
	BrandName   string `json:"brandName"`
	LogoURL     string `json:"logoUrl,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Description string `json:"description,omitempty"`
	CTAURL      string `json:"ctaUrl,omitempty"`

	ColorPrimary   string `json:"colorPrimary"`
	ColorSecondary string `json:"colorSecondary"`
	ColorAccent    string `json:"colorAccent"`

	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	CTA         string `json:"cta"`

	PopupTitle   string `json:"popupTitle,omitempty"`
	PopupMessage string `json:"popupMessage,omitempty"`
	PopupPrize   string `json:"popupPrize,omitempty"`
	GameBalance  int    `json:"gameBalance,omitempty"`
	WheelValues  string `json:"wheelValues,omitempty"`

	GeneratedHTML string `json:"-"`
	GeneratedCSS  string `json:"-"`

	Status    string    `json:"status"`
	AccountID string    `json:"-"`
	OrgID     string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BrandConfig rebuilds the renderer input from the flattened columns.
func (s *Site) BrandConfig() *BrandConfig {
	return &BrandConfig{
		BrandName:   s.BrandName,
		LogoURL:     s.LogoURL,
		Industry:    s.Industry,
		Description: s.Description,
		CTAURL:      s.CTAURL,
		Colors: ColorPalette{
			Primary:   s.ColorPrimary,
			Secondary: s.ColorSecondary,
			Accent:    s.ColorAccent,
		},
		Copy: CopyBlock{
			Headline:    s.Headline,
			Subheadline: s.Subheadline,
			CTA:         s.CTA,
		},
		PopupTitle:   s.PopupTitle,
		PopupMessage: s.PopupMessage,
		PopupPrize:   s.PopupPrize,
		GameBalance:  s.GameBalance,
		WheelValues:  s.WheelValues,
	}
}

// ApplyBrand flattens a BrandConfig back into the site columns.
func (s *Site) ApplyBrand(b *BrandConfig) {
	s.BrandName = b.BrandName
	s.LogoURL = b.LogoURL
	s.Industry = b.Industry
	s.Description = b.Description
	s.CTAURL = b.CTAURL
	s.ColorPrimary = b.Colors.Primary
	s.ColorSecondary = b.Colors.Secondary
	s.ColorAccent = b.Colors.Accent
	s.Headline = b.Copy.Headline
	s.Subheadline = b.Copy.Subheadline
	s.CTA = b.Copy.CTA
	s.PopupTitle = b.PopupTitle
	s.PopupMessage = b.PopupMessage
	s.PopupPrize = b.PopupPrize
	s.GameBalance = b.GameBalance
	s.WheelValues = b.WheelValues
}
