// Package content defines the application's core domain entities: brand
// configuration, sites, rendered output, and download tokens.
package content

// ColorPalette holds the three brand colors consumed by every template.
type ColorPalette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// CopyBlock holds the marketing copy consumed by every template.
type CopyBlock struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	CTA         string `json:"cta"`
}

// BrandConfig is the normalized input for one render call. It is built per
// request, never mutated during a render, and never persisted as an object;
// only its fields are flattened into Site columns.
type BrandConfig struct {
	BrandName   string       `json:"brandName"`
	LogoURL     string       `json:"logoUrl,omitempty"`
	Colors      ColorPalette `json:"colors"`
	Copy        CopyBlock    `json:"copy"`
	Industry    string       `json:"industry,omitempty"`
	Description string       `json:"description,omitempty"`
	CTAURL      string       `json:"ctaUrl,omitempty"`

	// Per-template extension fields consumed by the game-flavored templates.
	PopupTitle   string `json:"popupTitle,omitempty"`
	PopupMessage string `json:"popupMessage,omitempty"`
	PopupPrize   string `json:"popupPrize,omitempty"`
	GameBalance  int    `json:"gameBalance,omitempty"`
	WheelValues  string `json:"wheelValues,omitempty"` // comma-separated prize labels
}

// RenderResult is the output of one template renderer: a complete standalone
// HTML document plus a separate CSS string (legitimately empty when all
// styling is inlined in a <style> block).
type RenderResult struct {
	HTML string `json:"html"`
	CSS  string `json:"css"`
}
