// Package catalog holds the template renderers: pure functions mapping a
// brand configuration onto a complete standalone HTML document plus a
// separate CSS string. Renderers perform no I/O and consult no clock, so
// re-invoking one with the same brand yields byte-identical output.
package catalog

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
)

// Renderer-local literal defaults applied to unset optional fields.
const (
	defaultHeadline    = "YOUR TITLE HERE"
	defaultSubheadline = "Your journey starts right here, right now"
	defaultCTA         = "PLAY NOW"
	defaultCTAURL      = "#"
	defaultPrimary     = "#4a90e2"
	defaultSecondary   = "#7b68ee"
	defaultAccent      = "#ffd700"
	defaultBalance     = 1000
)

// Markers maps every template id to the distinctive root class its markup
// carries. The legacy remapper sniffs these to recover collapsed ids from
// stored HTML.
var Markers = map[string]string{
	"t1":  "pl-classic-hero",
	"t2":  "pl-dark-luxe",
	"t3":  "pl-fortune-wheel",
	"t4":  "pl-slot-machine",
	"t5":  "pl-neon-arcade",
	"t6":  "pl-minimal",
	"t7":  "pl-golden-jackpot",
	"t8":  "pl-bonus-popup",
	"t9":  "pl-mega-wheel",
	"t10": "pl-fruit-slots",
	"t11": "pl-vip-lounge",
	"t12": "pl-crash-rocket",
	"t13": "pl-scratch-card",
	"t14": "pl-live-casino",
	"t15": "pl-sportsbook",
}

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// view is the normalized data every renderer template executes against.
type view struct {
	BrandName   string
	LogoURL     string
	Headline    string
	Subheadline string
	CTA         string
	CTAURL      string
	Primary     string
	Secondary   string
	Accent      string

	PopupTitle   string
	PopupMessage string
	PopupPrize   string
	Balance      int
	WheelSlices  []string
}

// normalize applies the renderer-local defaults for unset optional fields
// and rejects non-hex color strings so a malformed palette can never leak
// into a style block.
func normalize(b *content.BrandConfig) view {
	v := view{
		BrandName:    b.BrandName,
		LogoURL:      b.LogoURL,
		Headline:     b.Copy.Headline,
		Subheadline:  b.Copy.Subheadline,
		CTA:          b.Copy.CTA,
		CTAURL:       b.CTAURL,
		Primary:      b.Colors.Primary,
		Secondary:    b.Colors.Secondary,
		Accent:       b.Colors.Accent,
		PopupTitle:   b.PopupTitle,
		PopupMessage: b.PopupMessage,
		PopupPrize:   b.PopupPrize,
		Balance:      b.GameBalance,
		WheelSlices:  splitWheelValues(b.WheelValues),
	}

	if v.BrandName == "" {
		v.BrandName = "Your Brand"
	}
	if v.Headline == "" {
		v.Headline = defaultHeadline
	}
	if v.Subheadline == "" {
		v.Subheadline = defaultSubheadline
	}
	if v.CTA == "" {
		v.CTA = defaultCTA
	}
	if v.CTAURL == "" {
		v.CTAURL = defaultCTAURL
	}
	if !hexColorRe.MatchString(v.Primary) {
		v.Primary = defaultPrimary
	}
	if !hexColorRe.MatchString(v.Secondary) {
		v.Secondary = defaultSecondary
	}
	if !hexColorRe.MatchString(v.Accent) {
		v.Accent = defaultAccent
	}
	if v.Balance <= 0 {
		v.Balance = defaultBalance
	}
	if v.PopupTitle == "" {
		v.PopupTitle = "CONGRATULATIONS!"
	}
	if v.PopupMessage == "" {
		v.PopupMessage = "You unlocked an exclusive welcome bonus."
	}
	if v.PopupPrize == "" {
		v.PopupPrize = "250 FREE SPINS"
	}
	return v
}

// splitWheelValues parses the comma-separated prize labels, trimming blanks.
// An empty input yields the stock eight-slice wheel.
func splitWheelValues(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{"100", "250", "LOSE", "500", "50", "JACKPOT", "150", "x2"}
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return []string{"100", "250", "LOSE", "500", "50", "JACKPOT", "150", "x2"}
	}
	return values
}

// execute runs a pre-parsed document template against the normalized view.
func execute(tmpl *template.Template, v view) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("execute template %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
