package media

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
)

// ExtractedPalette holds hex colors derived from a logo image.
type ExtractedPalette struct {
	Primary   string
	Secondary string
	Accent    string
}

// industryPalettes are the deterministic defaults used when no logo
// color can be extracted. Keys are matched by substring.
var industryPalettes = map[string]ExtractedPalette{
	"casino":        {Primary: "#b8860b", Secondary: "#1a1a2e", Accent: "#ffd700"},
	"gaming":        {Primary: "#7b2ff7", Secondary: "#16213e", Accent: "#00e5ff"},
	"entertainment": {Primary: "#e91e63", Secondary: "#212121", Accent: "#ffc107"},
	"sports":        {Primary: "#1b5e20", Secondary: "#0d1b0f", Accent: "#cddc39"},
	"finance":       {Primary: "#0d47a1", Secondary: "#102027", Accent: "#4fc3f7"},
}

// industryOrder fixes the match precedence so an industry string that
// contains several keys always resolves the same way.
var industryOrder = []string{"casino", "gaming", "entertainment", "sports", "finance"}

var defaultPalette = ExtractedPalette{Primary: "#4a90e2", Secondary: "#7b68ee", Accent: "#ffd700"}

// IndustryPalette returns the deterministic palette for an industry,
// matched case-insensitively by substring.
func IndustryPalette(industry string) ExtractedPalette {
	needle := strings.ToLower(industry)
	for _, key := range industryOrder {
		if strings.Contains(needle, key) {
			return industryPalettes[key]
		}
	}
	return defaultPalette
}

// ExtractPalette downscales the image and averages its opaque pixels
// into a primary color, deriving secondary and accent from it.
func ExtractPalette(raw []byte) (ExtractedPalette, error) {
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return ExtractedPalette{}, fmt.Errorf("failed to decode image for palette: %w", err)
	}

	// 32px is plenty for an average and keeps the scan cheap.
	small := imaging.Resize(img, 32, 0, imaging.Box)

	r, g, b, count := averageOpaque(small)
	if count == 0 {
		return ExtractedPalette{}, fmt.Errorf("image has no opaque pixels")
	}

	return ExtractedPalette{
		Primary:   fmt.Sprintf("#%02x%02x%02x", r, g, b),
		Secondary: fmt.Sprintf("#%02x%02x%02x", scale(r, 55), scale(g, 55), scale(b, 55)),
		Accent:    fmt.Sprintf("#%02x%02x%02x", lift(r, 60), lift(g, 60), lift(b, 60)),
	}, nil
}

func averageOpaque(img image.Image) (uint8, uint8, uint8, int) {
	bounds := img.Bounds()
	var sumR, sumG, sumB, count uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if a < 0x8000 {
				continue
			}
			sumR += uint64(r >> 8)
			sumG += uint64(g >> 8)
			sumB += uint64(b >> 8)
			count++
		}
	}
	if count == 0 {
		return 0, 0, 0, 0
	}
	return uint8(sumR / count), uint8(sumG / count), uint8(sumB / count), int(count)
}

// scale darkens a channel to pct percent of its value.
func scale(c uint8, pct int) uint8 {
	return uint8(int(c) * pct / 100)
}

// lift brightens a channel by amount, clamped at 255.
func lift(c uint8, amount int) uint8 {
	v := int(c) + amount
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
