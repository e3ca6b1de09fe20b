package services

import (
	"context"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
	"github.com/prelandr/prelandr-go/internal/infrastructure/media"
	"github.com/prelandr/prelandr-go/internal/infrastructure/observability/logging"
)

// PaletteService resolves the color palette for a site: explicit
// colors win, then logo extraction, then the industry default.
type PaletteService struct {
	logos  *media.LogoProcessor
	logger *logging.ChanneledLogger
}

// NewPaletteService creates a new palette service
func NewPaletteService(logos *media.LogoProcessor, logger *logging.ChanneledLogger) *PaletteService {
	return &PaletteService{logos: logos, logger: logger}
}

// Resolve returns the palette to render with. Logo extraction is a
// single attempt; any failure falls through to the industry default.
func (s *PaletteService) Resolve(ctx context.Context, preferred content.ColorPalette, logoURL, industry string) content.ColorPalette {
	if preferred.Primary != "" && preferred.Secondary != "" && preferred.Accent != "" {
		return preferred
	}

	if logoURL != "" {
		raw, err := s.logos.Fetch(ctx, logoURL)
		if err == nil {
			extracted, extractErr := media.ExtractPalette(raw)
			if extractErr == nil {
				return mergePalette(preferred, content.ColorPalette{
					Primary:   extracted.Primary,
					Secondary: extracted.Secondary,
					Accent:    extracted.Accent,
				})
			}
			err = extractErr
		}
		s.logger.Render().Debug("Logo palette extraction failed, using industry default",
			"logoUrl", logoURL, "error", err.Error())
	}

	fallback := media.IndustryPalette(industry)
	return mergePalette(preferred, content.ColorPalette{
		Primary:   fallback.Primary,
		Secondary: fallback.Secondary,
		Accent:    fallback.Accent,
	})
}

// mergePalette keeps any explicitly set colors and fills the gaps
// from the resolved palette.
func mergePalette(preferred, resolved content.ColorPalette) content.ColorPalette {
	out := resolved
	if preferred.Primary != "" {
		out.Primary = preferred.Primary
	}
	if preferred.Secondary != "" {
		out.Secondary = preferred.Secondary
	}
	if preferred.Accent != "" {
		out.Accent = preferred.Accent
	}
	return out
}
