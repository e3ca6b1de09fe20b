// Package templates provides the authoritative renderer registry: one table
// mapping template ids to renderer functions, shared by every caller that
// (re)generates a site.
package templates

import (
	"fmt"
	"sort"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
	"github.com/prelandr/prelandr-go/internal/infrastructure/observability/logging"
	"github.com/prelandr/prelandr-go/internal/presentation/templates/catalog"
)

// DefaultTemplateID is the designated fallback renderer.
const DefaultTemplateID = "t7"

// RendererFunc maps a brand configuration onto a static HTML+CSS pair.
// Renderers are pure: no I/O, no clock, no randomness.
type RendererFunc func(brand *content.BrandConfig) (*content.RenderResult, error)

// Registry holds the single authoritative template table.
type Registry struct {
	renderers map[string]RendererFunc
	logger    *logging.ChanneledLogger
}

// NewRegistry builds the registry over the full template catalog.
func NewRegistry(logger *logging.ChanneledLogger) *Registry {
	return &Registry{
		logger: logger,
		renderers: map[string]RendererFunc{
			"t1":  catalog.ClassicHero,
			"t2":  catalog.DarkLuxe,
			"t3":  catalog.FortuneWheel,
			"t4":  catalog.SlotMachine,
			"t5":  catalog.NeonArcade,
			"t6":  catalog.Minimal,
			"t7":  catalog.GoldenJackpot,
			"t8":  catalog.BonusPopup,
			"t9":  catalog.MegaWheel,
			"t10": catalog.FruitSlots,
			"t11": catalog.VIPLounge,
			"t12": catalog.CrashRocket,
			"t13": catalog.ScratchCard,
			"t14": catalog.LiveCasino,
			"t15": catalog.Sportsbook,
		},
	}
}

// Override replaces one entry. Used by tests to inject failure doubles.
func (r *Registry) Override(templateID string, fn RendererFunc) {
	r.renderers[templateID] = fn
}

// IsValid reports whether id names a catalog template.
func (r *Registry) IsValid(templateID string) bool {
	_, ok := r.renderers[templateID]
	return ok
}

// TemplateIDs returns all catalog ids in stable order.
func (r *Registry) TemplateIDs() []string {
	ids := make([]string, 0, len(r.renderers))
	for id := range r.renderers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if len(ids[i]) != len(ids[j]) {
			return len(ids[i]) < len(ids[j])
		}
		return ids[i] < ids[j]
	})
	return ids
}

// Lookup resolves a template id to its renderer. Unknown ids resolve to the
// default renderer, never to nil.
func (r *Registry) Lookup(templateID string) RendererFunc {
	if fn, ok := r.renderers[templateID]; ok {
		return fn
	}
	return r.renderers[DefaultTemplateID]
}

// RenderWithFallback runs the selected renderer. On failure it logs the
// reason and retries once with the default renderer; if that also fails the
// operation surfaces content.ErrTemplateRender. Two levels, no backoff.
func (r *Registry) RenderWithFallback(templateID string, brand *content.BrandConfig) (*content.RenderResult, error) {
	result, err := r.renderSafely(r.Lookup(templateID), brand)
	if err == nil {
		return result, nil
	}

	if r.logger != nil {
		r.logger.Render().Warn("Renderer failed, retrying with default template",
			"templateId", templateID, "default", DefaultTemplateID, "error", err.Error())
	}

	result, err = r.renderSafely(r.renderers[DefaultTemplateID], brand)
	if err != nil {
		return nil, fmt.Errorf("%w: template %s and default %s both failed: %v",
			content.ErrTemplateRender, templateID, DefaultTemplateID, err)
	}
	return result, nil
}

// renderSafely converts a renderer panic into an error so a misbehaving
// template can never take down the request.
func (r *Registry) renderSafely(fn RendererFunc, brand *content.BrandConfig) (result *content.RenderResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = fmt.Errorf("renderer panic: %v", rec)
		}
	}()

	result, err = fn(brand)
	if err != nil {
		return nil, err
	}
	if result == nil || result.HTML == "" {
		return nil, fmt.Errorf("renderer produced empty output")
	}
	return result, nil
}
