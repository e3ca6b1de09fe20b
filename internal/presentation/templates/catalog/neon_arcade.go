package catalog

import (
	"html/template"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
)

var neonArcadeTmpl = template.Must(template.New("t5").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.BrandName}} — {{.Headline}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Courier New', monospace; background: #05030f; color: #fff; min-height: 100vh; overflow-x: hidden; }
.pl-neon-arcade { min-height: 100vh; display: flex; flex-direction: column; align-items: center; justify-content: center; text-align: center; padding: 40px 20px; background-image: repeating-linear-gradient(0deg, rgba(255,255,255,0.03) 0px, rgba(255,255,255,0.03) 1px, transparent 1px, transparent 40px), repeating-linear-gradient(90deg, rgba(255,255,255,0.03) 0px, rgba(255,255,255,0.03) 1px, transparent 1px, transparent 40px); }
.brand { font-size: 1rem; letter-spacing: 8px; text-transform: uppercase; color: {{.Secondary}}; text-shadow: 0 0 12px {{.Secondary}}; margin-bottom: 30px; }
h1 { font-size: 3.2rem; text-transform: uppercase; color: {{.Primary}}; text-shadow: 0 0 8px {{.Primary}}, 0 0 32px {{.Primary}}; margin-bottom: 18px; }
.sub { color: rgba(255,255,255,0.75); font-size: 1.1rem; margin-bottom: 48px; max-width: 520px; }
.cta { font-family: inherit; display: inline-block; background: transparent; color: {{.Accent}}; border: 3px solid {{.Accent}}; box-shadow: 0 0 16px {{.Accent}}, inset 0 0 16px rgba(255,215,0,0.2); font-size: 1.4rem; font-weight: 700; letter-spacing: 4px; padding: 18px 56px; text-decoration: none; text-transform: uppercase; }
.cta:hover { background: {{.Accent}}; color: #05030f; }
.insert-coin { margin-top: 40px; font-size: 0.85rem; letter-spacing: 4px; color: rgba(255,255,255,0.4); text-transform: uppercase; }
</style>
</head>
<body>
<div class="pl-neon-arcade">
  <div class="brand">{{.BrandName}}</div>
  <h1>{{.Headline}}</h1>
  <p class="sub">{{.Subheadline}}</p>
  <a class="cta" href="{{.CTAURL}}">{{.CTA}}</a>
  <p class="insert-coin">&#9654; Insert coin to continue</p>
</div>
</body>
</html>
`))

const neonArcadeCSS = `@keyframes neonFlicker {
  0%, 92%, 100% { opacity: 1; }
  93% { opacity: 0.6; }
  95% { opacity: 1; }
  97% { opacity: 0.75; }
}
.pl-neon-arcade h1 { animation: neonFlicker 3s linear infinite; }
@keyframes coinBlink {
  0%, 49% { visibility: visible; }
  50%, 100% { visibility: hidden; }
}
.pl-neon-arcade .insert-coin { animation: coinBlink 1.2s step-end infinite; }
`

// NeonArcade renders the t5 template: CRT-grid backdrop with flickering neon
// type. Flicker keyframes ship as supplemental CSS.
func NeonArcade(brand *content.BrandConfig) (*content.RenderResult, error) {
	html, err := execute(neonArcadeTmpl, normalize(brand))
	if err != nil {
		return nil, err
	}
	return &content.RenderResult{HTML: html, CSS: neonArcadeCSS}, nil
}
