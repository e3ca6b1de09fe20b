package catalog

import (
	"html/template"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
)

// GoldenJackpot is the designated default renderer: every unknown template id
// and every fallback after a renderer failure lands here.
var goldenJackpotTmpl = template.Must(template.New("t7").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.BrandName}} — {{.Headline}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', Arial, sans-serif; background: radial-gradient(circle at 50% 20%, #2b2410 0%, #120f06 70%); color: #fff; min-height: 100vh; }
.pl-golden-jackpot { min-height: 100vh; display: flex; flex-direction: column; align-items: center; justify-content: center; text-align: center; padding: 48px 24px; }
.crown { font-size: 3rem; margin-bottom: 12px; }
.brand { font-size: 1.1rem; font-weight: 800; letter-spacing: 5px; text-transform: uppercase; color: {{.Accent}}; margin-bottom: 28px; }
.logo { max-height: 64px; margin-bottom: 24px; }
h1 { font-size: 3rem; font-weight: 900; background: linear-gradient(180deg, #fff6d8 0%, {{.Accent}} 55%, #a87b00 100%); -webkit-background-clip: text; background-clip: text; color: transparent; margin-bottom: 16px; }
.sub { font-size: 1.2rem; color: rgba(255,255,255,0.8); max-width: 540px; margin-bottom: 44px; }
.jackpot { display: flex; gap: 8px; justify-content: center; margin-bottom: 44px; }
.digit { background: #000; border: 2px solid {{.Accent}}; border-radius: 8px; font-size: 2.2rem; font-weight: 800; color: {{.Accent}}; padding: 8px 14px; font-family: 'Courier New', monospace; }
.cta { background: linear-gradient(180deg, {{.Accent}} 0%, #c89b00 100%); color: #120f06; font-size: 1.4rem; font-weight: 800; padding: 20px 72px; border-radius: 50px; text-decoration: none; text-transform: uppercase; letter-spacing: 1px; box-shadow: 0 12px 36px rgba(255,215,0,0.35); }
.cta:hover { filter: brightness(1.08); }
.trust { display: flex; gap: 24px; margin-top: 40px; font-size: 0.8rem; color: rgba(255,255,255,0.45); }
</style>
</head>
<body>
<div class="pl-golden-jackpot">
  <div class="crown">&#128081;</div>
  <div class="brand">{{.BrandName}}</div>
  {{if .LogoURL}}<img class="logo" src="{{.LogoURL}}" alt="{{.BrandName}}">{{end}}
  <h1>{{.Headline}}</h1>
  <p class="sub">{{.Subheadline}}</p>
  <div class="jackpot">
    <span class="digit">7</span><span class="digit">7</span><span class="digit">7</span>
  </div>
  <a class="cta" href="{{.CTAURL}}">{{.CTA}}</a>
  <div class="trust"><span>&#128274; SSL Secured</span><span>&#9889; Instant Payouts</span><span>18+ Play Responsibly</span></div>
</div>
</body>
</html>
`))

// GoldenJackpot renders the t7 template: gold-foil headline over a jackpot
// counter. This is the default template for unknown ids and render fallback.
func GoldenJackpot(brand *content.BrandConfig) (*content.RenderResult, error) {
	html, err := execute(goldenJackpotTmpl, normalize(brand))
	if err != nil {
		return nil, err
	}
	return &content.RenderResult{HTML: html, CSS: ""}, nil
}
