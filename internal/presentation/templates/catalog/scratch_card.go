package catalog

import (
	"html/template"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
)

var scratchCardTmpl = template.Must(template.New("t13").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.BrandName}} — {{.PopupTitle}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', Arial, sans-serif; background: linear-gradient(160deg, {{.Secondary}} 0%, {{.Primary}} 100%); color: #fff; min-height: 100vh; }
.pl-scratch-card { min-height: 100vh; display: flex; flex-direction: column; align-items: center; justify-content: center; padding: 40px 20px; }
.brand { font-weight: 800; letter-spacing: 3px; text-transform: uppercase; margin-bottom: 24px; color: {{.Accent}}; }
h1 { font-size: 2.3rem; text-align: center; margin-bottom: 10px; }
.sub { color: rgba(255,255,255,0.8); text-align: center; margin-bottom: 36px; max-width: 460px; }
.card { background: #fff; color: #1a1a2e; border-radius: 18px; padding: 26px; width: 100%; max-width: 380px; box-shadow: 0 18px 50px rgba(0,0,0,0.35); margin-bottom: 34px; }
.card .title { text-align: center; font-weight: 800; color: {{.Primary}}; letter-spacing: 1px; margin-bottom: 18px; }
.zones { display: grid; grid-template-columns: repeat(3, 1fr); gap: 10px; }
.zone { aspect-ratio: 1; border-radius: 10px; background: repeating-linear-gradient(45deg, #c0c0c0 0 8px, #a8a8a8 8px 16px); display: flex; align-items: center; justify-content: center; font-weight: 800; color: #787878; font-size: 0.7rem; letter-spacing: 1px; }
.zone.revealed { background: {{.Accent}}; color: #1a1a2e; font-size: 1rem; }
.prize { text-align: center; margin-top: 18px; font-weight: 800; color: {{.Secondary}}; }
.cta { background: {{.Accent}}; color: #1a1a2e; font-size: 1.25rem; font-weight: 800; padding: 17px 58px; border-radius: 34px; text-decoration: none; text-transform: uppercase; box-shadow: 0 10px 30px rgba(0,0,0,0.35); }
.small { margin-top: 22px; font-size: 0.75rem; color: rgba(255,255,255,0.5); }
</style>
</head>
<body>
<div class="pl-scratch-card">
  <div class="brand">{{.BrandName}}</div>
  <h1>{{.PopupTitle}}</h1>
  <p class="sub">{{.PopupMessage}}</p>
  <div class="card">
    <div class="title">SCRATCH &amp; WIN</div>
    <div class="zones">
      <div class="zone">SCRATCH</div>
      <div class="zone revealed">&#127873;</div>
      <div class="zone">SCRATCH</div>
      <div class="zone revealed">&#127873;</div>
      <div class="zone">SCRATCH</div>
      <div class="zone revealed">&#127873;</div>
    </div>
    <div class="prize">{{.PopupPrize}}</div>
  </div>
  <a class="cta" href="{{.CTAURL}}">{{.CTA}}</a>
  <p class="small">3 matching symbols win. 18+. Play responsibly.</p>
</div>
</body>
</html>
`))

// ScratchCard renders the t13 template: a 3x3 scratch grid with the popup
// prize revealed on matching zones.
func ScratchCard(brand *content.BrandConfig) (*content.RenderResult, error) {
	html, err := execute(scratchCardTmpl, normalize(brand))
	if err != nil {
		return nil, err
	}
	return &content.RenderResult{HTML: html, CSS: ""}, nil
}
