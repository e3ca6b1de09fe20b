package catalog

import (
	"html/template"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
)

var fruitSlotsTmpl = template.Must(template.New("t10").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.BrandName}} — {{.Headline}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Comic Sans MS', 'Segoe UI', cursive, sans-serif; background: linear-gradient(180deg, #87ceeb 0%, #e0f6ff 60%, #98e698 100%); color: #2d3a2d; min-height: 100vh; }
.pl-fruit-slots { display: flex; flex-direction: column; align-items: center; padding: 36px 20px; }
.brand { background: #fff; border-radius: 24px; padding: 8px 24px; font-weight: 700; color: {{.Primary}}; box-shadow: 0 4px 12px rgba(0,0,0,0.12); margin-bottom: 26px; }
h1 { font-size: 2.5rem; color: #2d6a2d; text-shadow: 2px 2px 0 #fff; text-align: center; margin-bottom: 10px; }
.sub { text-align: center; color: #4a5a4a; margin-bottom: 30px; max-width: 460px; }
.board { background: #fff; border: 6px solid {{.Accent}}; border-radius: 28px; padding: 24px; box-shadow: 0 14px 36px rgba(0,0,0,0.18); margin-bottom: 30px; }
.row { display: flex; gap: 12px; margin-bottom: 12px; }
.row:last-child { margin-bottom: 0; }
.cell { width: 74px; height: 74px; background: #fef9e7; border: 2px solid {{.Secondary}}; border-radius: 14px; display: flex; align-items: center; justify-content: center; font-size: 2.4rem; }
.coins { font-weight: 700; color: #7a5c00; background: {{.Accent}}; border-radius: 18px; padding: 6px 20px; margin-bottom: 26px; }
.cta { background: {{.Primary}}; color: #fff; font-size: 1.25rem; font-weight: 700; padding: 16px 54px; border-radius: 30px; text-decoration: none; box-shadow: 0 8px 0 rgba(0,0,0,0.15); }
.cta:active { transform: translateY(4px); box-shadow: 0 4px 0 rgba(0,0,0,0.15); }
.small { margin-top: 22px; font-size: 0.75rem; color: #6a7a6a; }
</style>
</head>
<body>
<div class="pl-fruit-slots">
  <div class="brand">{{.BrandName}}</div>
  <h1>{{.Headline}}</h1>
  <p class="sub">{{.Subheadline}}</p>
  <div class="board">
    <div class="row"><div class="cell">&#127815;</div><div class="cell">&#127820;</div><div class="cell">&#127817;</div></div>
    <div class="row"><div class="cell">&#127826;</div><div class="cell">&#127826;</div><div class="cell">&#127826;</div></div>
    <div class="row"><div class="cell">&#127818;</div><div class="cell">&#127815;</div><div class="cell">&#127820;</div></div>
  </div>
  <div class="coins">&#129689; {{.Balance}} free coins waiting</div>
  <a class="cta" href="{{.CTAURL}}">{{.CTA}}</a>
  <p class="small">Fun-first fruit slots. 18+. Play responsibly.</p>
</div>
</body>
</html>
`))

// FruitSlots renders the t10 template: a cheerful 3x3 fruit board with the
// configured coin balance.
func FruitSlots(brand *content.BrandConfig) (*content.RenderResult, error) {
	html, err := execute(fruitSlotsTmpl, normalize(brand))
	if err != nil {
		return nil, err
	}
	return &content.RenderResult{HTML: html, CSS: ""}, nil
}
