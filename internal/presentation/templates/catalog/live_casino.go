package catalog

import (
	"html/template"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
)

var liveCasinoTmpl = template.Must(template.New("t14").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.BrandName}} Live — {{.Headline}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', Arial, sans-serif; background: #0e1410; color: #fff; min-height: 100vh; }
.pl-live-casino { min-height: 100vh; display: flex; flex-direction: column; }
.nav { display: flex; justify-content: space-between; align-items: center; padding: 18px 36px; background: rgba(0,0,0,0.4); }
.nav .brand { font-weight: 800; letter-spacing: 3px; text-transform: uppercase; color: {{.Accent}}; }
.live { display: flex; align-items: center; gap: 8px; font-size: 0.8rem; font-weight: 700; color: #ff4d4d; text-transform: uppercase; }
.dot { width: 9px; height: 9px; border-radius: 50%; background: #ff4d4d; }
.hero { flex: 1; display: flex; flex-direction: column; align-items: center; justify-content: center; text-align: center; padding: 52px 24px; background: radial-gradient(ellipse at center, rgba(14,80,40,0.55) 0%, transparent 65%); }
h1 { font-size: 2.9rem; font-weight: 900; margin-bottom: 14px; }
.sub { color: rgba(255,255,255,0.72); max-width: 520px; margin-bottom: 40px; font-size: 1.1rem; }
.table { width: 300px; height: 150px; background: radial-gradient(ellipse at center, #1d7a46 0%, #10502c 80%); border: 10px solid #5a3a1a; border-radius: 150px 150px 0 0; margin-bottom: 40px; position: relative; }
.cards { position: absolute; top: 40px; left: 50%; transform: translateX(-50%); display: flex; gap: 8px; }
.pcard { width: 44px; height: 62px; background: #fff; border-radius: 6px; display: flex; align-items: center; justify-content: center; font-size: 1.4rem; color: #c0392b; box-shadow: 0 4px 10px rgba(0,0,0,0.4); }
.pcard.black { color: #1a1a2e; }
.cta { background: {{.Primary}}; color: #fff; font-size: 1.3rem; font-weight: 800; padding: 18px 62px; border-radius: 12px; text-decoration: none; text-transform: uppercase; box-shadow: 0 12px 34px rgba(0,0,0,0.5); }
.cta:hover { filter: brightness(1.1); }
.strip { display: flex; justify-content: center; gap: 36px; padding: 22px; background: rgba(0,0,0,0.45); font-size: 0.85rem; color: rgba(255,255,255,0.6); flex-wrap: wrap; }
.strip b { color: {{.Accent}}; }
</style>
</head>
<body>
<div class="pl-live-casino">
  <nav class="nav">
    <span class="brand">{{.BrandName}}</span>
    <span class="live"><span class="dot"></span> Live Now</span>
  </nav>
  <section class="hero">
    <h1>{{.Headline}}</h1>
    <p class="sub">{{.Subheadline}}</p>
    <div class="table">
      <div class="cards">
        <div class="pcard">A&#9829;</div>
        <div class="pcard black">K&#9824;</div>
      </div>
    </div>
    <a class="cta" href="{{.CTAURL}}">{{.CTA}}</a>
  </section>
  <div class="strip">
    <span><b>200+</b> live tables</span>
    <span><b>24/7</b> real dealers</span>
    <span><b>HD</b> streams</span>
    <span>18+ Play responsibly</span>
  </div>
</div>
</body>
</html>
`))

// LiveCasino renders the t14 template: a live-dealer table page with a
// blackjack felt centerpiece.
func LiveCasino(brand *content.BrandConfig) (*content.RenderResult, error) {
	html, err := execute(liveCasinoTmpl, normalize(brand))
	if err != nil {
		return nil, err
	}
	return &content.RenderResult{HTML: html, CSS: ""}, nil
}
