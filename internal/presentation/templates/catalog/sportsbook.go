package catalog

import (
	"html/template"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
)

var sportsbookTmpl = template.Must(template.New("t15").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.BrandName}} — {{.Headline}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', Arial, sans-serif; background: #10141c; color: #fff; min-height: 100vh; }
.pl-sportsbook { min-height: 100vh; display: flex; flex-direction: column; }
.header { display: flex; justify-content: space-between; align-items: center; padding: 16px 32px; background: {{.Primary}}; }
.header .brand { font-weight: 800; letter-spacing: 2px; text-transform: uppercase; }
.header .odds-pill { background: rgba(0,0,0,0.25); border-radius: 16px; padding: 6px 14px; font-size: 0.8rem; font-weight: 700; }
.hero { text-align: center; padding: 56px 24px 36px; }
h1 { font-size: 2.7rem; font-weight: 900; margin-bottom: 12px; }
.sub { color: rgba(255,255,255,0.7); max-width: 520px; margin: 0 auto 30px; }
.cta { display: inline-block; background: {{.Accent}}; color: #10141c; font-size: 1.2rem; font-weight: 800; padding: 16px 54px; border-radius: 8px; text-decoration: none; text-transform: uppercase; }
.matches { max-width: 640px; width: 100%; margin: 24px auto 48px; padding: 0 20px; }
.match { display: flex; justify-content: space-between; align-items: center; background: #1a2130; border-radius: 10px; padding: 16px 20px; margin-bottom: 12px; border-left: 4px solid {{.Secondary}}; }
.match .teams { font-weight: 600; }
.match .time { font-size: 0.75rem; color: rgba(255,255,255,0.5); margin-top: 4px; }
.odds { display: flex; gap: 8px; }
.odd { background: #242e42; border-radius: 6px; padding: 8px 14px; font-weight: 700; font-size: 0.9rem; color: {{.Accent}}; min-width: 58px; text-align: center; }
.odd span { display: block; font-size: 0.65rem; font-weight: 400; color: rgba(255,255,255,0.45); }
.foot { text-align: center; padding: 16px; font-size: 0.75rem; color: rgba(255,255,255,0.35); }
</style>
</head>
<body>
<div class="pl-sportsbook">
  <header class="header">
    <span class="brand">{{.BrandName}}</span>
    <span class="odds-pill">BOOSTED ODDS</span>
  </header>
  <section class="hero">
    <h1>{{.Headline}}</h1>
    <p class="sub">{{.Subheadline}}</p>
    <a class="cta" href="{{.CTAURL}}">{{.CTA}}</a>
  </section>
  <section class="matches">
    <div class="match">
      <div><div class="teams">Lions vs Sharks</div><div class="time">Today 19:45</div></div>
      <div class="odds"><div class="odd">2.10<span>1</span></div><div class="odd">3.40<span>X</span></div><div class="odd">3.05<span>2</span></div></div>
    </div>
    <div class="match">
      <div><div class="teams">Eagles vs Wolves</div><div class="time">Today 21:00</div></div>
      <div class="odds"><div class="odd">1.65<span>1</span></div><div class="odd">3.90<span>X</span></div><div class="odd">4.80<span>2</span></div></div>
    </div>
    <div class="match">
      <div><div class="teams">Titans vs Comets</div><div class="time">Tomorrow 18:30</div></div>
      <div class="odds"><div class="odd">2.85<span>1</span></div><div class="odd">3.10<span>X</span></div><div class="odd">2.45<span>2</span></div></div>
    </div>
  </section>
  <footer class="foot">{{.BrandName}} &middot; Odds are illustrative &middot; 18+ &middot; Play responsibly</footer>
</div>
</body>
</html>
`))

// Sportsbook renders the t15 template: a boosted-odds match list under the
// hero banner. Fixture rows are illustrative placeholders, kept static so
// render output stays deterministic.
func Sportsbook(brand *content.BrandConfig) (*content.RenderResult, error) {
	html, err := execute(sportsbookTmpl, normalize(brand))
	if err != nil {
		return nil, err
	}
	return &content.RenderResult{HTML: html, CSS: ""}, nil
}
