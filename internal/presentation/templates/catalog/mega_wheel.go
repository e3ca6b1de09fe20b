package catalog

import (
	"html/template"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
)

var megaWheelTmpl = template.Must(template.New("t9").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.BrandName}} — {{.Headline}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', Arial, sans-serif; background: #07031a; color: #fff; min-height: 100vh; }
.pl-mega-wheel { min-height: 100vh; display: grid; grid-template-columns: 1fr 1fr; align-items: center; gap: 32px; padding: 48px; max-width: 1100px; margin: 0 auto; }
.left .brand { font-size: 1rem; font-weight: 800; letter-spacing: 4px; text-transform: uppercase; color: {{.Accent}}; margin-bottom: 20px; }
.left h1 { font-size: 3.4rem; font-weight: 900; line-height: 1.08; margin-bottom: 18px; background: linear-gradient(90deg, {{.Primary}}, {{.Secondary}}); -webkit-background-clip: text; background-clip: text; color: transparent; }
.left .sub { font-size: 1.15rem; color: rgba(255,255,255,0.7); margin-bottom: 36px; max-width: 420px; }
.cta { display: inline-block; background: linear-gradient(90deg, {{.Primary}}, {{.Secondary}}); color: #fff; font-size: 1.25rem; font-weight: 800; padding: 18px 56px; border-radius: 14px; text-decoration: none; text-transform: uppercase; box-shadow: 0 12px 40px rgba(123,104,238,0.45); }
.perks { margin-top: 32px; list-style: none; color: rgba(255,255,255,0.65); font-size: 0.95rem; }
.perks li { margin-bottom: 8px; }
.perks li::before { content: '\2713  '; color: {{.Accent}}; font-weight: 800; }
.right { display: flex; align-items: center; justify-content: center; }
.wheel { width: 380px; height: 380px; border-radius: 50%; border: 14px solid {{.Accent}}; background: conic-gradient({{.Primary}} 0deg 60deg, {{.Secondary}} 60deg 120deg, {{.Primary}} 120deg 180deg, {{.Secondary}} 180deg 240deg, {{.Primary}} 240deg 300deg, {{.Secondary}} 300deg 360deg); position: relative; box-shadow: 0 0 90px rgba(123,104,238,0.5); }
.hub { position: absolute; inset: 0; margin: auto; width: 110px; height: 110px; border-radius: 50%; background: {{.Accent}}; color: #07031a; display: flex; align-items: center; justify-content: center; font-weight: 900; font-size: 1.1rem; }
.tags { position: absolute; bottom: -18px; left: 50%; transform: translateX(-50%); display: flex; gap: 8px; }
.tags span { background: rgba(255,255,255,0.12); border: 1px solid {{.Accent}}; border-radius: 14px; padding: 4px 12px; font-size: 0.75rem; font-weight: 700; white-space: nowrap; }
@media (max-width: 860px) { .pl-mega-wheel { grid-template-columns: 1fr; text-align: center; } .left .sub { margin-left: auto; margin-right: auto; } .right { margin-top: 24px; } }
</style>
</head>
<body>
<div class="pl-mega-wheel">
  <div class="left">
    <div class="brand">{{.BrandName}}</div>
    <h1>{{.Headline}}</h1>
    <p class="sub">{{.Subheadline}}</p>
    <a class="cta" href="{{.CTAURL}}">{{.CTA}}</a>
    <ul class="perks">
      <li>Guaranteed prize on your first spin</li>
      <li>{{.Balance}} bonus coins on signup</li>
      <li>No deposit required to play</li>
    </ul>
  </div>
  <div class="right">
    <div class="wheel">
      <div class="hub">MEGA</div>
      <div class="tags">{{range .WheelSlices}}<span>{{.}}</span>{{end}}</div>
    </div>
  </div>
</div>
</body>
</html>
`))

const megaWheelCSS = `@keyframes megaSpin {
  from { transform: rotate(0deg); }
  to { transform: rotate(360deg); }
}
.pl-mega-wheel .wheel { animation: megaSpin 24s linear infinite; }
.pl-mega-wheel .hub, .pl-mega-wheel .tags { animation: megaSpin 24s linear infinite reverse; }
`

// MegaWheel renders the t9 template: a split layout with an oversized prize
// wheel. Slow-spin keyframes ship as supplemental CSS.
func MegaWheel(brand *content.BrandConfig) (*content.RenderResult, error) {
	html, err := execute(megaWheelTmpl, normalize(brand))
	if err != nil {
		return nil, err
	}
	return &content.RenderResult{HTML: html, CSS: megaWheelCSS}, nil
}
