package catalog

import (
	"html/template"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
)

var fortuneWheelTmpl = template.Must(template.New("t3").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.BrandName}} — Spin the Wheel</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', Arial, sans-serif; background: linear-gradient(180deg, {{.Secondary}} 0%, #14102a 100%); color: #fff; min-height: 100vh; }
.pl-fortune-wheel { display: flex; flex-direction: column; align-items: center; padding: 40px 20px; }
.brand { font-size: 1.4rem; font-weight: 800; letter-spacing: 2px; text-transform: uppercase; color: {{.Accent}}; }
h1 { font-size: 2.4rem; text-align: center; margin: 20px 0 8px; }
.sub { color: rgba(255,255,255,0.75); text-align: center; margin-bottom: 36px; }
.wheel-wrap { position: relative; width: 320px; height: 320px; margin-bottom: 36px; }
.pointer { position: absolute; top: -14px; left: 50%; transform: translateX(-50%); width: 0; height: 0; border-left: 14px solid transparent; border-right: 14px solid transparent; border-top: 24px solid {{.Accent}}; z-index: 2; }
.wheel { width: 100%; height: 100%; border-radius: 50%; border: 10px solid {{.Accent}}; background: conic-gradient({{.Primary}} 0deg 90deg, {{.Secondary}} 90deg 180deg, {{.Primary}} 180deg 270deg, {{.Secondary}} 270deg 360deg); display: flex; align-items: center; justify-content: center; box-shadow: 0 0 60px rgba(0,0,0,0.5); }
.hub { width: 84px; height: 84px; border-radius: 50%; background: {{.Accent}}; color: #14102a; display: flex; align-items: center; justify-content: center; font-weight: 800; font-size: 0.9rem; text-align: center; }
.slices { list-style: none; display: flex; flex-wrap: wrap; justify-content: center; gap: 10px; margin-bottom: 36px; max-width: 480px; }
.slices li { background: rgba(255,255,255,0.1); border: 1px solid {{.Accent}}; border-radius: 18px; padding: 6px 16px; font-size: 0.85rem; font-weight: 600; }
.cta { background: {{.Accent}}; color: #14102a; font-size: 1.3rem; font-weight: 800; padding: 18px 64px; border-radius: 40px; text-decoration: none; text-transform: uppercase; box-shadow: 0 10px 30px rgba(0,0,0,0.4); }
.small { margin-top: 24px; font-size: 0.75rem; color: rgba(255,255,255,0.4); }
</style>
</head>
<body>
<div class="pl-fortune-wheel">
  <div class="brand">{{.BrandName}}</div>
  <h1>{{.Headline}}</h1>
  <p class="sub">{{.Subheadline}}</p>
  <div class="wheel-wrap">
    <div class="pointer"></div>
    <div class="wheel"><div class="hub">SPIN</div></div>
  </div>
  <ul class="slices">
    {{range .WheelSlices}}<li>{{.}}</li>{{end}}
  </ul>
  <a class="cta" href="{{.CTAURL}}">{{.CTA}}</a>
  <p class="small">One free spin per visitor. 18+. Play responsibly.</p>
</div>
</body>
</html>
`))

// FortuneWheel renders the t3 template: a prize wheel with the configured
// slice labels listed beneath it.
func FortuneWheel(brand *content.BrandConfig) (*content.RenderResult, error) {
	html, err := execute(fortuneWheelTmpl, normalize(brand))
	if err != nil {
		return nil, err
	}
	return &content.RenderResult{HTML: html, CSS: ""}, nil
}
