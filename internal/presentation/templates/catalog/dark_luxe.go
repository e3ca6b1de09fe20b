package catalog

import (
	"html/template"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
)

var darkLuxeTmpl = template.Must(template.New("t2").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.BrandName}} | {{.Headline}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Playfair Display', Georgia, serif; background: #0c0c12; color: #e8e6e3; }
.pl-dark-luxe { min-height: 100vh; display: flex; align-items: center; justify-content: center; padding: 32px; background: radial-gradient(ellipse at top, #1c1c2a 0%, #0c0c12 70%); }
.card { max-width: 640px; width: 100%; text-align: center; border: 1px solid {{.Accent}}; padding: 64px 48px; position: relative; }
.card::before { content: ''; position: absolute; inset: 8px; border: 1px solid rgba(255,255,255,0.08); pointer-events: none; }
.brand { font-size: 0.9rem; letter-spacing: 6px; text-transform: uppercase; color: {{.Accent}}; margin-bottom: 28px; }
.logo { max-height: 64px; margin-bottom: 24px; }
h1 { font-size: 2.6rem; font-weight: 400; line-height: 1.2; margin-bottom: 20px; }
.sub { font-family: 'Segoe UI', sans-serif; font-size: 1.05rem; color: #a8a6a0; margin-bottom: 44px; }
.cta { display: inline-block; font-family: 'Segoe UI', sans-serif; font-weight: 600; letter-spacing: 2px; background: transparent; color: {{.Accent}}; border: 2px solid {{.Accent}}; padding: 16px 48px; text-decoration: none; text-transform: uppercase; transition: all 0.3s; }
.cta:hover { background: {{.Accent}}; color: #0c0c12; }
.divider { width: 60px; height: 1px; background: {{.Secondary}}; margin: 32px auto; }
.note { font-size: 0.75rem; color: #5c5a56; letter-spacing: 1px; }
</style>
</head>
<body>
<div class="pl-dark-luxe">
  <div class="card">
    <div class="brand">{{.BrandName}}</div>
    {{if .LogoURL}}<img class="logo" src="{{.LogoURL}}" alt="{{.BrandName}}">{{end}}
    <h1>{{.Headline}}</h1>
    <p class="sub">{{.Subheadline}}</p>
    <a class="cta" href="{{.CTAURL}}">{{.CTA}}</a>
    <div class="divider"></div>
    <p class="note">MEMBERS ONLY &middot; 18+ &middot; PLAY RESPONSIBLY</p>
  </div>
</div>
</body>
</html>
`))

const darkLuxeCSS = `@keyframes luxeGlow {
  0%, 100% { box-shadow: 0 0 24px rgba(255, 215, 0, 0.12); }
  50% { box-shadow: 0 0 48px rgba(255, 215, 0, 0.28); }
}
.pl-dark-luxe .card { animation: luxeGlow 4s ease-in-out infinite; }
`

// DarkLuxe renders the t2 template: a bordered members-club card on a dark
// radial backdrop. The glow animation ships as supplemental CSS.
func DarkLuxe(brand *content.BrandConfig) (*content.RenderResult, error) {
	html, err := execute(darkLuxeTmpl, normalize(brand))
	if err != nil {
		return nil, err
	}
	return &content.RenderResult{HTML: html, CSS: darkLuxeCSS}, nil
}
