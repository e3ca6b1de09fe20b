package catalog

import (
	"html/template"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
)

var classicHeroTmpl = template.Must(template.New("t1").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.BrandName}} — {{.Headline}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', Arial, sans-serif; background: #f7f9fc; color: #1a1a2e; }
.pl-classic-hero { min-height: 100vh; display: flex; flex-direction: column; }
.hero { flex: 1; display: flex; flex-direction: column; align-items: center; justify-content: center; text-align: center; padding: 48px 24px; background: linear-gradient(160deg, {{.Primary}} 0%, {{.Secondary}} 100%); color: #fff; }
.hero .logo { max-height: 72px; margin-bottom: 32px; }
.hero h1 { font-size: 3rem; font-weight: 800; letter-spacing: 1px; margin-bottom: 16px; }
.hero p { font-size: 1.25rem; opacity: 0.9; max-width: 560px; margin-bottom: 40px; }
.cta { display: inline-block; background: {{.Accent}}; color: #1a1a2e; font-size: 1.2rem; font-weight: 700; padding: 18px 56px; border-radius: 40px; text-decoration: none; box-shadow: 0 8px 24px rgba(0,0,0,0.25); }
.cta:hover { transform: translateY(-2px); }
.features { display: flex; justify-content: center; gap: 32px; padding: 40px 24px; background: #fff; flex-wrap: wrap; }
.feature { text-align: center; max-width: 220px; }
.feature .badge { font-size: 2rem; }
.feature h3 { margin: 8px 0 4px; font-size: 1rem; color: {{.Primary}}; }
.footer { text-align: center; padding: 16px; font-size: 0.8rem; color: #8a8fa3; background: #fff; }
</style>
</head>
<body>
<div class="pl-classic-hero">
  <section class="hero">
    {{if .LogoURL}}<img class="logo" src="{{.LogoURL}}" alt="{{.BrandName}}">{{end}}
    <h1>{{.Headline}}</h1>
    <p>{{.Subheadline}}</p>
    <a class="cta" href="{{.CTAURL}}">{{.CTA}}</a>
  </section>
  <section class="features">
    <div class="feature"><div class="badge">&#9889;</div><h3>Instant Access</h3><p>No downloads, no waiting.</p></div>
    <div class="feature"><div class="badge">&#128274;</div><h3>Safe &amp; Secure</h3><p>Your data stays yours.</p></div>
    <div class="feature"><div class="badge">&#127873;</div><h3>Daily Rewards</h3><p>Come back for more every day.</p></div>
  </section>
  <footer class="footer">&copy; {{.BrandName}}. 18+. Play responsibly.</footer>
</div>
</body>
</html>
`))

// ClassicHero renders the t1 template: a light gradient hero with a feature
// row beneath it.
func ClassicHero(brand *content.BrandConfig) (*content.RenderResult, error) {
	html, err := execute(classicHeroTmpl, normalize(brand))
	if err != nil {
		return nil, err
	}
	return &content.RenderResult{HTML: html, CSS: ""}, nil
}
