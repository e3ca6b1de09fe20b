package catalog

import (
	"html/template"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
)

var minimalTmpl = template.Must(template.New("t6").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.BrandName}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background: #ffffff; color: #111; min-height: 100vh; display: flex; align-items: center; justify-content: center; }
.pl-minimal { max-width: 520px; padding: 40px 24px; text-align: left; }
.logo { max-height: 48px; margin-bottom: 48px; }
.brand { font-size: 0.85rem; font-weight: 600; letter-spacing: 2px; text-transform: uppercase; color: {{.Primary}}; margin-bottom: 48px; }
h1 { font-size: 2.4rem; font-weight: 600; line-height: 1.25; margin-bottom: 20px; }
.sub { font-size: 1.05rem; line-height: 1.6; color: #555; margin-bottom: 48px; }
.cta { display: inline-block; background: {{.Primary}}; color: #fff; font-weight: 600; font-size: 1rem; padding: 14px 36px; border-radius: 6px; text-decoration: none; }
.cta:hover { opacity: 0.9; }
.rule { height: 3px; width: 48px; background: {{.Accent}}; margin: 56px 0 16px; }
.fine { font-size: 0.75rem; color: #999; }
</style>
</head>
<body>
<main class="pl-minimal">
  {{if .LogoURL}}<img class="logo" src="{{.LogoURL}}" alt="{{.BrandName}}">{{else}}<div class="brand">{{.BrandName}}</div>{{end}}
  <h1>{{.Headline}}</h1>
  <p class="sub">{{.Subheadline}}</p>
  <a class="cta" href="{{.CTAURL}}">{{.CTA}}</a>
  <div class="rule"></div>
  <p class="fine">{{.BrandName}} &middot; 18+ only &middot; Terms apply.</p>
</main>
</body>
</html>
`))

// Minimal renders the t6 template: a plain typographic page with a single
// accent rule.
func Minimal(brand *content.BrandConfig) (*content.RenderResult, error) {
	html, err := execute(minimalTmpl, normalize(brand))
	if err != nil {
		return nil, err
	}
	return &content.RenderResult{HTML: html, CSS: ""}, nil
}
