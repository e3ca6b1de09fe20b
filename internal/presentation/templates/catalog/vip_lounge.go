package catalog

import (
	"html/template"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
)

var vipLoungeTmpl = template.Must(template.New("t11").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.BrandName}} VIP — {{.Headline}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: Georgia, 'Times New Roman', serif; background: #14100c; color: #efe8dc; min-height: 100vh; }
.pl-vip-lounge { min-height: 100vh; display: flex; flex-direction: column; }
.bar { display: flex; justify-content: space-between; align-items: center; padding: 20px 40px; border-bottom: 1px solid rgba(212,175,55,0.3); }
.bar .brand { font-size: 1.2rem; letter-spacing: 4px; text-transform: uppercase; color: {{.Accent}}; }
.bar .pill { font-family: 'Segoe UI', sans-serif; font-size: 0.7rem; letter-spacing: 2px; border: 1px solid {{.Accent}}; color: {{.Accent}}; border-radius: 16px; padding: 6px 16px; text-transform: uppercase; }
.main { flex: 1; display: flex; flex-direction: column; align-items: center; justify-content: center; text-align: center; padding: 56px 24px; }
.seal { width: 88px; height: 88px; border: 2px solid {{.Accent}}; border-radius: 50%; display: flex; align-items: center; justify-content: center; font-size: 2.2rem; margin-bottom: 30px; }
h1 { font-size: 2.8rem; font-weight: 400; max-width: 640px; line-height: 1.2; margin-bottom: 18px; }
.sub { font-family: 'Segoe UI', sans-serif; color: #b3a995; max-width: 500px; margin-bottom: 44px; line-height: 1.6; }
.cta { font-family: 'Segoe UI', sans-serif; background: {{.Accent}}; color: #14100c; font-weight: 700; letter-spacing: 2px; padding: 17px 58px; text-transform: uppercase; text-decoration: none; }
.cta:hover { filter: brightness(1.1); }
.tiers { display: flex; gap: 20px; margin-top: 52px; flex-wrap: wrap; justify-content: center; }
.tier { font-family: 'Segoe UI', sans-serif; border: 1px solid rgba(212,175,55,0.35); padding: 18px 26px; min-width: 150px; }
.tier .name { color: {{.Accent}}; font-size: 0.8rem; letter-spacing: 2px; text-transform: uppercase; margin-bottom: 6px; }
.tier .perk { font-size: 0.85rem; color: #cfc5b0; }
.foot { text-align: center; padding: 18px; font-size: 0.72rem; color: #6d6455; border-top: 1px solid rgba(212,175,55,0.2); }
</style>
</head>
<body>
<div class="pl-vip-lounge">
  <div class="bar">
    <span class="brand">{{.BrandName}}</span>
    <span class="pill">Invitation Only</span>
  </div>
  <div class="main">
    <div class="seal">&#9830;</div>
    <h1>{{.Headline}}</h1>
    <p class="sub">{{.Subheadline}}</p>
    <a class="cta" href="{{.CTAURL}}">{{.CTA}}</a>
    <div class="tiers">
      <div class="tier"><div class="name">Silver</div><div class="perk">Priority support</div></div>
      <div class="tier"><div class="name">Gold</div><div class="perk">Weekly cashback</div></div>
      <div class="tier"><div class="name">Black</div><div class="perk">Personal host</div></div>
    </div>
  </div>
  <div class="foot">{{.BrandName}} Private Lounge &middot; 18+ &middot; Play responsibly</div>
</div>
</body>
</html>
`))

// VIPLounge renders the t11 template: an invitation-only club page with a
// three-tier membership strip.
func VIPLounge(brand *content.BrandConfig) (*content.RenderResult, error) {
	html, err := execute(vipLoungeTmpl, normalize(brand))
	if err != nil {
		return nil, err
	}
	return &content.RenderResult{HTML: html, CSS: ""}, nil
}
