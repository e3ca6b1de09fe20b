package catalog

import (
	"html/template"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
)

var bonusPopupTmpl = template.Must(template.New("t8").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.BrandName}} — {{.PopupTitle}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', Arial, sans-serif; background: linear-gradient(135deg, {{.Primary}} 0%, {{.Secondary}} 100%); min-height: 100vh; }
.pl-bonus-popup { min-height: 100vh; display: flex; align-items: center; justify-content: center; padding: 24px; }
.backdrop { position: fixed; inset: 0; background: rgba(0,0,0,0.55); }
.popup { position: relative; background: #fff; color: #1a1a2e; border-radius: 20px; max-width: 440px; width: 100%; text-align: center; padding: 48px 36px 40px; box-shadow: 0 24px 80px rgba(0,0,0,0.5); }
.ribbon { position: absolute; top: -22px; left: 50%; transform: translateX(-50%); background: {{.Accent}}; color: #1a1a2e; font-weight: 800; font-size: 0.85rem; letter-spacing: 2px; padding: 10px 28px; border-radius: 24px; text-transform: uppercase; white-space: nowrap; }
.gift { font-size: 3.4rem; margin-bottom: 8px; }
h1 { font-size: 1.9rem; font-weight: 800; margin-bottom: 12px; }
.msg { color: #555; line-height: 1.5; margin-bottom: 24px; }
.prize { background: linear-gradient(135deg, {{.Primary}}, {{.Secondary}}); color: #fff; font-size: 1.5rem; font-weight: 800; border-radius: 12px; padding: 18px; margin-bottom: 28px; letter-spacing: 1px; }
.cta { display: block; background: {{.Accent}}; color: #1a1a2e; font-size: 1.15rem; font-weight: 800; padding: 16px; border-radius: 12px; text-decoration: none; text-transform: uppercase; }
.cta:hover { filter: brightness(1.05); }
.skip { display: inline-block; margin-top: 14px; font-size: 0.8rem; color: #aaa; text-decoration: none; }
.brand { margin-top: 26px; font-size: 0.75rem; letter-spacing: 2px; text-transform: uppercase; color: #bbb; }
</style>
</head>
<body>
<div class="pl-bonus-popup">
  <div class="backdrop"></div>
  <div class="popup">
    <div class="ribbon">Limited Offer</div>
    <div class="gift">&#127873;</div>
    <h1>{{.PopupTitle}}</h1>
    <p class="msg">{{.PopupMessage}}</p>
    <div class="prize">{{.PopupPrize}}</div>
    <a class="cta" href="{{.CTAURL}}">{{.CTA}}</a>
    <a class="skip" href="{{.CTAURL}}">No thanks, I hate free stuff</a>
    <div class="brand">{{.BrandName}} &middot; 18+</div>
  </div>
</div>
</body>
</html>
`))

// BonusPopup renders the t8 template: a modal-style bonus claim over a brand
// gradient, driven by the popup extension fields.
func BonusPopup(brand *content.BrandConfig) (*content.RenderResult, error) {
	html, err := execute(bonusPopupTmpl, normalize(brand))
	if err != nil {
		return nil, err
	}
	return &content.RenderResult{HTML: html, CSS: ""}, nil
}
