package catalog

import (
	"html/template"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
)

var slotMachineTmpl = template.Must(template.New("t4").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.BrandName}} — {{.Headline}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', Arial, sans-serif; background: #1b0f2e; color: #fff; min-height: 100vh; }
.pl-slot-machine { display: flex; flex-direction: column; align-items: center; padding: 36px 20px; }
.topbar { display: flex; justify-content: space-between; width: 100%; max-width: 520px; margin-bottom: 28px; }
.brand { font-weight: 800; letter-spacing: 2px; color: {{.Accent}}; text-transform: uppercase; }
.balance { background: rgba(255,255,255,0.08); border: 1px solid {{.Accent}}; border-radius: 20px; padding: 4px 16px; font-weight: 700; }
h1 { font-size: 2.2rem; text-align: center; margin-bottom: 8px; }
.sub { color: rgba(255,255,255,0.7); text-align: center; margin-bottom: 32px; max-width: 480px; }
.machine { background: linear-gradient(180deg, {{.Primary}}, {{.Secondary}}); border-radius: 24px; padding: 28px; box-shadow: 0 16px 48px rgba(0,0,0,0.5); margin-bottom: 32px; }
.reels { display: flex; gap: 14px; background: #0d0718; border-radius: 16px; padding: 20px; }
.reel { width: 86px; height: 110px; background: #fff; border-radius: 10px; display: flex; align-items: center; justify-content: center; font-size: 3rem; box-shadow: inset 0 -12px 20px rgba(0,0,0,0.15); }
.lever { text-align: center; margin-top: 18px; font-size: 0.8rem; letter-spacing: 3px; color: rgba(255,255,255,0.8); text-transform: uppercase; }
.cta { background: {{.Accent}}; color: #1b0f2e; font-size: 1.3rem; font-weight: 800; padding: 18px 60px; border-radius: 40px; text-decoration: none; text-transform: uppercase; box-shadow: 0 10px 28px rgba(0,0,0,0.45); }
.small { margin-top: 22px; font-size: 0.75rem; color: rgba(255,255,255,0.4); }
</style>
</head>
<body>
<div class="pl-slot-machine">
  <div class="topbar">
    <span class="brand">{{.BrandName}}</span>
    <span class="balance">&#129689; {{.Balance}}</span>
  </div>
  <h1>{{.Headline}}</h1>
  <p class="sub">{{.Subheadline}}</p>
  <div class="machine">
    <div class="reels">
      <div class="reel">&#127826;</div>
      <div class="reel">&#11088;</div>
      <div class="reel">&#127922;</div>
    </div>
    <div class="lever">Pull to win</div>
  </div>
  <a class="cta" href="{{.CTAURL}}">{{.CTA}}</a>
  <p class="small">Starting balance {{.Balance}} coins. 18+. Play responsibly.</p>
</div>
</body>
</html>
`))

// SlotMachine renders the t4 template: a three-reel machine with the
// configured starting balance in the top bar.
func SlotMachine(brand *content.BrandConfig) (*content.RenderResult, error) {
	html, err := execute(slotMachineTmpl, normalize(brand))
	if err != nil {
		return nil, err
	}
	return &content.RenderResult{HTML: html, CSS: ""}, nil
}
