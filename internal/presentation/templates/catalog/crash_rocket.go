package catalog

import (
	"html/template"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
)

var crashRocketTmpl = template.Must(template.New("t12").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.BrandName}} — {{.Headline}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', Arial, sans-serif; background: #080c1c; color: #fff; min-height: 100vh; }
.pl-crash-rocket { min-height: 100vh; display: flex; flex-direction: column; align-items: center; justify-content: center; padding: 44px 24px; position: relative; overflow: hidden; }
.stars { position: absolute; inset: 0; background-image: radial-gradient(1px 1px at 20% 30%, #fff 1px, transparent 1px), radial-gradient(1px 1px at 70% 15%, #fff 1px, transparent 1px), radial-gradient(1px 1px at 45% 70%, #fff 1px, transparent 1px), radial-gradient(1px 1px at 85% 55%, #fff 1px, transparent 1px), radial-gradient(1px 1px at 10% 80%, #fff 1px, transparent 1px); opacity: 0.6; }
.brand { position: relative; font-weight: 800; letter-spacing: 4px; text-transform: uppercase; color: {{.Secondary}}; margin-bottom: 22px; }
h1 { position: relative; font-size: 2.8rem; font-weight: 900; text-align: center; margin-bottom: 12px; }
.sub { position: relative; color: rgba(255,255,255,0.7); text-align: center; max-width: 480px; margin-bottom: 36px; }
.graph { position: relative; width: 100%; max-width: 520px; height: 220px; border-left: 2px solid rgba(255,255,255,0.25); border-bottom: 2px solid rgba(255,255,255,0.25); margin-bottom: 14px; }
.curve { position: absolute; left: 0; bottom: 0; width: 100%; height: 100%; background: linear-gradient(to top right, transparent 49.6%, {{.Primary}} 49.6%, {{.Primary}} 50.4%, transparent 50.4%); }
.rocket { position: absolute; top: -6px; right: -10px; font-size: 2rem; transform: rotate(-45deg); }
.multiplier { position: relative; font-family: 'Courier New', monospace; font-size: 2.6rem; font-weight: 800; color: {{.Accent}}; margin-bottom: 34px; }
.cta { position: relative; background: {{.Primary}}; color: #fff; font-size: 1.25rem; font-weight: 800; padding: 18px 60px; border-radius: 12px; text-decoration: none; text-transform: uppercase; box-shadow: 0 10px 36px rgba(74,144,226,0.45); }
.small { position: relative; margin-top: 24px; font-size: 0.75rem; color: rgba(255,255,255,0.4); }
</style>
</head>
<body>
<div class="pl-crash-rocket">
  <div class="stars"></div>
  <div class="brand">{{.BrandName}}</div>
  <h1>{{.Headline}}</h1>
  <p class="sub">{{.Subheadline}}</p>
  <div class="graph">
    <div class="curve"></div>
    <div class="rocket">&#128640;</div>
  </div>
  <div class="multiplier">x27.41</div>
  <a class="cta" href="{{.CTAURL}}">{{.CTA}}</a>
  <p class="small">Cash out before it crashes. 18+. Play responsibly.</p>
</div>
</body>
</html>
`))

const crashRocketCSS = `@keyframes rocketClimb {
  0% { transform: translate(-240px, 180px) rotate(-45deg); }
  100% { transform: translate(0, 0) rotate(-45deg); }
}
.pl-crash-rocket .rocket { animation: rocketClimb 6s ease-in infinite; }
`

// CrashRocket renders the t12 template: a starfield crash-game chart with a
// climbing rocket. The climb animation ships as supplemental CSS.
func CrashRocket(brand *content.BrandConfig) (*content.RenderResult, error) {
	html, err := execute(crashRocketTmpl, normalize(brand))
	if err != nil {
		return nil, err
	}
	return &content.RenderResult{HTML: html, CSS: crashRocketCSS}, nil
}
